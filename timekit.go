package vtsched

import "time"

// TimeKit supplies the time arithmetic a Scheduler needs: a total order
// over absolute times, addition of deltas, conversion of real durations
// into deltas and of absolute times into wall-clock timestamps.
type TimeKit[T, D any] interface {
	// Compare returns -1, 0 or 1 as a is before, equal to or after b.
	Compare(a, b T) int
	// Add returns t shifted forward (or backward, for negative d) by d.
	Add(t T, d D) T
	// ToRelative converts a real duration into the kit's delta type.
	ToRelative(d time.Duration) D
	// ToWallClock renders an absolute virtual time as a timestamp.
	ToWallClock(t T) time.Time
}

// Ticks is an absolute virtual time in nanoseconds since the
// scheduler's epoch.
type Ticks int64

// Add returns t + d as ticks.
func (t Ticks) Add(d time.Duration) Ticks { return t + Ticks(d) }

// Sub returns t - t2 as a duration.
func (t Ticks) Sub(t2 Ticks) time.Duration { return time.Duration(t - t2) }

// TicksKit returns a TimeKit over Ticks with the given wall-clock
// epoch. Deltas are plain durations.
func TicksKit(epoch time.Time) TimeKit[Ticks, time.Duration] {
	return ticksKit{epoch: epoch}
}

type ticksKit struct{ epoch time.Time }

func (ticksKit) Compare(a, b Ticks) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

func (ticksKit) Add(t Ticks, d time.Duration) Ticks { return t.Add(d) }

func (ticksKit) ToRelative(d time.Duration) time.Duration { return d }

func (k ticksKit) ToWallClock(t Ticks) time.Time {
	return k.epoch.Add(time.Duration(t))
}

// WallKit returns a TimeKit over virtual time.Time values, for
// simulations that want calendar-looking virtual timestamps.
func WallKit() TimeKit[time.Time, time.Duration] {
	return wallKit{}
}

type wallKit struct{}

func (wallKit) Compare(a, b time.Time) int { return a.Compare(b) }

func (wallKit) Add(t time.Time, d time.Duration) time.Time { return t.Add(d) }

func (wallKit) ToRelative(d time.Duration) time.Duration { return d }

func (wallKit) ToWallClock(t time.Time) time.Time { return t }
