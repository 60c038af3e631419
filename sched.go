package vtsched

import (
	"errors"
	"fmt"
	"time"

	"github.com/virtualtime/vtsched/internal/queue"

	"github.com/rs/zerolog"
	"github.com/segmentio/ksuid"
)

// ErrOutOfRange is returned when a clock-advancing operation would move
// the virtual clock backward or, for Sleep, fail to move it forward.
var ErrOutOfRange = errors.New("virtual time out of range")

// Action is schedulable work. It receives the scheduler it runs on and
// the state it was scheduled with, and returns a handle releasing
// whatever resource it acquired (Empty if none).
type Action[T, D any] func(s *Scheduler[T, D], state any) Disposable

// Scheduler is a deterministic virtual-time scheduler.
// It owns one clock value and one queue of pending work; advancing the
// clock through Start, AdvanceTo or AdvanceBy executes queued work in
// due-time order, with scheduling order as tie-break.
type Scheduler[T, D any] struct {
	kit     TimeKit[T, D]
	queue   *queue.Queue[T, *item[T, D]]
	clock   T
	running bool
	log     zerolog.Logger
}

// New creates a scheduler with its clock at initial, using kit for all
// time arithmetic.
func New[T, D any](initial T, kit TimeKit[T, D]) *Scheduler[T, D] {
	return &Scheduler[T, D]{
		kit:   kit,
		queue: queue.New[T, *item[T, D]](kit.Compare),
		clock: initial,
		log:   zerolog.Nop(),
	}
}

// NewTicks creates a tick-based scheduler with the clock at zero.
// Now reports ticks as offsets from the Unix epoch.
func NewTicks() *Scheduler[Ticks, time.Duration] {
	return New[Ticks, time.Duration](0, TicksKit(time.Unix(0, 0).UTC()))
}

// NewWall creates a scheduler whose virtual clock is a time.Time
// starting at start.
func NewWall(start time.Time) *Scheduler[time.Time, time.Duration] {
	return New(start, WallKit())
}

// WithLogger sets a trace logger and returns s.
// The default logger discards everything.
func (s *Scheduler[T, D]) WithLogger(l zerolog.Logger) *Scheduler[T, D] {
	s.log = l
	return s
}

// Clock returns the current virtual time.
func (s *Scheduler[T, D]) Clock() T { return s.clock }

// Now returns the current virtual time rendered as a wall-clock
// timestamp.
func (s *Scheduler[T, D]) Now() time.Time { return s.kit.ToWallClock(s.clock) }

// Len returns the number of physically queued items, including
// cancelled items not yet drained.
func (s *Scheduler[T, D]) Len() int { return s.queue.Len() }

// ScheduleAbsoluteWithState schedules action to run with state when the
// virtual clock reaches due. It is the fundamental primitive every
// other Schedule method funnels into. The returned handle cancels the
// pending item; disposing it after the item ran has no effect.
// Scheduling never blocks, whether or not a dispatch loop is active.
func (s *Scheduler[T, D]) ScheduleAbsoluteWithState(
	state any,
	due T,
	action Action[T, D],
) Disposable {
	it := &item[T, D]{
		sched:  s,
		id:     ksuid.New(),
		due:    due,
		state:  state,
		action: action,
	}
	it.ticket = s.queue.Enqueue(due, it)
	s.log.Trace().
		Str("item", it.id.String()).
		Time("due", s.kit.ToWallClock(due)).
		Msg("scheduled")
	return it
}

// ScheduleRelativeWithState schedules action to run with state delay
// after the current virtual time.
func (s *Scheduler[T, D]) ScheduleRelativeWithState(
	state any,
	delay D,
	action Action[T, D],
) Disposable {
	return s.ScheduleAbsoluteWithState(state, s.kit.Add(s.clock, delay), action)
}

// ScheduleNow schedules fn at the current virtual time.
func (s *Scheduler[T, D]) ScheduleNow(fn func()) Disposable {
	return s.ScheduleAbsoluteWithState(nil, s.clock, discard[T, D](fn))
}

// ScheduleRelative schedules fn delay after the current virtual time.
func (s *Scheduler[T, D]) ScheduleRelative(delay D, fn func()) Disposable {
	return s.ScheduleRelativeWithState(nil, delay, discard[T, D](fn))
}

// ScheduleAbsolute schedules fn at due.
func (s *Scheduler[T, D]) ScheduleAbsolute(due T, fn func()) Disposable {
	return s.ScheduleAbsoluteWithState(nil, due, discard[T, D](fn))
}

// discard adapts a state-free function into an Action holding no
// disposable resource.
func discard[T, D any](fn func()) Action[T, D] {
	return func(*Scheduler[T, D], any) Disposable {
		fn()
		return Empty
	}
}

// Start runs the dispatch loop until the queue drains or Stop is
// called. Each iteration takes the earliest pending item, advances the
// clock to its due time if that is later than the current clock, and
// invokes it. Work scheduled by a running action joins the same loop,
// so Start does not return while recurring work keeps rescheduling
// itself. Calling Start from within a running action is a no-op.
func (s *Scheduler[T, D]) Start() {
	if s.running {
		return
	}
	s.running = true
	for s.running {
		it, ok := s.next()
		if !ok {
			break
		}
		if s.kit.Compare(it.due, s.clock) > 0 {
			s.clock = it.due
		}
		it.invoke()
	}
	s.running = false
}

// Stop halts the dispatch loop once the currently executing action
// returns. Idempotent.
func (s *Scheduler[T, D]) Stop() {
	s.running = false
}

// AdvanceTo runs all work due up to and including t, then pins the
// clock to exactly t. Returns ErrOutOfRange if t is earlier than the
// current clock; advancing to the current clock is a no-op. Called
// re-entrantly from a running action it is a no-op (see the package
// documentation).
func (s *Scheduler[T, D]) AdvanceTo(t T) error {
	switch c := s.kit.Compare(t, s.clock); {
	case c < 0:
		return fmt.Errorf(
			"%w: advance target %v is before the clock %v",
			ErrOutOfRange, s.kit.ToWallClock(t), s.Now(),
		)
	case c == 0:
		return nil
	}
	if s.running {
		return nil
	}
	s.running = true
	for s.running {
		it, ok := s.next()
		if !ok || s.kit.Compare(it.due, t) > 0 {
			break
		}
		if s.kit.Compare(it.due, s.clock) > 0 {
			s.clock = it.due
		}
		it.invoke()
	}
	s.running = false
	// The clock always lands exactly on the requested time,
	// even if no work was due before it.
	s.clock = t
	s.log.Trace().Time("clock", s.Now()).Msg("advanced")
	return nil
}

// AdvanceBy advances the clock by d, running all work due in between.
// Returns ErrOutOfRange for a negative d; zero is a no-op.
func (s *Scheduler[T, D]) AdvanceBy(d D) error {
	dt := s.kit.Add(s.clock, d)
	switch c := s.kit.Compare(dt, s.clock); {
	case c < 0:
		return fmt.Errorf(
			"%w: advancing by %v would move the clock backward",
			ErrOutOfRange, d,
		)
	case c == 0:
		return nil
	}
	return s.AdvanceTo(dt)
}

// Sleep moves the clock forward by d without running any queued work.
// d must move the clock strictly forward or ErrOutOfRange is returned.
func (s *Scheduler[T, D]) Sleep(d D) error {
	dt := s.kit.Add(s.clock, d)
	if s.kit.Compare(dt, s.clock) <= 0 {
		return fmt.Errorf(
			"%w: sleeping %v would not move the clock forward",
			ErrOutOfRange, d,
		)
	}
	s.clock = dt
	return nil
}

// Scan visits the pending items in execution order until fn returns
// false, reporting each item's due time rendered as a wall-clock
// timestamp and whether the item has been cancelled.
func (s *Scheduler[T, D]) Scan(fn func(due time.Time, cancelled bool) bool) {
	s.queue.Scan(func(it *item[T, D]) bool {
		return fn(s.kit.ToWallClock(it.due), it.cancelled)
	})
}

// next drains cancelled items off the front of the queue and returns
// the first live one without removing it.
func (s *Scheduler[T, D]) next() (*item[T, D], bool) {
	for {
		it, ok := s.queue.PeekMin()
		if !ok {
			return nil, false
		}
		if !it.cancelled {
			return it, true
		}
		s.queue.DequeueMin()
		s.log.Trace().Str("item", it.id.String()).Msg("drained cancelled item")
	}
}

// item is one pending unit of scheduled work. It stays queued until it
// is invoked or discovered cancelled during a queue drain.
type item[T, D any] struct {
	sched     *Scheduler[T, D]
	id        ksuid.KSUID
	due       T
	state     any
	action    Action[T, D]
	ticket    queue.Ticket[T]
	cancelled bool
}

// invoke removes the item from the queue and runs its action on the
// caller's frame.
func (it *item[T, D]) invoke() {
	it.sched.queue.Remove(it.ticket)
	it.sched.log.Trace().
		Str("item", it.id.String()).
		Time("clock", it.sched.Now()).
		Msg("invoking")
	it.action(it.sched, it.state)
}

// Dispose marks the item cancelled. A cancelled item never runs; it
// stays queued, inert, until the next traversal drains it. Disposing an
// item that has already run has no effect.
func (it *item[T, D]) Dispose() {
	it.cancelled = true
}
