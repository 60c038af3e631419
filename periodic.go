package vtsched

// SchedulePeriodicWithState emulates periodic scheduling on top of the
// one-shot primitives. The first tick runs one period from now and
// every tick schedules its successor exactly one period after its own
// due time, so the cadence never drifts. Each tick folds the state
// through action, carrying the returned value into the next tick.
//
// The returned handle cancels the chain. One already-queued tick may
// remain after cancellation; it is inert and never invokes action.
func (s *Scheduler[T, D]) SchedulePeriodicWithState(
	state any,
	period D,
	action func(state any) any,
) Disposable {
	p := &periodic[T, D]{
		period: period,
		action: action,
		state:  state,
		due:    s.kit.Add(s.clock, period),
	}
	s.ScheduleAbsoluteWithState(nil, p.due, p.tick)
	return p
}

// periodic drives an infinite chain of one-shot schedules spaced by a
// fixed period.
type periodic[T, D any] struct {
	period    D
	action    func(state any) any
	state     any
	due       T // due time of the currently queued tick
	cancelled bool
}

func (p *periodic[T, D]) tick(s *Scheduler[T, D], _ any) Disposable {
	if p.cancelled {
		return Empty
	}
	p.state = p.action(p.state)
	p.due = s.kit.Add(p.due, p.period)
	s.ScheduleAbsoluteWithState(nil, p.due, p.tick)
	return Empty
}

// Dispose marks the chain cancelled; the next tick observes the flag
// and stops rescheduling.
func (p *periodic[T, D]) Dispose() {
	p.cancelled = true
}
