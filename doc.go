// Package vtsched provides a deterministic virtual-time scheduler.
// Work is registered against a simulated clock and executed in causal
// order when the caller advances that clock; the wall clock is never
// consulted, so hours of simulated latency collapse into the
// microseconds it takes to drain the queue.
//
// A Scheduler and everything scheduled on it belong to a single
// goroutine. Actions run synchronously on the advancing caller's frame
// and must not invoke Start, AdvanceTo, AdvanceBy or Sleep on the
// scheduler that is running them.
package vtsched
