// Package queue implements the ordered multiset of pending scheduled
// work. Entries are keyed by due time with a monotonically increasing
// insertion sequence as tie-break, so entries sharing a due time come
// back in the order they went in.
package queue

import "github.com/huandu/skiplist"

// Ticket identifies one enqueued entry for later removal.
type Ticket[T any] struct {
	due T
	seq uint64
}

// Queue is an ordered multiset of values keyed by (due, insertion
// sequence). The zero Queue is not usable; create one with New.
type Queue[T, V any] struct {
	l   *skiplist.SkipList
	seq uint64
}

// New creates a queue ordered by cmp over due times.
func New[T, V any](cmp func(a, b T) int) *Queue[T, V] {
	return &Queue[T, V]{
		l: skiplist.New(
			skiplist.GreaterThanFunc(func(a, b interface{}) int {
				k1, k2 := a.(Ticket[T]), b.(Ticket[T])
				if c := cmp(k1.due, k2.due); c != 0 {
					return c
				}
				if k1.seq > k2.seq {
					return 1
				} else if k1.seq < k2.seq {
					return -1
				}
				return 0
			}),
		),
	}
}

// Enqueue inserts v due at due and returns its removal ticket.
func (q *Queue[T, V]) Enqueue(due T, v V) Ticket[T] {
	q.seq++
	k := Ticket[T]{due: due, seq: q.seq}
	q.l.Set(k, v)
	return k
}

// PeekMin returns the value with the smallest key without removing it.
func (q *Queue[T, V]) PeekMin() (V, bool) {
	if e := q.l.Front(); e != nil {
		return e.Value.(V), true
	}
	var zero V
	return zero, false
}

// DequeueMin removes and returns the value with the smallest key.
func (q *Queue[T, V]) DequeueMin() (V, bool) {
	e := q.l.Front()
	if e == nil {
		var zero V
		return zero, false
	}
	q.l.Remove(e.Key())
	return e.Value.(V), true
}

// Remove removes the entry identified by t and returns whether it was
// still queued.
func (q *Queue[T, V]) Remove(t Ticket[T]) bool {
	return q.l.Remove(t) != nil
}

// Len returns the number of queued entries.
func (q *Queue[T, V]) Len() int {
	return q.l.Len()
}

// Scan visits every entry in key order until fn returns false.
func (q *Queue[T, V]) Scan(fn func(V) bool) {
	for e := q.l.Front(); e != nil; e = e.Next() {
		if !fn(e.Value.(V)) {
			return
		}
	}
}
