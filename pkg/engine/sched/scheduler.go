// Package sched provides a single-threaded event scheduler.
//
// Nothing here starts goroutines or timers. The owner pumps the scheduler
// with the current time and applies whatever comes back, so every state
// change happens on the caller's goroutine in due order.
package sched

import (
	"time"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Handle identifies one scheduled event so it can be cancelled.
// The zero Handle never refers to a live event.
type Handle uint64

// entry is a queued event. seq breaks ties so equal due times stay FIFO.
type entry[E any] struct {
	due    time.Time
	seq    uint64
	handle Handle
	event  E
}

// Scheduler holds pending events of type E ordered by due time
type Scheduler[E any] struct {
	queue     *heap.Heap[entry[E]]
	pending   mapset.Set[Handle]
	cancelled mapset.Set[Handle]
	next      Handle
	seq       uint64
}

// New creates an empty scheduler
func New[E any]() *Scheduler[E] {
	return &Scheduler[E]{
		queue:     heap.New[entry[E]](lessEntry[E]),
		pending:   mapset.New[Handle](),
		cancelled: mapset.New[Handle](),
	}
}

func lessEntry[E any](a, b entry[E]) bool {
	if a.due.Equal(b.due) {
		return a.seq < b.seq
	}
	return a.due.Before(b.due)
}

// After schedules ev to become due d after now
func (s *Scheduler[E]) After(now time.Time, d time.Duration, ev E) Handle {
	s.next++
	s.seq++
	s.queue.Push(entry[E]{
		due:    now.Add(d),
		seq:    s.seq,
		handle: s.next,
		event:  ev,
	})
	s.pending.Put(s.next)
	return s.next
}

// Cancel drops the event behind h. Cancelling an unknown, fired or already
// cancelled handle is a no-op.
func (s *Scheduler[E]) Cancel(h Handle) {
	if !s.pending.Has(h) {
		return
	}
	s.pending.Remove(h)
	s.cancelled.Put(h)
}

// Active reports whether h still refers to a pending event
func (s *Scheduler[E]) Active(h Handle) bool {
	return s.pending.Has(h)
}

// Reset drops every pending event
func (s *Scheduler[E]) Reset() {
	s.queue = heap.New[entry[E]](lessEntry[E])
	s.pending = mapset.New[Handle]()
	s.cancelled = mapset.New[Handle]()
}

// Pending returns the number of live events still waiting
func (s *Scheduler[E]) Pending() int {
	return s.pending.Size()
}

// NextDue returns the due time of the earliest live event
func (s *Scheduler[E]) NextDue() (time.Time, bool) {
	s.skipCancelled()
	e, ok := s.queue.Peek()
	if !ok {
		return time.Time{}, false
	}
	return e.due, true
}

// PopDue removes and returns the earliest live event due at or before now.
// Callers loop until it reports false, applying each event before popping the
// next so that events scheduled or cancelled while applying are honoured.
func (s *Scheduler[E]) PopDue(now time.Time) (E, bool) {
	var zero E
	s.skipCancelled()
	e, ok := s.queue.Peek()
	if !ok || e.due.After(now) {
		return zero, false
	}
	s.queue.Pop()
	s.pending.Remove(e.handle)
	return e.event, true
}

// skipCancelled discards cancelled entries sitting at the head of the queue
func (s *Scheduler[E]) skipCancelled() {
	for {
		e, ok := s.queue.Peek()
		if !ok || !s.cancelled.Has(e.handle) {
			return
		}
		s.queue.Pop()
		s.cancelled.Remove(e.handle)
	}
}
