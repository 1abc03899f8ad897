package client

import (
	"sync"
	"sync/atomic"
)

// Event is a decoded protocol event.
type Event interface {
	// Protocol returns the name of the protocol defining the event.
	Protocol() string

	// Source returns the identity of the object that received the event.
	Source() ProxyID
}

// EventQueue is the ordered channel through which decoded events reach the
// application.
//
// A queue is shared by every proxy created through the same binding chain
// and by the dispatch path of the native layer. Events are only accepted
// while the queue is active. The FIFO is safe for one producer and any
// number of consumers, and preserves dispatch order.
type EventQueue struct {
	mu     sync.Mutex
	events []Event
	active atomic.Bool
}

// NewEventQueue returns an empty, inactive queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Activate lets the queue accept events.
func (q *EventQueue) Activate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.active.Store(true)
}

// Deactivate makes the queue drop further events. Events already queued
// are kept.
func (q *EventQueue) Deactivate() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.active.Store(false)
}

// Active tells whether the queue currently accepts events.
func (q *EventQueue) Active() bool {
	return q.active.Load()
}

// Push appends an event. It returns false and drops the event if the queue
// is not active.
func (q *EventQueue) Push(e Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.active.Load() {
		return false
	}
	q.events = append(q.events, e)
	return true
}

// Next pops the oldest event, if any.
func (q *EventQueue) Next() (Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil, false
	}
	e := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	return e, true
}

// Drain pops every queued event, oldest first.
func (q *EventQueue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
