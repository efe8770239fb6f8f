package event

import "sync"

// QueueSize bounds the number of events retained between consumes.
// When the queue is full the oldest event is dropped; persistence is
// advisory and must never grow without bound or block a tick
const QueueSize = 1024

// Queue is a bounded FIFO buffer for game events.
// Producers run on the simulation goroutine (phase 2) but the queue is
// safe for concurrent use so collaborators can drain it from outside
// the loop goroutine
type Queue struct {
	mu     sync.Mutex
	events []GameEvent
}

// NewQueue creates an empty event queue
func NewQueue() *Queue {
	return &Queue{events: make([]GameEvent, 0, QueueSize)}
}

// Push appends an event, dropping the oldest one when full
func (q *Queue) Push(ev GameEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) >= QueueSize {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
	}
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and clears the queue
func (q *Queue) Consume() []GameEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	result := make([]GameEvent, len(q.events))
	copy(result, q.events)
	q.events = q.events[:0]
	return result
}

// Len returns the number of pending events
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
