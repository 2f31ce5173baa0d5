package devicemodel

import (
	"sync"
	"time"
)

// Event is one device notification as delivered by an event source.
type Event struct {
	Timestamp  time.Time `json:"timestamp"`
	Severity   int       `json:"severity"`
	Message    string    `json:"message"`
	SourceName string    `json:"source_name"`
}

// EventSource delivers device events over a single-consumer channel in
// arrival order. The returned cancel function unsubscribes and closes the
// channel; delivery is serialized, so the consumer needs no locking.
type EventSource interface {
	Subscribe() (<-chan Event, func(), error)
}

// EventEmitter is the in-memory EventSource used by tests and by graph
// runtimes that surface events directly.
type EventEmitter struct {
	mu     sync.Mutex
	subs   map[int]chan Event
	nextID int
	closed bool
}

// NewEventEmitter creates an emitter with no subscribers.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{subs: make(map[int]chan Event)}
}

// Subscribe registers a subscriber channel. The cancel function is
// idempotent and safe to call after Close.
func (e *EventEmitter) Subscribe() (<-chan Event, func(), error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	ch := make(chan Event, 64)
	if e.closed {
		close(ch)
		return ch, func() {}, nil
	}

	id := e.nextID
	e.nextID++
	e.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			if sub, ok := e.subs[id]; ok {
				delete(e.subs, id)
				close(sub)
			}
		})
	}
	return ch, cancel, nil
}

// Emit delivers an event to every subscriber in subscription order. A
// subscriber whose buffer is full drops the event rather than blocking the
// emitting goroutine.
func (e *EventEmitter) Emit(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close drops all subscribers and closes their channels. Further Emit calls
// are no-ops.
func (e *EventEmitter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	for id, ch := range e.subs {
		delete(e.subs, id)
		close(ch)
	}
}
