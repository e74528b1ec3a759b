package sse

import (
	"sync"
)

// Event is one data-changed notification pushed to panel subscribers after a
// successful mutation.
type Event struct {
	Event string
	Data  interface{}
}

// Event names published by the services.
const (
	EventEmployeesChanged = "employees.changed"
	EventRecordsChanged   = "records.changed"
)

// Hub manages SSE subscribers and event broadcasting. Every authenticated
// panel viewer sees every change, matching the shared-calendar model.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and a
// cleanup function.
func (h *Hub) Subscribe() (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, 10)
	h.subscribers[ch] = struct{}{}

	cleanup := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
	}

	return ch, cleanup
}

// Publish broadcasts an event to every subscriber.
func (h *Hub) Publish(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (non-blocking to prevent deadlock)
		}
	}
}

// SubscriberCount returns the number of active subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
