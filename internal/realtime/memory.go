package realtime

import (
	"context"
	"sync"
)

// MemoryRelay is an in-process Relay for single-node deployments and tests.
// Delivery is synchronous, in subscription order.
type MemoryRelay struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]Handler
	closed bool
}

// NewMemoryRelay creates a new in-process relay
func NewMemoryRelay() *MemoryRelay {
	return &MemoryRelay{
		subs: make(map[string]map[int]Handler),
	}
}

// Publish delivers the event to every handler subscribed to its topic
func (r *MemoryRelay) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	handlers := make([]Handler, 0, len(r.subs[event.Topic]))
	for _, h := range r.subs[event.Topic] {
		handlers = append(handlers, h)
	}
	r.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe registers a handler for a topic and returns its unsubscribe handle
func (r *MemoryRelay) Subscribe(topic string, handler Handler) (func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.subs[topic] == nil {
		r.subs[topic] = make(map[int]Handler)
	}
	id := r.nextID
	r.nextID++
	r.subs[topic][id] = handler

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.subs[topic], id)
	}, nil
}

// Close drops all subscriptions
func (r *MemoryRelay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs = make(map[string]map[int]Handler)
	r.closed = true
	return nil
}
