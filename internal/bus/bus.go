// Package bus implements the synchronous notification channel between
// inventory ingestion and its subscribers.
package bus

import (
	"sync"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
)

// Handler consumes one inventory notification. A returned error aborts
// delivery to later subscribers and propagates to the publisher.
type Handler interface {
	HandleInventoryAdded(ev model.InventoryAddedEvent) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev model.InventoryAddedEvent) error

// HandleInventoryAdded calls f(ev).
func (f HandlerFunc) HandleInventoryAdded(ev model.InventoryAddedEvent) error { return f(ev) }

// Bus delivers notifications to subscribers in registration order, on the
// publisher's goroutine. There is no buffering, retry, or persistence: an
// event published with no subscribers is permanently lost.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// New returns an empty Bus.
func New() *Bus { return &Bus{} }

// Subscribe registers a handler. There is no unsubscribe and no duplicate
// detection.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// Publish invokes every registered handler synchronously, in registration
// order. The first handler error stops delivery and is returned.
func (b *Bus) Publish(ev model.InventoryAddedEvent) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers...)
	b.mu.RUnlock()
	for _, h := range handlers {
		if err := h.HandleInventoryAdded(ev); err != nil {
			return err
		}
	}
	return nil
}

// SubscriberCount reports how many handlers are registered.
func (b *Bus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}
