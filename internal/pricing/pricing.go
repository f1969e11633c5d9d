// Package pricing holds the external pricing collaborator's in-memory store.
// The pipeline only ever reads from it.
package pricing

import (
	"sync"

	"github.com/fairyhunter13/travel-intent-service-simulator/internal/model"
)

// Book is a price-quote lookup keyed by product id.
type Book struct {
	mu     sync.RWMutex
	quotes map[string]model.PriceQuote
}

// New builds a Book from the given quotes.
func New(quotes []model.PriceQuote) *Book {
	b := &Book{quotes: make(map[string]model.PriceQuote, len(quotes))}
	for _, q := range quotes {
		b.quotes[q.ProductID] = q
	}
	return b
}

// Get returns the quote for productID if one exists.
func (b *Book) Get(productID string) (model.PriceQuote, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	q, ok := b.quotes[productID]
	return q, ok
}
