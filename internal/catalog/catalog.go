// Package catalog maps marketing intents to the product ids satisfying them.
package catalog

import (
	"sort"
	"sync"
)

// Catalog is the system of record queried at search time. Membership is a
// set per intent; listings are sorted for determinism.
type Catalog struct {
	mu    sync.RWMutex
	store map[string]map[string]struct{}
}

// New builds a Catalog from seed entries. A nil seed yields an empty catalog.
func New(seeds map[string][]string) *Catalog {
	c := &Catalog{store: make(map[string]map[string]struct{}, len(seeds))}
	for intent, ids := range seeds {
		members := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			members[id] = struct{}{}
		}
		c.store[intent] = members
	}
	return c
}

// AddProduct registers productID under intent. Repeated calls with the same
// pair are no-ops.
func (c *Catalog) AddProduct(intent, productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	members, ok := c.store[intent]
	if !ok {
		members = make(map[string]struct{})
		c.store[intent] = members
	}
	members[productID] = struct{}{}
}

// ListProducts returns the product ids registered under intent, sorted
// lexicographically. Unknown intents yield an empty slice, never an error.
func (c *Catalog) ListProducts(intent string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedIDs(c.store[intent])
}

// Snapshot returns every intent mapped to its sorted product-id sequence.
func (c *Catalog) Snapshot() map[string][]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string][]string, len(c.store))
	for intent, members := range c.store {
		out[intent] = sortedIDs(members)
	}
	return out
}

func sortedIDs(members map[string]struct{}) []string {
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
