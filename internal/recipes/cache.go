// Package recipes reads opaque recipe documents and caches catalog summaries.
package recipes

import (
	"sync"

	"github.com/pageza/mealplanner/backend/internal/model"
)

// Cache holds recipe catalogs for the lifetime of the process. It is safe for
// concurrent use; callers never see the lock.
type Cache struct {
	mu      sync.RWMutex
	entries map[string][]model.RecipeSummary
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]model.RecipeSummary)}
}

// Get returns a copy of the catalog stored under key
func (c *Cache) Get(key string) ([]model.RecipeSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return append([]model.RecipeSummary(nil), entry...), true
}

// Set replaces the catalog stored under key
func (c *Cache) Set(key string, catalog []model.RecipeSummary) {
	stored := append([]model.RecipeSummary(nil), catalog...)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = stored
}

// Len returns the number of cached catalogs
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
