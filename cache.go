package veil

import (
	"reflect"
	"sync"
)

// Cache stores kind-derived intrinsic tags per type permanently.
// Since types are immutable at runtime, entries never expire.
type Cache struct {
	store map[reflect.Type]string
	mu    sync.RWMutex
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		store: make(map[reflect.Type]string),
	}
}

// Get retrieves the intrinsic tag for a type from the cache.
func (c *Cache) Get(t reflect.Type) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	tag, exists := c.store[t]
	return tag, exists
}

// Set stores the intrinsic tag for a type.
func (c *Cache) Set(t reflect.Type, tag string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store[t] = tag
}

// Clear removes all entries from the cache.
// This should only be used in tests.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store = make(map[reflect.Type]string)
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.store)
}
