package session

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"
)

// Cache holds per-session in-memory state, bounded by an LRU policy. The value
// held here is authoritative for the session; evicted sessions are rebuilt
// from storage on next access.
type Cache[V any] struct {
	mu  sync.Mutex
	lru *lru.Cache
}

func NewCache[V any](size int) (*Cache[V], error) {
	if size <= 0 {
		size = 1
	}
	l, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{lru: l}, nil
}

func (c *Cache[V]) Get(id string) (V, bool) {
	var zero V
	v, ok := c.lru.Get(id)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}

func (c *Cache[V]) Add(id string, v V) {
	c.lru.Add(id, v)
}

// GetOrCreate returns the cached value for id or builds one with create.
// Concurrent callers for the same id observe a single value.
func (c *Cache[V]) GetOrCreate(id string, create func() (V, error)) (V, error) {
	if v, ok := c.Get(id); ok {
		return v, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.Get(id); ok {
		return v, nil
	}
	v, err := create()
	if err != nil {
		var zero V
		return zero, err
	}
	c.lru.Add(id, v)
	return v, nil
}

func (c *Cache[V]) Remove(id string) {
	c.lru.Remove(id)
}

func (c *Cache[V]) Len() int {
	return c.lru.Len()
}
