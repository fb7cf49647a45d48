package tiling

import (
	"sync"

	"github.com/katalvlaran/latticewalk/lattice"
)

// Cache memoises decomposers by lattice identity and variant. Lattices are
// immutable, so entries never need invalidation.
type Cache struct {
	mu      sync.Mutex
	opts    []Option
	entries map[cacheKey]*Decomposer
}

type cacheKey struct {
	lat     *lattice.Lattice
	variant Variant
}

// NewCache returns an empty cache that builds decomposers with opts.
func NewCache(opts ...Option) *Cache {
	return &Cache{opts: opts, entries: make(map[cacheKey]*Decomposer)}
}

// Get returns the cached decomposer for (l, v), building it on first use.
// Failed builds are not cached.
func (c *Cache) Get(l *lattice.Lattice, v Variant) (*Decomposer, error) {
	key := cacheKey{lat: l, variant: v}

	c.mu.Lock()
	defer c.mu.Unlock()
	if d, ok := c.entries[key]; ok {
		return d, nil
	}
	d, err := NewDecomposer(l, v, c.opts...)
	if err != nil {
		return nil, err
	}
	c.entries[key] = d
	return d, nil
}

// Len returns the number of cached decomposers.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
