// Package fifo provides a FIFO (First In, First Out) eviction policy.
//
// # When to Use FIFO
//
// Use FIFO when you want the simplest possible eviction strategy. Keys
// are evicted strictly in insertion order, regardless of access
// patterns. This is ideal for:
//   - Time-based data where older entries naturally become less relevant
//   - Scenarios where predictable eviction order matters more than hit
//     rate
//
// # FIFO vs LRU
//
//   - FIFO: oldest key evicted, even if frequently accessed
//   - LRU: least recently accessed key evicted (see
//     [github.com/orderedcache/ocache/lru])
//
// # Concurrency
//
// Cache is not safe for concurrent use; synchronize externally if
// needed.
//
// # Performance
//
// Has, Get, Put, Remove are O(1) amortized. Dump and Clear are O(n).
//
// # Example Usage
//
//	c, _ := fifo.New[string](100)
//	c.Put("first")
//	c.Put("second")
//	// When full, "first" is evicted before "second" regardless of Get calls.
package fifo

import (
	"fmt"

	"github.com/orderedcache/ocache/cache"
	"github.com/orderedcache/ocache/orderedset"
)

// Cache implements the FIFO eviction policy over keys of type K.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	maxlen int
	set    *orderedset.OrderedSet[K]
}

// New creates a new FIFO cache with the given maximum capacity. It
// returns cache.ErrInvalidCapacity if maxlen < 1.
func New[K comparable](maxlen int) (*Cache[K], error) {
	if maxlen < 1 {
		return nil, fmt.Errorf("fifo.New: maxlen %d: %w", maxlen, cache.ErrInvalidCapacity)
	}
	return &Cache[K]{maxlen: maxlen, set: orderedset.New[K]()}, nil
}

// Maxlen returns the cache's capacity upper bound.
func (c *Cache[K]) Maxlen() int { return c.maxlen }

// Len returns the current number of admitted keys.
func (c *Cache[K]) Len() int { return c.set.Len() }

// Has reports whether k is admitted, without side effects.
func (c *Cache[K]) Has(k K) bool { return c.set.Has(k) }

// Get reports a hit for k. Unlike LRU, a hit never reorders the cache:
// the oldest key is still evicted first regardless of how often it was
// read.
func (c *Cache[K]) Get(k K) bool { return c.set.Has(k) }

// Put admits k.
//
// If k is already present, this is a no-op: FIFO keeps insertion order
// and a repeated Put does not reorder it. If k is absent and the cache
// is full, the oldest key is evicted to make room. evictedOK is false
// when nothing was evicted.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if c.set.Has(k) {
		return evicted, false
	}
	if c.set.Len() >= c.maxlen {
		victim, _ := c.set.PopBottom()
		_ = c.set.AppendTop(k)
		return victim, true
	}
	_ = c.set.AppendTop(k)
	return evicted, false
}

// Remove deletes k if present and reports whether a removal occurred.
func (c *Cache[K]) Remove(k K) bool { return c.set.Remove(k) }

// Clear empties the cache.
func (c *Cache[K]) Clear() { c.set.Clear() }

// Dump returns the cache's contents newest first.
func (c *Cache[K]) Dump() []K { return c.set.Values() }

// Position returns k's 0-based index in Dump order (0 is newest). It
// returns a wrapped orderedset.ErrNotFound if k is absent.
func (c *Cache[K]) Position(k K) (int, error) { return c.set.Position(k) }

var (
	_ cache.Cache[string]      = (*Cache[string])(nil)
	_ cache.Positioner[string] = (*Cache[string])(nil)
)
