// Package lru provides an LRU (Least Recently Used) eviction policy.
//
// # When to Use LRU
//
// Use LRU when you want to keep frequently accessed keys admitted. Keys
// that haven't been accessed recently are evicted first. This is ideal
// for:
//   - Workloads with temporal locality (recent keys accessed again soon)
//   - General-purpose admission where no single segment needs extra
//     protection (compare [github.com/orderedcache/ocache/slru])
//
// # How LRU Works
//
// A single [github.com/orderedcache/ocache/orderedset.OrderedSet] holds
// every admitted key, top to bottom. Put appends a new key on top and,
// if the cache is already full, pops the bottom key as the victim. Get
// moves a hit to the top. Both operations keep the top end equal to the
// most recently used key and the bottom end equal to the least recently
// used one.
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
//	c, _ := lru.New[string](100)
//	c.Put("user:123")
//	if c.Get("user:123") {
//	    // hit; "user:123" is now most recently used
//	}
package lru

import (
	"fmt"

	"github.com/orderedcache/ocache/cache"
	"github.com/orderedcache/ocache/orderedset"
)

// Cache implements the LRU eviction policy over keys of type K.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	maxlen int
	set    *orderedset.OrderedSet[K]
}

// New creates a new LRU cache with the given maximum capacity. It
// returns cache.ErrInvalidCapacity if maxlen < 1.
func New[K comparable](maxlen int) (*Cache[K], error) {
	if maxlen < 1 {
		return nil, fmt.Errorf("lru.New: maxlen %d: %w", maxlen, cache.ErrInvalidCapacity)
	}
	return &Cache[K]{maxlen: maxlen, set: orderedset.New[K]()}, nil
}

// Maxlen returns the cache's capacity upper bound.
func (c *Cache[K]) Maxlen() int { return c.maxlen }

// Len returns the current number of admitted keys.
func (c *Cache[K]) Len() int { return c.set.Len() }

// Has reports whether k is admitted, without side effects.
func (c *Cache[K]) Has(k K) bool { return c.set.Has(k) }

// Get reports a hit for k and, on a hit, moves k to the top (most
// recently used). It never inserts.
func (c *Cache[K]) Get(k K) bool {
	if !c.set.Has(k) {
		return false
	}
	// MoveToTop cannot fail: Has(k) already confirmed membership.
	_ = c.set.MoveToTop(k)
	return true
}

// Put admits k.
//
// If k is already present, it moves to the top and no eviction occurs.
// If k is absent and the cache is full, the least recently used key is
// evicted to make room. evictedOK is false when nothing was evicted.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if c.set.Has(k) {
		_ = c.set.MoveToTop(k)
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

// Dump returns the cache's contents most recently used first.
func (c *Cache[K]) Dump() []K { return c.set.Values() }

// Position returns k's 0-based index in Dump order (0 is most recently
// used). It returns a wrapped orderedset.ErrNotFound if k is absent.
func (c *Cache[K]) Position(k K) (int, error) { return c.set.Position(k) }

var (
	_ cache.Cache[string]      = (*Cache[string])(nil)
	_ cache.Positioner[string] = (*Cache[string])(nil)
)
