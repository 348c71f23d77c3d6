// Package slru provides a Segmented LRU (SLRU) eviction policy.
//
// # When to Use SLRU
//
// Use SLRU when you need better scan resistance than plain LRU. SLRU
// protects frequently accessed keys from being evicted by a burst of new
// admissions. This is ideal for:
//   - Workloads mixing frequent "hot" keys with occasional full scans
//   - Caches where a crawl or scan shouldn't evict popular content
//
// # How SLRU Works
//
// The cache is divided into a fixed sequence of S equal-capacity tiers,
// each an [github.com/orderedcache/ocache/orderedset.OrderedSet]. Tier 0
// is the most protected; tier S-1 is the admission tier new keys enter.
// A hit promotes a key one tier toward 0; if the receiving tier
// overflows, its bottom key is demoted one tier back down (a "demotion
// exchange"), keeping every tier's size at or under its capacity at all
// times. Eviction only ever happens out of the admission tier, when a
// brand-new key is admitted into an already-full tier S-1.
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
//	c, _ := slru.New[string](9, 3) // 3 tiers of 3 slots each
//	c.Put("page:1")                // enters tier 2 (admission)
//	c.Get("page:1")                // promoted to tier 1
//	c.Get("page:1")                // promoted to tier 0 (most protected)
package slru

import (
	"fmt"

	"github.com/orderedcache/ocache/cache"
	"github.com/orderedcache/ocache/orderedset"
)

// Cache implements the Segmented LRU eviction policy over keys of type
// K. Tier index 0 is the most protected; tier index len(tiers)-1 is the
// admission tier.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	maxlen  int
	tierCap int
	tiers   []*orderedset.OrderedSet[K]
	tierOf  map[K]int
}

// New creates a new Segmented LRU cache with the given total capacity
// and number of tiers. It returns cache.ErrInvalidCapacity if maxlen < 1,
// or cache.ErrInvalidSegments if segments < 1 or maxlen is not evenly
// divisible by segments.
func New[K comparable](maxlen, segments int) (*Cache[K], error) {
	if maxlen < 1 {
		return nil, fmt.Errorf("slru.New: maxlen %d: %w", maxlen, cache.ErrInvalidCapacity)
	}
	if segments < 1 || maxlen%segments != 0 {
		return nil, fmt.Errorf("slru.New: maxlen %d, segments %d: %w", maxlen, segments, cache.ErrInvalidSegments)
	}

	tiers := make([]*orderedset.OrderedSet[K], segments)
	for i := range tiers {
		tiers[i] = orderedset.New[K]()
	}

	return &Cache[K]{
		maxlen:  maxlen,
		tierCap: maxlen / segments,
		tiers:   tiers,
		tierOf:  make(map[K]int),
	}, nil
}

// admissionTier is the index of the tier newcomers enter: S-1.
func (c *Cache[K]) admissionTier() int { return len(c.tiers) - 1 }

// Maxlen returns the cache's total capacity upper bound across all tiers.
func (c *Cache[K]) Maxlen() int { return c.maxlen }

// Len returns the current number of admitted keys across all tiers.
func (c *Cache[K]) Len() int {
	n := 0
	for _, t := range c.tiers {
		n += t.Len()
	}
	return n
}

// Has reports whether k is admitted in any tier, without side effects.
func (c *Cache[K]) Has(k K) bool {
	_, ok := c.tierOf[k]
	return ok
}

// Get reports a hit for k. On a hit in tier t > 0, k is promoted one
// tier toward 0; if the receiving tier is now over capacity its bottom
// key is demoted one tier back down. On a hit in tier 0, k simply moves
// to the top of tier 0.
func (c *Cache[K]) Get(k K) bool {
	t, ok := c.tierOf[k]
	if !ok {
		return false
	}
	if t == 0 {
		_ = c.tiers[0].MoveToTop(k)
		return true
	}
	c.promote(t, k)
	return true
}

// promote moves k from tier t to tier t-1, demoting tier t-1's LRU key
// back to tier t if t-1 overflows as a result.
func (c *Cache[K]) promote(t int, k K) {
	c.tiers[t].Remove(k)
	dest := t - 1
	_ = c.tiers[dest].AppendTop(k)
	c.tierOf[k] = dest

	if c.tiers[dest].Len() > c.tierCap {
		demoted, _ := c.tiers[dest].PopBottom()
		_ = c.tiers[t].AppendTop(demoted)
		c.tierOf[demoted] = t
	}
}

// Put admits k.
//
// If k is already present, it is left in place (put never promotes). If
// k is absent, it enters the top of the admission tier; if that tier is
// now over capacity, its bottom key is evicted and returned. evictedOK
// is false when nothing was evicted.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if c.Has(k) {
		return evicted, false
	}

	admission := c.admissionTier()
	_ = c.tiers[admission].AppendTop(k)
	c.tierOf[k] = admission

	if c.tiers[admission].Len() > c.tierCap {
		victim, _ := c.tiers[admission].PopBottom()
		delete(c.tierOf, victim)
		return victim, true
	}
	return evicted, false
}

// Remove deletes k from whichever tier holds it and reports whether a
// removal occurred.
func (c *Cache[K]) Remove(k K) bool {
	t, ok := c.tierOf[k]
	if !ok {
		return false
	}
	c.tiers[t].Remove(k)
	delete(c.tierOf, k)
	return true
}

// Clear empties every tier.
func (c *Cache[K]) Clear() {
	for _, t := range c.tiers {
		t.Clear()
	}
	c.tierOf = make(map[K]int)
}

// Dump returns the cache's contents as a list of tiers, highest (most
// protected, index 0) first; each tier is listed top to bottom.
func (c *Cache[K]) Dump() [][]K {
	out := make([][]K, len(c.tiers))
	for i, t := range c.tiers {
		out[i] = t.Values()
	}
	return out
}

// Position returns k's 0-based global index, computed by concatenating
// tiers in Dump order. It returns a wrapped orderedset.ErrNotFound if k
// is absent.
func (c *Cache[K]) Position(k K) (int, error) {
	t, ok := c.tierOf[k]
	if !ok {
		return 0, fmt.Errorf("slru: position %v: %w", k, orderedset.ErrNotFound)
	}
	base := 0
	for i := 0; i < t; i++ {
		base += c.tiers[i].Len()
	}
	p, err := c.tiers[t].Position(k)
	if err != nil {
		return 0, err
	}
	return base + p, nil
}

var _ cache.MembershipCache[string] = (*Cache[string])(nil)
var _ cache.Positioner[string] = (*Cache[string])(nil)
