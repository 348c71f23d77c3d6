// Package random provides a Random eviction policy.
//
// # When to Use Random
//
// Use Random when eviction order doesn't matter and cheap O(1)
// operations matter more than hit-rate tuning. It has
// no pathological access pattern: unlike LRU, a full scan can't evict
// every useful key, because the victim is chosen uniformly rather than
// by recency or frequency. This makes it a reasonable baseline or a
// fallback policy when the workload's access pattern is unknown or
// adversarial.
//
// # How Random Works
//
// Members live in a slice alongside a map from key to slice index.
// Eviction picks a uniformly random slot and removes it with a
// swap-pop against the last slot, which is why Dump's order carries no
// meaning beyond "every admitted key appears exactly once".
//
// # Concurrency
//
// Cache is not safe for concurrent use; synchronize externally if
// needed.
//
// # Performance
//
// Has, Get, Remove are O(1); Put is O(1) amortized (it appends to a
// growable slice). No operation searches the member set. Dump and Clear
// are O(n).
//
// # Example Usage
//
//	c, _ := random.New[string](4)
//	c.Put("a")
//	c.Put("b")
//	c.Put("c")
//	c.Put("d")
//	victim, _ := c.Put("e") // victim is uniformly one of a, b, c, d
package random

import (
	"fmt"
	"math/rand"

	"github.com/orderedcache/ocache/cache"
)

// Cache implements the Random eviction policy over keys of type K.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	maxlen  int
	slot    map[K]int
	members []K
}

// New creates a new Random cache with the given maximum capacity. It
// returns cache.ErrInvalidCapacity if maxlen < 1.
func New[K comparable](maxlen int) (*Cache[K], error) {
	if maxlen < 1 {
		return nil, fmt.Errorf("random.New: maxlen %d: %w", maxlen, cache.ErrInvalidCapacity)
	}
	return &Cache[K]{
		maxlen: maxlen,
		slot:   make(map[K]int),
	}, nil
}

// Maxlen returns the cache's capacity upper bound.
func (c *Cache[K]) Maxlen() int { return c.maxlen }

// Len returns the current number of admitted keys.
func (c *Cache[K]) Len() int { return len(c.members) }

// Has reports whether k is admitted, without side effects.
func (c *Cache[K]) Has(k K) bool {
	_, ok := c.slot[k]
	return ok
}

// Get reports a hit for k. Random has no notion of reordering on a
// hit, so Get never mutates the cache; it exists solely to satisfy
// MembershipCache and to report membership as a "hit" for callers that
// treat Get and Has interchangeably.
func (c *Cache[K]) Get(k K) bool {
	return c.Has(k)
}

// Put admits k.
//
// If k is already present, the call is a no-op and reports no
// eviction. If k is absent and the cache is full, a uniformly random
// member is evicted to make room. evictedOK is false when nothing was
// evicted.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if c.Has(k) {
		return evicted, false
	}

	if len(c.members) >= c.maxlen {
		victimSlot := rand.Intn(len(c.members))
		evicted = c.members[victimSlot]
		evictedOK = true
		c.removeSlot(victimSlot)
	}

	c.slot[k] = len(c.members)
	c.members = append(c.members, k)
	return evicted, evictedOK
}

// removeSlot deletes the member at index i via swap-pop against the
// last slot, keeping c.slot consistent with c.members.
func (c *Cache[K]) removeSlot(i int) {
	last := len(c.members) - 1
	victim := c.members[i]
	delete(c.slot, victim)

	if i != last {
		moved := c.members[last]
		c.members[i] = moved
		c.slot[moved] = i
	}
	c.members = c.members[:last]
}

// Remove deletes k if present and reports whether a removal occurred.
func (c *Cache[K]) Remove(k K) bool {
	i, ok := c.slot[k]
	if !ok {
		return false
	}
	c.removeSlot(i)
	return true
}

// Clear empties the cache.
func (c *Cache[K]) Clear() {
	c.slot = make(map[K]int)
	c.members = nil
}

// Dump returns the cache's contents in an arbitrary, policy-undefined
// order. Only its length and membership are a contract; callers must
// not rely on any particular ordering, including insertion order.
func (c *Cache[K]) Dump() []K {
	out := make([]K, len(c.members))
	copy(out, c.members)
	return out
}

var _ cache.Cache[string] = (*Cache[string])(nil)
