// Package admit provides a random-admission decorator over any
// [github.com/orderedcache/ocache/cache.MembershipCache].
//
// # When to Use Admit
//
// Wrap a cache with Admit to thin out one-hit-wonder admissions in a
// workload dominated by keys that are requested exactly once. Rather
// than letting every miss evict a potentially more valuable member,
// Admit only forwards a fraction p of new-key puts to the inner cache,
// discarding the rest before they ever compete for a slot.
//
// # How Admit Works
//
// Admit holds a reference to an inner cache and a Bernoulli gate with
// success probability p. Put on a key the inner cache doesn't already
// have is forwarded with probability p and silently dropped otherwise;
// put on an already-present key is always forwarded unchanged, since
// it reorders rather than admits. Every other operation — has, get,
// remove, clear, len, maxlen — passes straight through.
//
// Admit is generic over [cache.MembershipCache], not
// [cache.Cache], so it composes with every policy in this module,
// including Segmented LRU, whose tiered Dump doesn't satisfy Cache.
//
// # Concurrency
//
// Cache is not safe for concurrent use; synchronize externally if
// needed.
//
// # Performance
//
// Every operation costs whatever the wrapped cache costs, plus O(1)
// for the admission coin flip on Put.
//
// # Example Usage
//
//	inner, _ := lru.New[string](1000)
//	c, _ := admit.New[string](inner, 0.1) // admit ~10% of new keys
//	c.Put("a")                            // forwarded with probability 0.1
package admit

import (
	"fmt"
	"math/rand"

	"github.com/orderedcache/ocache/cache"
)

// Cache decorates an inner [cache.MembershipCache] with random
// admission: a new key's Put is forwarded to the inner cache only with
// probability p.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	inner cache.MembershipCache[K]
	p     float64
}

// New wraps inner with random admission probability p. It returns
// cache.ErrInvalidProbability if p is not in (0, 1].
func New[K comparable](inner cache.MembershipCache[K], p float64) (*Cache[K], error) {
	if p <= 0 || p > 1 {
		return nil, fmt.Errorf("admit.New: p %v: %w", p, cache.ErrInvalidProbability)
	}
	return &Cache[K]{inner: inner, p: p}, nil
}

// Maxlen returns the wrapped cache's capacity upper bound.
func (c *Cache[K]) Maxlen() int { return c.inner.Maxlen() }

// Len returns the wrapped cache's current number of entries.
func (c *Cache[K]) Len() int { return c.inner.Len() }

// Has reports whether k is present in the wrapped cache, without side
// effects.
func (c *Cache[K]) Has(k K) bool { return c.inner.Has(k) }

// Get reports a hit for k and reorders the wrapped cache per its
// policy. Admission is a Put-time concern only; Get always forwards.
func (c *Cache[K]) Get(k K) bool { return c.inner.Get(k) }

// Put admits k, subject to random admission for keys not already
// present.
//
// If k is already present in the wrapped cache, the call always
// forwards (a reorder, not a new admission). If k is absent, the call
// forwards with probability p and is otherwise dropped, reporting no
// eviction. evictedOK is false whenever the put is dropped or the
// wrapped cache had room.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if !c.inner.Has(k) && rand.Float64() >= c.p {
		return evicted, false
	}
	return c.inner.Put(k)
}

// Remove deletes k from the wrapped cache if present and reports
// whether a removal occurred.
func (c *Cache[K]) Remove(k K) bool { return c.inner.Remove(k) }

// Clear empties the wrapped cache.
func (c *Cache[K]) Clear() { c.inner.Clear() }

var _ cache.MembershipCache[string] = (*Cache[string])(nil)
