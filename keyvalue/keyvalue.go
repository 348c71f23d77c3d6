// Package keyvalue provides a key/value decorator over any
// [github.com/orderedcache/ocache/cache.Cache].
//
// # When to Use Keyvalue
//
// Every policy in this module is keys-only: it tracks which keys are
// admitted and in what order, but carries no payload. Wrap a policy
// with Keyvalue to attach an associated value to each key, the way a
// typical cache library's public API looks.
//
// # How Keyvalue Works
//
// Keyvalue holds a reference to an inner [cache.Cache] plus a parallel
// map from key to value. Put stores the value first, then forwards the
// key to the inner cache; when the inner cache reports an eviction,
// Keyvalue looks up and removes that key's value before returning it
// alongside the evicted key. Dump walks the inner cache's key order
// and pairs each key with its stored value.
//
// Keyvalue is generic over [cache.Cache], not
// [cache.MembershipCache]: it needs a flat key order to produce
// Dump's (key, value) pairs, which rules out composing it directly
// with Segmented LRU's tiered Dump.
//
// # Concurrency
//
// Cache is not safe for concurrent use; synchronize externally if
// needed.
//
// # Performance
//
// Has, Get, Put, Remove, Clear cost whatever the wrapped cache costs,
// plus O(1) for the value map lookup. Dump is O(n).
//
// # Example Usage
//
//	inner, _ := fifo.New[int](3)
//	c := keyvalue.New[int, string](inner)
//	c.Put(1, "a")
//	v, _ := c.Get(1) // v == "a"
package keyvalue

import (
	"github.com/orderedcache/ocache/cache"
)

// Pair is one (key, value) entry as returned by [Cache.Dump].
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Cache decorates an inner [cache.Cache] with an associated value per
// key.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable, V any] struct {
	inner  cache.Cache[K]
	values map[K]V
}

// New wraps inner with a parallel value store.
func New[K comparable, V any](inner cache.Cache[K]) *Cache[K, V] {
	return &Cache[K, V]{inner: inner, values: make(map[K]V)}
}

// Maxlen returns the wrapped cache's capacity upper bound.
func (c *Cache[K, V]) Maxlen() int { return c.inner.Maxlen() }

// Len returns the wrapped cache's current number of entries.
func (c *Cache[K, V]) Len() int { return c.inner.Len() }

// Has reports whether k is present, without side effects.
func (c *Cache[K, V]) Has(k K) bool { return c.inner.Has(k) }

// Get returns k's stored value and reports a hit, reordering the
// wrapped cache per its policy. ok is false on a miss, in which case
// the returned value is the zero value of V.
func (c *Cache[K, V]) Get(k K) (value V, ok bool) {
	if !c.inner.Get(k) {
		return value, false
	}
	return c.values[k], true
}

// Put stores value for k and admits k into the wrapped cache.
//
// If the wrapped cache evicts a key to make room, that key's stored
// value is removed and both are returned; evictedOK is false when
// nothing was evicted.
func (c *Cache[K, V]) Put(k K, value V) (evictedKey K, evictedValue V, evictedOK bool) {
	c.values[k] = value
	victim, ok := c.inner.Put(k)
	if !ok {
		return evictedKey, evictedValue, false
	}
	evictedValue = c.values[victim]
	delete(c.values, victim)
	return victim, evictedValue, true
}

// Remove deletes k and its value if present, and reports whether a
// removal occurred.
func (c *Cache[K, V]) Remove(k K) bool {
	if !c.inner.Remove(k) {
		return false
	}
	delete(c.values, k)
	return true
}

// Clear empties the wrapped cache and its value store.
func (c *Cache[K, V]) Clear() {
	c.inner.Clear()
	c.values = make(map[K]V)
}

// Dump returns the cache's contents as (key, value) pairs, in the
// wrapped cache's Dump order.
func (c *Cache[K, V]) Dump() []Pair[K, V] {
	keys := c.inner.Dump()
	out := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		out[i] = Pair[K, V]{Key: k, Value: c.values[k]}
	}
	return out
}
