// Package lfu provides an LFU (Least Frequently Used) eviction policy.
//
// # When to Use LFU
//
// Use LFU when access frequency, not recency, predicts future value. A
// key read a hundred times stays admitted even through a long gap,
// unlike LRU where it would eventually age out. This is ideal for:
//   - Long-tail workloads where popularity is stable over time
//   - Caches where a single burst of unrelated reads (scan resistance
//     that [github.com/orderedcache/ocache/slru] solves via tiering)
//     should not evict consistently popular keys
//
// # How LFU Works
//
// A single map tracks each admitted key's access frequency and its
// insertion sequence number from a monotonic counter. A hit increments
// frequency. On eviction, the victim is the key with the smallest
// (frequency, sequence) pair — the least-used key, ties broken in favor
// of evicting the one admitted first. The counter never resets, even
// across Clear, so sequence numbers stay strictly increasing for the
// life of the process if the cache is reused.
//
// Unlike LRU/FIFO/Random, repeated Get calls on the same key are not
// idempotent: two Gets increase its frequency by 2, not by the same
// amount as one Get.
//
// # Concurrency
//
// Cache is not safe for concurrent use; synchronize externally if
// needed.
//
// # Performance
//
// Has, Get, Remove are O(1). Put is O(n) in the worst case (the victim
// search scans every member); Dump and Clear are O(n log n) and O(n)
// respectively.
//
// # Example Usage
//
//	c, _ := lfu.New[string](4)
//	c.Put("a")
//	c.Get("a") // freq(a) == 2
//	c.Put("b")
//	c.Put("c")
//	c.Put("d")
//	victim, _ := c.Put("e") // evicts the member with the smallest (freq, seq)
package lfu

import (
	"fmt"
	"sort"

	"github.com/orderedcache/ocache/cache"
)

type entry struct {
	freq uint64
	seq  uint64
}

// Cache implements the LFU eviction policy over keys of type K.
//
// The zero value is not usable; create instances with [New].
type Cache[K comparable] struct {
	maxlen  int
	entries map[K]entry
	next    uint64
}

// New creates a new LFU cache with the given maximum capacity. It
// returns cache.ErrInvalidCapacity if maxlen < 1.
func New[K comparable](maxlen int) (*Cache[K], error) {
	if maxlen < 1 {
		return nil, fmt.Errorf("lfu.New: maxlen %d: %w", maxlen, cache.ErrInvalidCapacity)
	}
	return &Cache[K]{maxlen: maxlen, entries: make(map[K]entry)}, nil
}

// Maxlen returns the cache's capacity upper bound.
func (c *Cache[K]) Maxlen() int { return c.maxlen }

// Len returns the current number of admitted keys.
func (c *Cache[K]) Len() int { return len(c.entries) }

// Has reports whether k is admitted, without side effects.
func (c *Cache[K]) Has(k K) bool {
	_, ok := c.entries[k]
	return ok
}

// Get reports a hit for k and, on a hit, increments its frequency. Two
// consecutive Get calls increment frequency by 2, not 1 — LFU's hit path
// is not idempotent.
func (c *Cache[K]) Get(k K) bool {
	e, ok := c.entries[k]
	if !ok {
		return false
	}
	e.freq++
	c.entries[k] = e
	return true
}

// Put admits k.
//
// If k is already present, its frequency is incremented and no eviction
// occurs. If k is absent and the cache is full, the member with the
// smallest (frequency, insertion-sequence) pair is evicted; k is then
// inserted with frequency 1 and a fresh sequence number. evictedOK is
// false when nothing was evicted.
func (c *Cache[K]) Put(k K) (evicted K, evictedOK bool) {
	if e, ok := c.entries[k]; ok {
		e.freq++
		c.entries[k] = e
		return evicted, false
	}

	if len(c.entries) >= c.maxlen {
		victim := c.argmin()
		delete(c.entries, victim)
		evicted, evictedOK = victim, true
	}

	c.next++
	c.entries[k] = entry{freq: 1, seq: c.next}
	return evicted, evictedOK
}

// argmin returns the member with the smallest (freq, seq) pair.
func (c *Cache[K]) argmin() K {
	var (
		victim K
		best   entry
		first  = true
	)
	for k, e := range c.entries {
		if first || e.freq < best.freq || (e.freq == best.freq && e.seq < best.seq) {
			victim, best, first = k, e, false
		}
	}
	return victim
}

// Remove deletes k if present and reports whether a removal occurred.
func (c *Cache[K]) Remove(k K) bool {
	if _, ok := c.entries[k]; !ok {
		return false
	}
	delete(c.entries, k)
	return true
}

// Clear empties the cache. The insertion-sequence counter is not reset.
func (c *Cache[K]) Clear() {
	c.entries = make(map[K]entry)
}

// Dump returns the cache's contents in eviction order: smallest
// (frequency, insertion-sequence) first.
func (c *Cache[K]) Dump() []K {
	keys := make([]K, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := c.entries[keys[i]], c.entries[keys[j]]
		if a.freq != b.freq {
			return a.freq < b.freq
		}
		return a.seq < b.seq
	})
	return keys
}

var _ cache.Cache[string] = (*Cache[string])(nil)
