// Package cache defines the contract shared by every eviction policy in
// this module (LRU, FIFO, Segmented LRU, LFU, Random) and the sentinel
// construction errors their constructors return. The orderedset package
// defines its own ErrDuplicate and ErrNotFound.
//
// # The Contract
//
// Every policy exposes has, get, put, remove, clear, len, and maxlen with
// identical semantics: put admits a key, evicting a policy-chosen victim
// if the cache is already full; get reports a hit and may reorder the
// cache per policy, but never inserts; remove deletes a key if present.
// None of these ever fails for membership reasons — they return false or
// a zero evicted key instead of raising an error. Only the lower-level
// orderedset operations and Position raise errors, and only for
// programmer mistakes (missing/duplicate keys, bad construction
// parameters).
//
// Dump is intentionally not part of MembershipCache: Segmented LRU
// reports its contents as a list of tiers rather than a flat sequence
// (see the slru package), so it satisfies MembershipCache but not Cache.
package cache

import "errors"

// ErrInvalidCapacity is returned by a policy constructor when maxlen < 1.
var ErrInvalidCapacity = errors.New("cache: maxlen must be at least 1")

// ErrInvalidSegments is returned by slru.New when segments < 1 or when
// maxlen is not evenly divisible by segments. A zero-capacity tier can
// only arise when segments does not divide maxlen, so this single check
// also covers that edge case.
var ErrInvalidSegments = errors.New("cache: segments must evenly divide maxlen")

// ErrInvalidProbability is returned by admit.New when p is outside (0, 1].
var ErrInvalidProbability = errors.New("cache: admission probability must be in (0, 1]")

// MembershipCache is the contract every policy in this module satisfies.
type MembershipCache[K comparable] interface {
	// Maxlen returns the capacity upper bound the cache was built with.
	Maxlen() int
	// Len returns the current number of entries, 0 <= Len() <= Maxlen().
	Len() int
	// Has reports whether k is present, without side effects.
	Has(k K) bool
	// Get reports a hit for k and reorders the cache per policy. It never
	// inserts: a miss leaves the cache unchanged.
	Get(k K) bool
	// Put admits k. If k is already present, the call reorders per policy
	// and reports no eviction. If the cache is full, a policy-chosen
	// victim is evicted to make room. evictedOK is false when nothing was
	// evicted.
	Put(k K) (evicted K, evictedOK bool)
	// Remove deletes k if present and reports whether a removal occurred.
	Remove(k K) bool
	// Clear empties the cache.
	Clear()
}

// Cache is a MembershipCache whose contents can be materialized as a flat,
// policy-ordered sequence. Every policy but Segmented LRU satisfies it.
type Cache[K comparable] interface {
	MembershipCache[K]
	// Dump returns the cache's current contents in policy-defined order.
	// Mutating the cache during iteration of the returned slice is
	// undefined; Dump returns a fresh snapshot, not a live view.
	Dump() []K
}

// Positioner is satisfied by policies that define position(): LRU, FIFO,
// and Segmented LRU.
type Positioner[K comparable] interface {
	// Position returns the 0-based index of k in Dump order, or an error
	// if k is absent.
	Position(k K) (int, error)
}
