package lru_test

import (
	"testing"

	"github.com/orderedcache/ocache/cache"
	"github.com/orderedcache/ocache/lru"
	"github.com/orderedcache/ocache/orderedset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	t.Parallel()

	_, err := lru.New[string](0)
	assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
}

func TestGetOnEmptyCache(t *testing.T) {
	t.Parallel()

	c, err := lru.New[string](5)
	require.NoError(t, err)

	assert.False(t, c.Get("some"))
}

// TestScenario walks the §8 worked example for LRU(4) verbatim.
func TestScenario(t *testing.T) {
	t.Parallel()

	c, err := lru.New[int](4)
	require.NoError(t, err)

	for _, k := range []int{0, 2, 3, 4} {
		_, evicted := c.Put(k)
		assert.False(t, evicted)
	}
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int{4, 3, 2, 0}, c.Dump())

	victim, evicted := c.Put(5)
	assert.True(t, evicted)
	assert.Equal(t, 0, victim)

	_, evicted = c.Put(5)
	assert.False(t, evicted)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, []int{5, 4, 3, 2}, c.Dump())

	assert.True(t, c.Get(2))
	assert.Equal(t, []int{2, 5, 4, 3}, c.Dump())

	assert.True(t, c.Get(4))
	assert.Equal(t, []int{4, 2, 5, 3}, c.Dump())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Dump())
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c, err := lru.New[int](4)
	require.NoError(t, err)

	c.Put(1)
	c.Put(2)
	c.Put(3)
	assert.True(t, c.Remove(2))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int{3, 1}, c.Dump())

	c.Put(4)
	c.Put(5)
	assert.Equal(t, []int{5, 4, 3, 1}, c.Dump())

	assert.True(t, c.Remove(5))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []int{4, 3, 1}, c.Dump())

	assert.True(t, c.Remove(1))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []int{4, 3}, c.Dump())

	assert.False(t, c.Remove(99))
}

func TestPosition(t *testing.T) {
	t.Parallel()

	c, err := lru.New[int](4)
	require.NoError(t, err)

	for _, k := range []int{4, 3, 2, 1} {
		c.Put(k)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, c.Dump())

	for want, k := range []int{1, 2, 3, 4} {
		pos, err := c.Position(k)
		require.NoError(t, err)
		assert.Equal(t, want, pos)
	}

	_, err = c.Position(99)
	assert.ErrorIs(t, err, orderedset.ErrNotFound)
}

// TestGetMovesToFront checks the invariant from spec.md §8: after Get on a
// present key, Position(k) == 0.
func TestGetMovesToFront(t *testing.T) {
	t.Parallel()

	c, err := lru.New[int](4)
	require.NoError(t, err)

	c.Put(1)
	c.Put(2)
	c.Put(3)

	require.True(t, c.Get(1))
	pos, err := c.Position(1)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)
}

func TestPutRepeatedReturnsNoEviction(t *testing.T) {
	t.Parallel()

	c, err := lru.New[int](2)
	require.NoError(t, err)

	c.Put(1)
	c.Put(2)
	_, evicted := c.Put(1)
	assert.False(t, evicted)
	assert.Equal(t, []int{1, 2}, c.Dump())
}
