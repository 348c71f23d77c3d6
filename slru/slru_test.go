package slru_test

import (
	"testing"

	"github.com/orderedcache/ocache/cache"
	"github.com/orderedcache/ocache/slru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidCapacity(t *testing.T) {
	t.Parallel()

	_, err := slru.New[string](0, 1)
	assert.ErrorIs(t, err, cache.ErrInvalidCapacity)
}

func TestNewRejectsInvalidSegments(t *testing.T) {
	t.Parallel()

	_, err := slru.New[string](9, 0)
	assert.ErrorIs(t, err, cache.ErrInvalidSegments)

	_, err = slru.New[string](9, 2) // 9 does not divide evenly by 2
	assert.ErrorIs(t, err, cache.ErrInvalidSegments)
}

func TestGetOnEmptyCache(t *testing.T) {
	t.Parallel()

	c, err := slru.New[string](10, 2)
	require.NoError(t, err)
	assert.False(t, c.Get("missing"))
}

// TestScenario walks the §8 worked example for SLRU(9,3) verbatim.
func TestScenario(t *testing.T) {
	t.Parallel()

	c, err := slru.New[int](9, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, c.Maxlen())

	_, evicted := c.Put(1)
	assert.False(t, evicted)
	assert.Equal(t, [][]int{{}, {}, {1}}, c.Dump())

	c.Put(2)
	assert.Equal(t, [][]int{{}, {}, {2, 1}}, c.Dump())

	c.Put(3)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, [][]int{{}, {}, {3, 2, 1}}, c.Dump())

	assert.True(t, c.Get(2))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, [][]int{{}, {2}, {3, 1}}, c.Dump())

	assert.True(t, c.Get(2))
	assert.Equal(t, [][]int{{2}, {}, {3, 1}}, c.Dump())

	c.Put(4)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, [][]int{{2}, {}, {4, 3, 1}}, c.Dump())

	victim, evicted := c.Put(5)
	assert.True(t, evicted)
	assert.Equal(t, 1, victim)
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, [][]int{{2}, {}, {5, 4, 3}}, c.Dump())

	assert.True(t, c.Get(5))
	assert.Equal(t, [][]int{{2}, {5}, {4, 3}}, c.Dump())

	c.Put(6)
	assert.Equal(t, 5, c.Len())
	assert.Equal(t, [][]int{{2}, {5}, {6, 4, 3}}, c.Dump())

	assert.True(t, c.Get(6))
	assert.Equal(t, [][]int{{2}, {6, 5}, {4, 3}}, c.Dump())

	assert.True(t, c.Get(3))
	assert.Equal(t, [][]int{{2}, {3, 6, 5}, {4}}, c.Dump())

	assert.True(t, c.Get(4))
	assert.Equal(t, [][]int{{2}, {4, 3, 6}, {5}}, c.Dump())

	assert.True(t, c.Get(4))
	assert.Equal(t, [][]int{{4, 2}, {3, 6}, {5}}, c.Dump())
}

// buildMixedTiers puts 1, 2, promotes 1 to the protected tier via Get,
// then admits 3 and 4 (evicting 2, the admission tier's LRU, since its
// capacity is 2). Final state: tier0=[1], tier1=[4,3].
func buildMixedTiers(t *testing.T) *slru.Cache[int] {
	t.Helper()

	c, err := slru.New[int](4, 2)
	require.NoError(t, err)

	c.Put(1)
	c.Put(2)
	require.True(t, c.Get(1))
	c.Put(3)
	_, evicted := c.Put(4)
	require.True(t, evicted)

	require.Equal(t, [][]int{{1}, {4, 3}}, c.Dump())
	return c
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := buildMixedTiers(t)

	assert.True(t, c.Remove(4))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Remove(3))
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Remove(1))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, [][]int{{}, {}}, c.Dump())

	assert.False(t, c.Remove(99))
	assert.False(t, c.Remove(2)) // evicted earlier, never present to remove now
}

func TestHas(t *testing.T) {
	t.Parallel()

	c := buildMixedTiers(t)

	for _, v := range []int{1, 3, 4} {
		assert.True(t, c.Has(v))
	}
	assert.False(t, c.Has(2)) // evicted when 4 was admitted
	assert.False(t, c.Has(5))
}

// TestTierCapacityNeverExceeded checks the invariant from spec.md §4.5:
// "for every tier t, the tier's size never exceeds maxlen/S at any
// observable point."
func TestTierCapacityNeverExceeded(t *testing.T) {
	t.Parallel()

	c, err := slru.New[int](9, 3)
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		c.Put(i)
		c.Get(i)
		c.Get(i % 7)
		for _, tier := range c.Dump() {
			assert.LessOrEqual(t, len(tier), 3)
		}
	}
}

func TestPosition(t *testing.T) {
	t.Parallel()

	c := buildMixedTiers(t) // dump = [[1], [4, 3]]

	for want, k := range []int{1, 4, 3} {
		pos, err := c.Position(k)
		require.NoError(t, err)
		assert.Equal(t, want, pos)
	}

	_, err := c.Position(2)
	assert.Error(t, err)
}

func TestPutOnExistingKeyDoesNotReorder(t *testing.T) {
	t.Parallel()

	c, err := slru.New[int](4, 2)
	require.NoError(t, err)

	c.Put(1)
	c.Put(2)
	before := c.Dump()
	_, evicted := c.Put(1)
	assert.False(t, evicted)
	assert.Equal(t, before, c.Dump())
}
