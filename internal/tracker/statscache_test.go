package tracker

import (
	"testing"

	"github.com/aevon-lab/stepboard/internal/core/steps"
	"github.com/stretchr/testify/require"
)

func TestStatsCache_GetMatchesAsOf(t *testing.T) {
	c := newStatsCache(4)
	c.Put("42", "2026-10-19", c.Generation("42"), steps.Stats{Total: 10})

	got, ok := c.Get("42", "2026-10-19")
	require.True(t, ok)
	require.Equal(t, int64(10), got.Total)

	_, ok = c.Get("42", "2026-10-20")
	require.False(t, ok)
}

func TestStatsCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newStatsCache(2)
	c.Put("a", "d", 0, steps.Stats{Total: 1})
	c.Put("b", "d", 0, steps.Stats{Total: 2})

	_, ok := c.Get("a", "d")
	require.True(t, ok)

	c.Put("c", "d", 0, steps.Stats{Total: 3})
	require.Equal(t, 2, c.Len())

	_, ok = c.Get("b", "d")
	require.False(t, ok)
	_, ok = c.Get("a", "d")
	require.True(t, ok)
}

func TestStatsCache_DropsStaleGeneration(t *testing.T) {
	c := newStatsCache(2)

	gen := c.Generation("42")
	c.Invalidate("42")
	c.Put("42", "d", gen, steps.Stats{Total: 99})

	_, ok := c.Get("42", "d")
	require.False(t, ok)
	require.Equal(t, 0, c.Len())
}

func TestStatsCache_InvalidateRemovesSlot(t *testing.T) {
	c := newStatsCache(2)
	c.Put("42", "d", 0, steps.Stats{Total: 1})
	c.Invalidate("42")

	_, ok := c.Get("42", "d")
	require.False(t, ok)
	require.Equal(t, uint64(1), c.Generation("42"))
}
