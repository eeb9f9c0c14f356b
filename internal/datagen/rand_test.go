package datagen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntBetweenBounds(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 1000; i++ {
		v := src.IntBetween(3, 7)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 7)
	}
	assert.Equal(t, 5, src.IntBetween(5, 5))
}

func TestPriceBetweenRoundsToCents(t *testing.T) {
	src := NewSource(2)
	for i := 0; i < 500; i++ {
		v := src.PriceBetween(9.99, 399.99)
		assert.Equal(t, v, float64(int64(v*100+0.5))/100)
		assert.GreaterOrEqual(t, v, 9.99)
		assert.Less(t, v, 400.0)
	}
}

func TestPickWeightedFrequencies(t *testing.T) {
	src := NewSource(3)
	values := []string{"a", "b", "c"}
	weights := []float64{0.7, 0.2, 0.1}

	counts := map[string]int{}
	const draws = 10000
	for i := 0; i < draws; i++ {
		counts[src.PickWeighted(values, weights)]++
	}

	assert.InDelta(t, 0.7, float64(counts["a"])/draws, 0.03)
	assert.InDelta(t, 0.2, float64(counts["b"])/draws, 0.03)
	assert.InDelta(t, 0.1, float64(counts["c"])/draws, 0.03)
}

func TestPickWeightedRejectsBadTables(t *testing.T) {
	src := NewSource(4)
	assert.Panics(t, func() {
		src.PickWeighted([]string{"a", "b"}, []float64{1})
	})
	assert.Panics(t, func() {
		src.PickWeighted([]string{"a", "b"}, []float64{0, 0})
	})
	assert.Panics(t, func() {
		src.PickWeighted([]string{"a"}, []float64{-1})
	})
}

func TestDateWithinDays(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	src := NewSourceAt(5, func() time.Time { return now })

	earliest := now.AddDate(0, 0, -365)
	for i := 0; i < 500; i++ {
		s := src.DateWithinDays(365)
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		assert.False(t, d.Before(earliest.Truncate(24*time.Hour)))
		assert.False(t, d.After(now))
	}
}

func TestSourceIsDeterministicPerSeed(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntBetween(0, 1000), b.IntBetween(0, 1000))
	}

	c := NewSource(43)
	d := NewSource(42)
	same := true
	for i := 0; i < 100; i++ {
		if c.IntBetween(0, 1000) != d.IntBetween(0, 1000) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}
