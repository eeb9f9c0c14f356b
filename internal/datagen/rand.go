// Package datagen produces the synthetic e-commerce dataset: customers,
// products, and orders with their items and payments. All randomness flows
// through one seeded Source in a fixed call order, so the same seed yields
// the same dataset.
package datagen

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Source is the shared pseudo-random stream for one generation run. It is
// not safe for concurrent use; generation is strictly sequential.
type Source struct {
	rng *rand.Rand
	now func() time.Time
}

// NewSource returns a Source seeded for reproducible output.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), now: time.Now}
}

// NewSourceAt pins the clock used for trailing date windows. Used by tests
// that need byte-identical output across invocations.
func NewSourceAt(seed int64, now func() time.Time) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed)), now: now}
}

// IntBetween returns a random int in [min, max] inclusive.
func (s *Source) IntBetween(min, max int) int {
	if min >= max {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// FloatBetween returns a random float64 in [min, max).
func (s *Source) FloatBetween(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// PriceBetween returns a random price in [min, max) rounded to cents.
func (s *Source) PriceBetween(min, max float64) float64 {
	return roundCents(s.FloatBetween(min, max))
}

// Pick returns a uniformly random element of pool.
func (s *Source) Pick(pool []string) string {
	return pool[s.rng.Intn(len(pool))]
}

// PickWeighted selects one of values with long-run frequency weight/total.
// values and weights are fixed tables declared next to each other, so a
// mismatch or non-positive total is a programming error and panics.
func (s *Source) PickWeighted(values []string, weights []float64) string {
	if len(values) != len(weights) {
		panic(fmt.Sprintf("datagen: %d values vs %d weights", len(values), len(weights)))
	}
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("datagen: weights must sum to a positive total")
	}
	r := s.rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r < 0 {
			return values[i]
		}
	}
	return values[len(values)-1]
}

// DateWithinDays returns a uniformly random date in the trailing daysBack
// window, formatted YYYY-MM-DD.
func (s *Source) DateWithinDays(daysBack int) string {
	start := s.now().AddDate(0, 0, -daysBack)
	offset := s.IntBetween(0, daysBack)
	return start.AddDate(0, 0, offset).Format("2006-01-02")
}

// roundCents rounds to two decimals, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
