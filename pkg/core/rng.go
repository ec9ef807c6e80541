package core

import (
	"math/rand/v2"
	"time"
)

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// NewTimeSeededRNG seeds from the wall clock. Sequences are not reproducible.
func NewTimeSeededRNG() *RNG {
	now := time.Now().UnixNano()
	return &RNG{r: rand.New(rand.NewPCG(uint64(now), uint64(now>>17)))}
}

// Float64 returns a uniform value in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillDensity sets each cell to 1 when a uniform draw falls below density and
// to 0 otherwise. Densities at or beyond the unit interval bounds are exact.
func FillDensity(r *rand.Rand, buf []uint8, density float64) {
	for i := range buf {
		if r.Float64() < density {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
