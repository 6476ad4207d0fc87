package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Seed derives a child seed, e.g. one per noise octave or chunk.
func (r *RNG) Seed() int64 {
	return r.r.Int64()
}

// Shuffle permutes n elements through swap.
func (r *RNG) Shuffle(n int, swap func(i, j int)) {
	r.r.Shuffle(n, swap)
}

// FillUniform fills the buffer with values drawn uniformly from [lo, hi).
func FillUniform(r *rand.Rand, buf []float64, lo, hi float64) {
	for i := range buf {
		buf[i] = lo + r.Float64()*(hi-lo)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
