package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
// A single instance is owned by the world and handed to every component that
// needs randomness; it is not safe for concurrent use.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.seed = seed
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// Seed reports the seed the current sequence started from.
func (r *RNG) Seed() int64 { return r.seed }

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Float32 returns a random float32 in [0, 1).
func (r *RNG) Float32() float32 {
	return r.r.Float32()
}

// Range returns a random float32 in [lo, hi).
func (r *RNG) Range(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + r.r.Float32()*(hi-lo)
}

// Int63 returns a non-negative pseudo-random 63-bit integer, used to derive
// seeds for dependent generators such as noise fields.
func (r *RNG) Int63() int64 {
	return r.r.Int64()
}
