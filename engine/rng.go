package engine

import "math/rand"

// Roller produces one die result in [1, sides].
type Roller interface {
	Roll(sides int) int
}

// RNG wraps math/rand.Rand with deterministic position tracking.
// Position increments with every call, enabling save/restore.
type RNG struct {
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewRNG creates a new deterministic RNG from a seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)),
	}
}

// Roll returns a uniform integer in [1, sides] as floor(u*sides)+1 for a
// uniform u in [0,1).
func (r *RNG) Roll(sides int) int {
	r.pos++
	if sides <= 1 {
		r.src.Float64()
		return 1
	}
	v := int(r.src.Float64()*float64(sides)) + 1
	if v > sides {
		v = sides
	}
	return v
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Position returns the number of RNG calls made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}

// RestoreRNG creates an RNG and advances it to the given position.
// This reproduces the exact RNG state for save/load.
func RestoreRNG(seed int64, position int64) *RNG {
	rng := NewRNG(seed)
	for i := int64(0); i < position; i++ {
		rng.src.Float64()
	}
	rng.pos = position
	return rng
}
