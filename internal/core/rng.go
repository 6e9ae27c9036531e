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

// Bool returns an unbiased random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// FillBinary fills the buffer with 0/1 values using the RNG.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		if r.Bool() {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
