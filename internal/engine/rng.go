package engine

import "math/rand"

// RNG is the random source every stochastic rule draws from. *rand.Rand
// satisfies it; tests inject scripted sequences.
type RNG interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// NewRNG returns a seeded generator. Equal seeds replay equal combats.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
