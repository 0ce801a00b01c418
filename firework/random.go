package firework

import "math/rand/v2"

// Random is the randomness source used for velocities, decay rates and spawn placement
// *rand.Rand satisfies it; tests substitute scripted sequences
type Random interface {
	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
	// IntN returns a value in [0, n)
	IntN(n int) int
}

// NewRandom returns a PCG-backed source, seed 0 picks a random seed
func NewRandom(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// uniform returns a value in [lo, hi)
func uniform(rnd Random, lo, hi float64) float64 {
	return lo + rnd.Float64()*(hi-lo)
}
