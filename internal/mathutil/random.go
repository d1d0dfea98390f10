package mathutil

import "math/rand/v2"

// RandomInt returns a uniform pseudo-random integer in [0, upperInclusive].
// Negative upper bound returns 0.
//
// Not used by the stat pipeline; exists for stochastic extensions (trial runs).
func RandomInt(upperInclusive int) int {
	if upperInclusive <= 0 {
		return 0
	}
	return rand.IntN(upperInclusive + 1)
}

// RandomIntFrom is RandomInt over an explicit source, for reproducible runs.
func RandomIntFrom(r *rand.Rand, upperInclusive int) int {
	if upperInclusive <= 0 {
		return 0
	}
	return r.IntN(upperInclusive + 1)
}
