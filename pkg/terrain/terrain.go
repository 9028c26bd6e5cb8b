// Package terrain produces continuous elevation grids from noise: plasma
// fractal, value noise with turbulence, and simplex noise, plus library
// backed OpenSimplex and Perlin sources.
package terrain

import (
	"errors"
	"math/rand/v2"
)

// ErrInvalidParams is returned when generation parameters cannot produce a grid.
var ErrInvalidParams = errors.New("terrain: invalid parameters")

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// intBetween returns a uniform int in [lo, hi].
func intBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func fastFloor(x float64) int {
	xi := int(x)
	if x < float64(xi) {
		return xi - 1
	}
	return xi
}
