package terrain

import (
	"fmt"

	"github.com/aquilax/go-perlin"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// PerlinParams configure gradient Perlin noise.
type PerlinParams struct {
	// Alpha is the amplitude divisor between octaves.
	Alpha float64 `json:"alpha"`
	// Beta is the frequency multiplier between octaves.
	Beta float64 `json:"beta"`
	// Octaves is the number of summed passes.
	Octaves int32 `json:"octaves"`
	// Scale multiplies cell coordinates before sampling.
	Scale float64 `json:"scale"`
}

// DefaultPerlinParams returns the settings most terrain code uses with this library.
func DefaultPerlinParams() PerlinParams {
	return PerlinParams{Alpha: 2, Beta: 2, Octaves: 3, Scale: 0.05}
}

// Validate reports parameters that cannot produce a grid.
func (p PerlinParams) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: perlin octaves %d < 1", ErrInvalidParams, p.Octaves)
	}
	if p.Alpha <= 0 || p.Beta <= 0 {
		return fmt.Errorf("%w: perlin alpha and beta must be positive", ErrInvalidParams)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: perlin scale %g must be positive", ErrInvalidParams, p.Scale)
	}
	return nil
}

// Perlin produces gradient Perlin noise remapped by (v+1)*128. Its range
// is not bounded; callers clamp for display.
type Perlin struct {
	seed   int64
	params PerlinParams
	noise  *perlin.Perlin
}

// NewPerlin creates a Perlin source.
func NewPerlin(seed int64, p PerlinParams) (*Perlin, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Perlin{
		seed:   seed,
		params: p,
		noise:  perlin.NewPerlin(p.Alpha, p.Beta, p.Octaves, seed),
	}, nil
}

// SetSeed rebuilds the noise source with a new seed.
func (pn *Perlin) SetSeed(seed int64) {
	pn.seed = seed
	pn.noise = perlin.NewPerlin(pn.params.Alpha, pn.params.Beta, pn.params.Octaves, seed)
}

// Generate fills a width×height grid.
func (pn *Perlin) Generate(width, height int) (grid.Grid[float64], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidParams, width, height)
	}
	g := grid.New[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := pn.noise.Noise2D(float64(x)*pn.params.Scale, float64(y)*pn.params.Scale)
			g[y][x] = (v + 1) * 128
		}
	}
	return g, nil
}
