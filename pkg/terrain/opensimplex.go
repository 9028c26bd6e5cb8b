package terrain

import (
	"fmt"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// OpenSimplex layers normalized OpenSimplex noise. It takes the same
// parameters as Simplex and also yields values in [0, 256).
type OpenSimplex struct {
	noise opensimplex.Noise
}

// NewOpenSimplex creates an OpenSimplex source from seed.
func NewOpenSimplex(seed int64) *OpenSimplex {
	return &OpenSimplex{noise: opensimplex.NewNormalized(seed)}
}

// SetSeed replaces the underlying noise source.
func (o *OpenSimplex) SetSeed(seed int64) {
	o.noise = opensimplex.NewNormalized(seed)
}

// Generate fills a width×height grid with octave OpenSimplex noise.
func (o *OpenSimplex) Generate(width, height int, p SimplexParams) (grid.Grid[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidParams, width, height)
	}
	g := grid.New[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g[y][x] = o.octave(float64(x), float64(y), p)
		}
	}
	return g, nil
}

func (o *OpenSimplex) octave(x, y float64, p SimplexParams) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	frequency := p.Scale

	for i := 0; i < p.Octaves; i++ {
		total += o.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= p.Persistence
		frequency *= 2
	}

	return toByteRange(total / maxVal * 256)
}
