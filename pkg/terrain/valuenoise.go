package terrain

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// valueNoiseBias centres turbulence output near mid-range.
const valueNoiseBias = 128.0

// ValueNoiseParams control value noise synthesis.
type ValueNoiseParams struct {
	// Frequency multiplies cell coordinates before sampling.
	Frequency float64 `json:"frequency"`
	// Octaves is the starting zoom of the turbulence sum, halved per pass
	// until it drops below 1. It is a scale, not an integer pass count.
	Octaves float64 `json:"octaves"`
}

// Validate reports parameters that cannot produce a grid.
func (p ValueNoiseParams) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: value noise octaves %g < 1", ErrInvalidParams, p.Octaves)
	}
	if p.Frequency < 0 {
		return fmt.Errorf("%w: value noise frequency %g is negative", ErrInvalidParams, p.Frequency)
	}
	return nil
}

// ValueNoise smooths a field of uniform random samples with multi-scale
// turbulence. Output cells are truncated to integers in [0, 256).
type ValueNoise struct {
	rng *rand.Rand
}

// NewValueNoise creates a generator seeded with seed.
func NewValueNoise(seed int64) *ValueNoise {
	return &ValueNoise{rng: newRand(seed)}
}

// SetSeed replaces the random source.
func (vn *ValueNoise) SetSeed(seed int64) { vn.rng = newRand(seed) }

// Generate seeds a fresh width×height field and turbulates it.
func (vn *ValueNoise) Generate(width, height int, p ValueNoiseParams) (grid.Grid[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidParams, width, height)
	}

	field := grid.New[float64](width, height)
	for y := range field {
		for x := range field[y] {
			field[y][x] = float64(vn.rng.IntN(1001)) / 1000.0
		}
	}

	out := grid.New[float64](width, height)
	for y := range out {
		for x := range out[y] {
			v := turbulence(field, float64(x)*p.Frequency, float64(y)*p.Frequency, p.Octaves)
			out[y][x] = math.Trunc(v)
		}
	}
	return out, nil
}

func turbulence(field grid.Grid[float64], x, y, size float64) float64 {
	var value float64
	initial := size
	for size >= 1 {
		value += smoothNoise(field, x/size, y/size) * size
		size /= 2
	}
	return value / initial * valueNoiseBias
}

// smoothNoise bilinearly interpolates the field samples around (x, y),
// wrapping at the edges.
func smoothNoise(field grid.Grid[float64], x, y float64) float64 {
	w, h := field.Width(), field.Height()
	fx := x - math.Floor(x)
	fy := y - math.Floor(y)

	x1 := wrap(fastFloor(x), w)
	y1 := wrap(fastFloor(y), h)
	x2 := wrap(x1-1, w)
	y2 := wrap(y1-1, h)

	var v float64
	v += fx * fy * field[y1][x1]
	v += fx * (1 - fy) * field[y2][x1]
	v += (1 - fx) * fy * field[y1][x2]
	v += (1 - fx) * (1 - fy) * field[y2][x2]
	return v
}

func wrap(v, n int) int {
	return (v%n + n) % n
}
