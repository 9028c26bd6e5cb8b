package terrain

import (
	"fmt"
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// Corners are the four boundary elevations the plasma recursion starts from.
type Corners struct {
	UpperLeft  float64 `json:"upper_left"`
	UpperRight float64 `json:"upper_right"`
	LowerLeft  float64 `json:"lower_left"`
	LowerRight float64 `json:"lower_right"`
}

// CornerPins pins individual corners; nil entries are redrawn at random.
type CornerPins struct {
	UpperLeft  *float64 `json:"upper_left,omitempty"`
	UpperRight *float64 `json:"upper_right,omitempty"`
	LowerLeft  *float64 `json:"lower_left,omitempty"`
	LowerRight *float64 `json:"lower_right,omitempty"`
}

// PlasmaParams bound the randomness and recursion depth of the fractal.
type PlasmaParams struct {
	CornersMin      int `json:"corners_min"`
	CornersMax      int `json:"corners_max"`
	DisplacementMin int `json:"displacement_min"`
	DisplacementMax int `json:"displacement_max"`
	// MinSeparation stops subdivision once both quadrant sides are at or
	// below it. Values above 1 leave cells undefined.
	MinSeparation float64    `json:"minimum_separation_distance"`
	Pins          CornerPins `json:"corners"`
}

// DefaultPlasmaParams mirrors the classic settings: corners in 0..255,
// displacement in -35..35, subdivision down to single cells.
func DefaultPlasmaParams() PlasmaParams {
	return PlasmaParams{
		CornersMin:      0,
		CornersMax:      255,
		DisplacementMin: -35,
		DisplacementMax: 35,
		MinSeparation:   1,
	}
}

// Validate reports parameters that cannot produce a grid.
func (p PlasmaParams) Validate() error {
	if p.CornersMax < p.CornersMin {
		return fmt.Errorf("%w: corners max %d < min %d", ErrInvalidParams, p.CornersMax, p.CornersMin)
	}
	if p.DisplacementMax < p.DisplacementMin {
		return fmt.Errorf("%w: displacement max %d < min %d", ErrInvalidParams, p.DisplacementMax, p.DisplacementMin)
	}
	if p.MinSeparation <= 0 {
		return fmt.Errorf("%w: minimum separation %g must be positive", ErrInvalidParams, p.MinSeparation)
	}
	return nil
}

// PlasmaFractal generates cloud-like fields by recursive midpoint
// displacement. It keeps its current corners between calls.
type PlasmaFractal struct {
	rng     *rand.Rand
	params  PlasmaParams
	corners Corners
}

// NewPlasmaFractal creates a generator and draws its initial corners,
// honouring any pins in params.
func NewPlasmaFractal(seed int64, params PlasmaParams) (*PlasmaFractal, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	pf := &PlasmaFractal{rng: newRand(seed), params: params}
	pf.ResetCorners(params.Pins)
	return pf, nil
}

// SetSeed replaces the random source. Corners are left as they are.
func (pf *PlasmaFractal) SetSeed(seed int64) {
	pf.rng = newRand(seed)
}

// Corners returns the corners the next Generate call will use.
func (pf *PlasmaFractal) Corners() Corners { return pf.corners }

// ResetCorners pins the given corners and redraws the rest from
// [CornersMin, CornersMax].
func (pf *PlasmaFractal) ResetCorners(pins CornerPins) {
	pf.corners = Corners{
		UpperLeft:  pf.pinOrDraw(pins.UpperLeft),
		UpperRight: pf.pinOrDraw(pins.UpperRight),
		LowerLeft:  pf.pinOrDraw(pins.LowerLeft),
		LowerRight: pf.pinOrDraw(pins.LowerRight),
	}
}

func (pf *PlasmaFractal) pinOrDraw(pin *float64) float64 {
	if pin != nil {
		return *pin
	}
	return float64(intBetween(pf.rng, pf.params.CornersMin, pf.params.CornersMax))
}

// Generate builds a width×height field from the held corners.
func (pf *PlasmaFractal) Generate(width, height int) (grid.Grid[float64], error) {
	return pf.GenerateWithCorners(width, height, pf.corners)
}

// GenerateWithCorners builds a field from explicit corners. Cells the
// recursion never reaches hold grid.Undefined(). The four corner cells are
// pinned to the corner values so neighbouring tiles sharing corners line up.
func (pf *PlasmaFractal) GenerateWithCorners(width, height int, c Corners) (grid.Grid[float64], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidParams, width, height)
	}
	g := grid.New[float64](width, height)
	g.Fill(grid.Undefined())
	if width == 0 || height == 0 {
		return g, nil
	}

	pf.subdivide(g, 0, 0, float64(width), float64(height), c)

	g[0][0] = c.UpperLeft
	g[0][width-1] = c.UpperRight
	g[height-1][0] = c.LowerLeft
	g[height-1][width-1] = c.LowerRight
	return g, nil
}

func (pf *PlasmaFractal) subdivide(g grid.Grid[float64], x, y, w, h float64, c Corners) {
	if w <= pf.params.MinSeparation && h <= pf.params.MinSeparation {
		cx, cy := int(x), int(y)
		if g.In(cx, cy) {
			g[cy][cx] = (c.UpperLeft + c.UpperRight + c.LowerLeft + c.LowerRight) / 4
		}
		return
	}

	displacement := float64(intBetween(pf.rng, pf.params.DisplacementMin, pf.params.DisplacementMax))
	mid := (c.UpperLeft+c.UpperRight+c.LowerLeft+c.LowerRight)/4 + displacement
	top := (c.UpperLeft + c.UpperRight) / 2
	bottom := (c.LowerLeft + c.LowerRight) / 2
	left := (c.UpperLeft + c.LowerLeft) / 2
	right := (c.UpperRight + c.LowerRight) / 2

	hw, hh := w/2, h/2
	pf.subdivide(g, x, y, hw, hh, Corners{c.UpperLeft, top, left, mid})
	pf.subdivide(g, x+hw, y, hw, hh, Corners{top, c.UpperRight, mid, right})
	pf.subdivide(g, x, y+hh, hw, hh, Corners{left, mid, c.LowerLeft, bottom})
	pf.subdivide(g, x+hw, y+hh, hw, hh, Corners{mid, right, bottom, c.LowerRight})
}
