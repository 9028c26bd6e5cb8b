// Package grid holds the row-major cell grid shared by every generator,
// plus the rectangle geometry used to lay out rooms and corridors.
package grid

import "math"

// Cell constrains the value types a Grid can hold. Terrain generators use
// float64 elevations, floorplan generators use small non-negative ints.
type Cell interface {
	~int | ~float64
}

// Grid is a row-major 2D array indexed as g[row][col]. Every row has the
// same length.
type Grid[T Cell] [][]T

// New allocates a zero-filled grid with w columns and h rows.
func New[T Cell](w, h int) Grid[T] {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	cells := make([]T, w*h)
	g := make(Grid[T], h)
	for y := range g {
		g[y] = cells[y*w : (y+1)*w : (y+1)*w]
	}
	return g
}

// Height returns the number of rows.
func (g Grid[T]) Height() int { return len(g) }

// Width returns the number of columns.
func (g Grid[T]) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// In reports whether (x, y) lies inside the grid.
func (g Grid[T]) In(x, y int) bool {
	return y >= 0 && y < len(g) && x >= 0 && x < len(g[y])
}

// At returns the value at column x, row y.
func (g Grid[T]) At(x, y int) T { return g[y][x] }

// Set stores v at column x, row y.
func (g Grid[T]) Set(x, y int, v T) { g[y][x] = v }

// Fill sets every cell to v.
func (g Grid[T]) Fill(v T) {
	for y := range g {
		for x := range g[y] {
			g[y][x] = v
		}
	}
}

// Count returns how many cells satisfy keep.
func (g Grid[T]) Count(keep func(T) bool) int {
	n := 0
	for y := range g {
		for _, v := range g[y] {
			if keep(v) {
				n++
			}
		}
	}
	return n
}

// Value returns the cell at (x, y) as a float64.
func (g Grid[T]) Value(x, y int) float64 { return float64(g[y][x]) }

// Reader is the read-only view renderers and other consumers work against,
// independent of the cell type.
type Reader interface {
	Width() int
	Height() int
	Value(x, y int) float64
}

var (
	_ Reader = Grid[int](nil)
	_ Reader = Grid[float64](nil)
)

// Undefined returns the sentinel stored in terrain cells that no generator
// pass wrote. It is NaN so it can never collide with a real elevation.
func Undefined() float64 { return math.NaN() }

// IsUndefined reports whether v is the undefined-cell sentinel.
func IsUndefined(v float64) bool { return math.IsNaN(v) }
