package floorplan

import "github.com/OCharnyshevich/gridgen/pkg/grid"

// HorizontalCorridor spans columns x1..x2 inclusive on row y. The origin is
// normalized so the width is never negative.
func HorizontalCorridor(x1, x2, y int) grid.Rect {
	x, w := x1, x2-x1
	if w < 0 {
		w = -w
		x -= w
	}
	return grid.Rect{X: x, Y: y, W: w + 1, H: 1}
}

// VerticalCorridor spans rows y1..y2 inclusive on column x.
func VerticalCorridor(y1, y2, x int) grid.Rect {
	y, h := y1, y2-y1
	if h < 0 {
		h = -h
		y -= h
	}
	return grid.Rect{X: x, Y: y, W: 1, H: h + 1}
}

// Link joins a and b with an L-shaped pair of corridors. With
// horizontalFirst the bend sits at (b.X, a.Y), otherwise at (a.X, b.Y).
func Link(a, b grid.Point, horizontalFirst bool) (h, v grid.Rect) {
	if horizontalFirst {
		return HorizontalCorridor(a.X, b.X, a.Y), VerticalCorridor(b.Y, a.Y, b.X)
	}
	return HorizontalCorridor(b.X, a.X, b.Y), VerticalCorridor(a.Y, b.Y, a.X)
}
