package grid

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle in cell units with an upper-left origin.
// It covers columns X..X+W-1 and rows Y..Y+H-1.
type Rect struct {
	X, Y, W, H int
}

// Center returns the centerpoint using floor division, which always lies
// inside a non-empty rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Area returns W*H.
func (r Rect) Area() int { return r.W * r.H }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether r and o overlap or touch. Each rectangle is
// treated as the closed span [X, X+W] on each axis, so two rooms separated
// by less than one wall cell also count as intersecting. Comparing spans
// per axis catches the cross configuration where one rectangle passes fully
// through the other on one axis while the other passes through it on the
// perpendicular axis.
func (r Rect) Intersects(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W &&
		r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}
