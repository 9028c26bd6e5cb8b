package floorplan

import (
	"testing"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

func TestCorridorNormalization(t *testing.T) {
	tests := []struct {
		name string
		got  grid.Rect
		want grid.Rect
	}{
		{"horizontal forward", HorizontalCorridor(2, 6, 3), grid.Rect{X: 2, Y: 3, W: 5, H: 1}},
		{"horizontal reversed", HorizontalCorridor(6, 2, 3), grid.Rect{X: 2, Y: 3, W: 5, H: 1}},
		{"horizontal single", HorizontalCorridor(4, 4, 1), grid.Rect{X: 4, Y: 1, W: 1, H: 1}},
		{"vertical forward", VerticalCorridor(1, 8, 5), grid.Rect{X: 5, Y: 1, W: 1, H: 8}},
		{"vertical reversed", VerticalCorridor(8, 1, 5), grid.Rect{X: 5, Y: 1, W: 1, H: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %+v, want %+v", tt.got, tt.want)
			}
		})
	}
}

func TestLinkBends(t *testing.T) {
	a := grid.Point{X: 2, Y: 2}
	b := grid.Point{X: 7, Y: 5}

	h, v := Link(a, b, true)
	if !h.Contains(a) || !h.Contains(grid.Point{X: 7, Y: 2}) {
		t.Errorf("horizontal-first h = %+v, want row 2 from x=2 to x=7", h)
	}
	if !v.Contains(b) || !v.Contains(grid.Point{X: 7, Y: 2}) {
		t.Errorf("horizontal-first v = %+v, want column 7 from y=2 to y=5", v)
	}

	h, v = Link(a, b, false)
	if !h.Contains(b) || !h.Contains(grid.Point{X: 2, Y: 5}) {
		t.Errorf("vertical-first h = %+v, want row 5 from x=2 to x=7", h)
	}
	if !v.Contains(a) || !v.Contains(grid.Point{X: 2, Y: 5}) {
		t.Errorf("vertical-first v = %+v, want column 2 from y=2 to y=5", v)
	}
}

func TestFixedLayoutCellValues(t *testing.T) {
	rooms := []grid.Rect{
		{X: 1, Y: 1, W: 3, H: 3},
		{X: 6, Y: 1, W: 2, H: 3},
	}
	h, v := Link(rooms[0].Center(), rooms[1].Center(), true)
	g := rasterize(9, 5, rooms, []grid.Rect{h, v})

	want := grid.Grid[int]{
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0, 0, 1, 1, 0},
		{0, 1, 1, 1, 1, 1, 1, 1, 0},
		{0, 1, 1, 1, 0, 0, 1, 1, 0},
		{0, 0, 0, 0, 0, 0, 0, 0, 0},
	}
	for y := range want {
		for x := range want[y] {
			if g[y][x] != want[y][x] {
				t.Errorf("cell (%d,%d) = %d, want %d", x, y, g[y][x], want[y][x])
			}
		}
	}
	if !Connected(g, rooms) {
		t.Error("linked rooms should be connected")
	}
	plan := &Plan{Grid: g}
	if n := plan.Excavated(); n != 17 {
		t.Errorf("Excavated = %d, want 17", n)
	}
}
