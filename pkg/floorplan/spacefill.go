package floorplan

import (
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// SpaceFilling scans the map row by row and drops a room wherever the
// neighbourhood is still solid. Rooms never touch, so cells never exceed 1,
// and no corridors are dug.
type SpaceFilling struct {
	rng *rand.Rand
}

// NewSpaceFilling creates a generator seeded with seed.
func NewSpaceFilling(seed int64) *SpaceFilling {
	return &SpaceFilling{rng: newRand(seed)}
}

// SetSeed replaces the random source.
func (s *SpaceFilling) SetSeed(seed int64) { s.rng = newRand(seed) }

// Generate fills a width×height plan. Only the size bounds of p are used.
func (s *SpaceFilling) Generate(width, height int, p Params) (*Plan, error) {
	if err := p.validateSizes(); err != nil {
		return nil, err
	}
	g := grid.New[int](width, height)
	var rooms []grid.Rect

	for row := 1; row < height-1; row++ {
		for col := 1; col < width-1; col++ {
			if g[row][col] != 0 {
				continue
			}
			w := min(intBetween(s.rng, p.RoomMinSize, p.RoomMaxSize), width-1-col)
			h := min(intBetween(s.rng, p.RoomMinSize, p.RoomMaxSize), height-1-row)
			if w < p.RoomMinSize || h < p.RoomMinSize || !solidAround(g, col, row) {
				continue
			}

			w = clearRun(w, func(k int) bool { return solidAround(g, col+k, row) })
			h = clearRun(h, func(k int) bool { return solidAround(g, col, row+k) })
			if w < p.RoomMinSize || h < p.RoomMinSize {
				continue
			}

			r := grid.Rect{X: col, Y: row, W: w, H: h}
			grid.CarveAdd(g, r)
			rooms = append(rooms, r)
		}
	}

	return &Plan{Grid: g, Rooms: rooms, Batches: 1}, nil
}

// solidAround reports whether (x, y) and its 8 neighbours are all in
// bounds and unexcavated.
func solidAround(g grid.Grid[int], x, y int) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if !g.In(x+dx, y+dy) || g[y+dy][x+dx] != 0 {
				return false
			}
		}
	}
	return true
}

// clearRun counts leading k in [0, n) for which ok(k) holds.
func clearRun(n int, ok func(k int) bool) int {
	k := 0
	for k < n && ok(k) {
		k++
	}
	return k
}
