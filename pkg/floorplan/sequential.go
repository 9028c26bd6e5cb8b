package floorplan

import (
	"fmt"
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// Sequential places non-overlapping rooms and chains them in placement
// order, the last room linking back to the first.
type Sequential struct {
	rng *rand.Rand
}

// NewSequential creates a generator seeded with seed.
func NewSequential(seed int64) *Sequential {
	return &Sequential{rng: newRand(seed)}
}

// SetSeed replaces the random source.
func (s *Sequential) SetSeed(seed int64) { s.rng = newRand(seed) }

// Generate builds a width×height plan. The last row and column stay solid.
func (s *Sequential) Generate(width, height int, p Params) (*Plan, error) {
	if err := p.validate(width, height, 1); err != nil {
		return nil, err
	}
	rooms, batches, err := placeRooms(s.rng, width, height, 1, p)
	if err != nil {
		return nil, fmt.Errorf("sequential: %w", err)
	}

	var corridors []grid.Rect
	if n := len(rooms); n > 1 {
		for i := range rooms {
			a := rooms[i].Center()
			b := rooms[(i+1)%n].Center()
			h, v := Link(a, b, s.rng.IntN(2) == 0)
			corridors = append(corridors, h, v)
		}
	}

	return &Plan{
		Grid:      rasterize(width, height, rooms, corridors),
		Rooms:     rooms,
		Corridors: corridors,
		Batches:   batches,
	}, nil
}
