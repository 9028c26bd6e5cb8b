// Package floorplan carves rooms and corridors into integer grids. Cells
// hold 0 for solid wall and a positive count for excavated floor.
package floorplan

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

var (
	// ErrInvalidParams is returned when room bounds cannot fit the map or
	// contradict each other.
	ErrInvalidParams = errors.New("floorplan: invalid parameters")
	// ErrInfeasible is returned when placement ran out of batches before
	// accepting RoomMinCount rooms.
	ErrInfeasible = errors.New("floorplan: room placement infeasible")
)

// DefaultMaxBatches bounds how many placement batches run when
// Params.MaxBatches is zero.
const DefaultMaxBatches = 1000

// Params bound room geometry and count.
type Params struct {
	RoomMinSize  int `json:"room_min_size"`
	RoomMaxSize  int `json:"room_max_size"`
	RoomMinCount int `json:"room_min_count"`
	// RoomMaxCount is the number of placement attempts per batch, so it
	// also caps the number of rooms.
	RoomMaxCount int `json:"room_max_count"`
	MaxBatches   int `json:"max_batches,omitempty"`
}

// DefaultParams returns 4..10 cell rooms, 5..30 per map.
func DefaultParams() Params {
	return Params{
		RoomMinSize:  4,
		RoomMaxSize:  10,
		RoomMinCount: 5,
		RoomMaxCount: 30,
	}
}

func (p Params) batches() int {
	if p.MaxBatches > 0 {
		return p.MaxBatches
	}
	return DefaultMaxBatches
}

func (p Params) validateSizes() error {
	if p.RoomMinSize < 1 {
		return fmt.Errorf("%w: room min size %d < 1", ErrInvalidParams, p.RoomMinSize)
	}
	if p.RoomMaxSize < p.RoomMinSize {
		return fmt.Errorf("%w: room max size %d < min %d", ErrInvalidParams, p.RoomMaxSize, p.RoomMinSize)
	}
	return nil
}

// validate checks params against a width×height map whose rooms must stay
// at least margin cells away from the right and bottom edges.
func (p Params) validate(width, height, margin int) error {
	if err := p.validateSizes(); err != nil {
		return err
	}
	if p.RoomMinCount < 1 {
		return fmt.Errorf("%w: room min count %d < 1", ErrInvalidParams, p.RoomMinCount)
	}
	if p.RoomMaxCount < p.RoomMinCount {
		return fmt.Errorf("%w: room max count %d < min %d", ErrInvalidParams, p.RoomMaxCount, p.RoomMinCount)
	}
	if p.MaxBatches < 0 {
		return fmt.Errorf("%w: max batches %d is negative", ErrInvalidParams, p.MaxBatches)
	}
	if limit := min(width, height) - margin - 1; p.RoomMaxSize > limit {
		return fmt.Errorf("%w: room max size %d does not fit a %dx%d map (limit %d)",
			ErrInvalidParams, p.RoomMaxSize, width, height, limit)
	}
	return nil
}

// Plan is a generated floorplan together with the geometry that produced it.
type Plan struct {
	Grid      grid.Grid[int]
	Rooms     []grid.Rect
	Corridors []grid.Rect
	// Batches is the number of placement batches used, 1 on first success.
	Batches int
}

// Excavated counts cells with a positive value.
func (p *Plan) Excavated() int {
	return p.Grid.Count(func(v int) bool { return v > 0 })
}

// rasterize carves rooms additively then corridors into still-zero cells.
func rasterize(width, height int, rooms, corridors []grid.Rect) grid.Grid[int] {
	g := grid.New[int](width, height)
	for _, r := range rooms {
		grid.CarveAdd(g, r)
	}
	for _, c := range corridors {
		grid.CarveGuarded(g, c)
	}
	return g
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func intBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// placeRooms runs rejection-sampling batches until one accepts at least
// RoomMinCount rooms. Each room is sized first, then positioned with its
// origin in [1, size-margin-extent] on each axis.
func placeRooms(rng *rand.Rand, width, height, margin int, p Params) ([]grid.Rect, int, error) {
	maxBatches := p.batches()
	for batch := 1; batch <= maxBatches; batch++ {
		rooms := make([]grid.Rect, 0, p.RoomMinCount)
		for range p.RoomMaxCount {
			w := intBetween(rng, p.RoomMinSize, p.RoomMaxSize)
			h := intBetween(rng, p.RoomMinSize, p.RoomMaxSize)
			candidate := grid.Rect{
				X: intBetween(rng, 1, width-margin-w),
				Y: intBetween(rng, 1, height-margin-h),
				W: w,
				H: h,
			}
			if !intersectsAny(candidate, rooms) {
				rooms = append(rooms, candidate)
			}
		}
		if len(rooms) >= p.RoomMinCount {
			return rooms, batch, nil
		}
	}
	return nil, maxBatches, fmt.Errorf("%w: fewer than %d rooms after %d batches on a %dx%d map",
		ErrInfeasible, p.RoomMinCount, maxBatches, width, height)
}

func intersectsAny(r grid.Rect, rooms []grid.Rect) bool {
	for _, o := range rooms {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
