package floorplan

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// Branching links every room to its nearest known node, then bridges the
// remaining components until the whole plan is one connected piece.
type Branching struct {
	rng *rand.Rand
}

// NewBranching creates a generator seeded with seed.
func NewBranching(seed int64) *Branching {
	return &Branching{rng: newRand(seed)}
}

// SetSeed replaces the random source.
func (b *Branching) SetSeed(seed int64) { b.rng = newRand(seed) }

// Generate builds a fully connected width×height plan. Rooms keep two cells
// clear of the right and bottom edges; the last row and column stay solid.
func (b *Branching) Generate(width, height int, p Params) (*Plan, error) {
	if err := p.validate(width, height, 2); err != nil {
		return nil, err
	}
	rooms, batches, err := placeRooms(b.rng, width, height, 2, p)
	if err != nil {
		return nil, fmt.Errorf("branching: %w", err)
	}

	l := &linker{rng: b.rng, comps: NewComponents()}
	for _, r := range rooms {
		c := r.Center()
		l.nodes = append(l.nodes, c)
		l.comps.Add(c)
	}

	if len(rooms) > 1 {
		for _, r := range rooms {
			a := r.Center()
			if nb, ok := nearestPoint(l.nodes, a); ok {
				l.link(a, nb)
			}
		}
		l.merge()
	}

	return &Plan{
		Grid:      rasterize(width, height, rooms, l.corridors),
		Rooms:     rooms,
		Corridors: l.corridors,
		Batches:   batches,
	}, nil
}

type linker struct {
	rng       *rand.Rand
	comps     *Components
	nodes     []grid.Point
	corridors []grid.Rect
}

// link digs an L between a and b and records both corridor centerpoints as
// new nodes in the same component as a and b.
func (l *linker) link(a, b grid.Point) {
	h, v := Link(a, b, l.rng.IntN(2) == 0)
	l.corridors = append(l.corridors, h, v)
	hc, vc := h.Center(), v.Center()
	l.nodes = append(l.nodes, hc, vc)
	l.comps.Union(a, b)
	l.comps.Union(a, hc)
	l.comps.Union(a, vc)
}

// merge bridges components until one remains. Each pass joins the first
// component to the component whose centroid is closest to its own.
func (l *linker) merge() {
	for {
		groups := l.comps.Groups()
		if len(groups) <= 1 {
			return
		}
		alpha := groups[0]
		ac := centroid(alpha)

		beta, best := 1, math.Inf(1)
		for i := 1; i < len(groups); i++ {
			if d := distSq(ac, centroid(groups[i])); d < best {
				beta, best = i, d
			}
		}
		bc := centroid(groups[beta])

		pa := nearestTo(alpha, bc)
		pb := nearestTo(groups[beta], ac)
		l.link(pa, pb)
	}
}

type vec struct{ x, y float64 }

func centroid(pts []grid.Point) vec {
	var c vec
	for _, p := range pts {
		c.x += float64(p.X)
		c.y += float64(p.Y)
	}
	n := float64(len(pts))
	return vec{c.x / n, c.y / n}
}

func distSq(a, b vec) float64 {
	dx, dy := a.x-b.x, a.y-b.y
	return dx*dx + dy*dy
}

func nearestTo(pts []grid.Point, c vec) grid.Point {
	best, bestD := pts[0], math.Inf(1)
	for _, p := range pts {
		if d := distSq(vec{float64(p.X), float64(p.Y)}, c); d < bestD {
			best, bestD = p, d
		}
	}
	return best
}

// nearestPoint returns the node closest to from, skipping nodes equal to it.
func nearestPoint(nodes []grid.Point, from grid.Point) (grid.Point, bool) {
	var best grid.Point
	bestD, found := math.MaxInt, false
	for _, p := range nodes {
		if p == from {
			continue
		}
		dx, dy := p.X-from.X, p.Y-from.Y
		if d := dx*dx + dy*dy; d < bestD {
			best, bestD, found = p, d, true
		}
	}
	return best, found
}
