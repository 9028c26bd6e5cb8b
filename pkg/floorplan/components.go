package floorplan

import "github.com/OCharnyshevich/gridgen/pkg/grid"

// Components is a disjoint-set forest over centerpoints. Each set holds
// points known to be mutually reachable through carved corridors. Sets
// only ever grow and merge.
type Components struct {
	index  map[grid.Point]int
	points []grid.Point
	parent []int
	rank   []int
	sets   int
}

// NewComponents returns an empty forest.
func NewComponents() *Components {
	return &Components{index: make(map[grid.Point]int)}
}

// Add inserts p as a singleton set. It reports false if p was already known.
func (c *Components) Add(p grid.Point) bool {
	if _, ok := c.index[p]; ok {
		return false
	}
	c.index[p] = len(c.points)
	c.points = append(c.points, p)
	c.parent = append(c.parent, len(c.parent))
	c.rank = append(c.rank, 0)
	c.sets++
	return true
}

// Find returns the representative of p's set.
func (c *Components) Find(p grid.Point) (grid.Point, bool) {
	i, ok := c.index[p]
	if !ok {
		return grid.Point{}, false
	}
	return c.points[c.root(i)], true
}

func (c *Components) root(i int) int {
	for c.parent[i] != i {
		c.parent[i] = c.parent[c.parent[i]]
		i = c.parent[i]
	}
	return i
}

// Union merges the sets of a and b, adding either point if unknown. It
// reports whether two distinct sets were merged.
func (c *Components) Union(a, b grid.Point) bool {
	c.Add(a)
	c.Add(b)
	ra, rb := c.root(c.index[a]), c.root(c.index[b])
	if ra == rb {
		return false
	}
	switch {
	case c.rank[ra] < c.rank[rb]:
		c.parent[ra] = rb
	case c.rank[ra] > c.rank[rb]:
		c.parent[rb] = ra
	default:
		c.parent[rb] = ra
		c.rank[ra]++
	}
	c.sets--
	return true
}

// Connected reports whether a and b are known and share a set.
func (c *Components) Connected(a, b grid.Point) bool {
	ia, oka := c.index[a]
	ib, okb := c.index[b]
	return oka && okb && c.root(ia) == c.root(ib)
}

// Len returns the number of sets.
func (c *Components) Len() int { return c.sets }

// Groups lists every set. Sets are ordered by their earliest added member
// and members keep insertion order.
func (c *Components) Groups() [][]grid.Point {
	slot := make(map[int]int, c.sets)
	groups := make([][]grid.Point, 0, c.sets)
	for i, p := range c.points {
		r := c.root(i)
		s, ok := slot[r]
		if !ok {
			s = len(groups)
			slot[r] = s
			groups = append(groups, nil)
		}
		groups[s] = append(groups[s], p)
	}
	return groups
}
