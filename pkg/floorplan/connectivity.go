package floorplan

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

var neighbours = [4]grid.Point{{X: 0, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 0}}

// Connected reports whether every room's centre is reachable from the first
// room through 4-adjacent excavated cells.
func Connected(g grid.Grid[int], rooms []grid.Rect) bool {
	if len(rooms) == 0 {
		return true
	}
	start := rooms[0].Center()
	if !g.In(start.X, start.Y) || g[start.Y][start.X] < 1 {
		return false
	}
	reached := flood(g, start, mapset.New[grid.Point]())
	for _, r := range rooms[1:] {
		if !reached.Has(r.Center()) {
			return false
		}
	}
	return true
}

// Regions counts the 4-connected groups of excavated cells.
func Regions(g grid.Grid[int]) int {
	visited := mapset.New[grid.Point]()
	regions := 0
	for y := range g {
		for x, v := range g[y] {
			p := grid.Point{X: x, Y: y}
			if v < 1 || visited.Has(p) {
				continue
			}
			flood(g, p, visited)
			regions++
		}
	}
	return regions
}

// flood marks every excavated cell reachable from start in visited.
func flood(g grid.Grid[int], start grid.Point, visited mapset.Set[grid.Point]) mapset.Set[grid.Point] {
	queue := []grid.Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbours {
			n := grid.Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if !g.In(n.X, n.Y) || g[n.Y][n.X] < 1 || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return visited
}
