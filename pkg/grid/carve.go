package grid

// CarveAdd adds 1 to every cell of r that lies inside g. Rooms are carved
// this way so an accidental overlap shows up as a value above 1.
func CarveAdd(g Grid[int], r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.In(x, y) {
				g[y][x]++
			}
		}
	}
}

// CarveGuarded marks every still-zero cell of r inside g with 1 and leaves
// already excavated cells untouched. Corridors are carved this way.
func CarveGuarded(g Grid[int], r Rect) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if g.In(x, y) && g[y][x] == 0 {
				g[y][x] = 1
			}
		}
	}
}
