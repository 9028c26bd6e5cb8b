package grid

import "testing"

func TestNewDimensions(t *testing.T) {
	g := New[int](7, 3)
	if g.Height() != 3 {
		t.Fatalf("Height() = %d, want 3", g.Height())
	}
	for y, row := range g {
		if len(row) != 7 {
			t.Fatalf("row %d length = %d, want 7", y, len(row))
		}
	}
	if g.Width() != 7 {
		t.Errorf("Width() = %d, want 7", g.Width())
	}
}

func TestRowsDoNotAlias(t *testing.T) {
	g := New[int](3, 3)
	g[0] = append(g[0], 9)
	if g[1][0] != 0 {
		t.Fatalf("append on row 0 leaked into row 1: %d", g[1][0])
	}
}

func TestIn(t *testing.T) {
	g := New[float64](4, 2)
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{3, 1, true},
		{4, 0, false},
		{0, 2, false},
		{-1, 0, false},
	}
	for _, tt := range tests {
		if got := g.In(tt.x, tt.y); got != tt.want {
			t.Errorf("In(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestUndefinedSentinel(t *testing.T) {
	g := New[float64](2, 2)
	g.Fill(Undefined())
	if !IsUndefined(g.At(1, 1)) {
		t.Fatal("filled cell should be undefined")
	}
	if IsUndefined(0) {
		t.Error("0 must not be treated as undefined")
	}
}

func TestCount(t *testing.T) {
	g := New[int](3, 3)
	g.Set(1, 1, 2)
	g.Set(2, 0, 1)
	if n := g.Count(func(v int) bool { return v > 0 }); n != 2 {
		t.Errorf("Count = %d, want 2", n)
	}
}
