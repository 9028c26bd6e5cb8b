package terrain

import (
	"errors"
	"math"
	"testing"
)

func TestValueNoiseBounds(t *testing.T) {
	params := []ValueNoiseParams{
		{Frequency: 8, Octaves: 128},
		{Frequency: 1, Octaves: 1},
		{Frequency: 0.5, Octaves: 3.5},
		{Frequency: 32, Octaves: 512},
		{Frequency: 0, Octaves: 16},
	}
	for _, p := range params {
		vn := NewValueNoise(11)
		g, err := vn.Generate(48, 32, p)
		if err != nil {
			t.Fatalf("Generate(%+v): %v", p, err)
		}
		if g.Height() != 32 || g.Width() != 48 {
			t.Fatalf("size = %dx%d, want 48x32", g.Width(), g.Height())
		}
		for y := range g {
			for x, v := range g[y] {
				if v < 0 || v >= 256 {
					t.Fatalf("%+v: cell (%d,%d) = %f outside [0,256)", p, x, y, v)
				}
				if v != math.Trunc(v) {
					t.Fatalf("%+v: cell (%d,%d) = %f is not truncated", p, x, y, v)
				}
			}
		}
	}
}

func TestValueNoiseDeterministic(t *testing.T) {
	p := ValueNoiseParams{Frequency: 4, Octaves: 64}
	a, err := NewValueNoise(99).Generate(20, 20, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := NewValueNoise(99).Generate(20, 20, p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("cell (%d,%d) differs", x, y)
			}
		}
	}
}

func TestSmoothNoiseWeights(t *testing.T) {
	field := [][]float64{
		{0, 1},
		{1, 0},
	}
	// Integer coordinates pick the (x-1, y-1) sample with full weight.
	if got := smoothNoise(field, 1, 1); got != field[0][0] {
		t.Errorf("smoothNoise(1,1) = %f, want %f", got, field[0][0])
	}
	if got := smoothNoise(field, 1.5, 1.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("smoothNoise(1.5,1.5) = %f, want 0.5", got)
	}
}

func TestValueNoiseInvalidParams(t *testing.T) {
	vn := NewValueNoise(1)
	if _, err := vn.Generate(10, 10, ValueNoiseParams{Frequency: 1, Octaves: 0.5}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("octaves < 1: err = %v, want ErrInvalidParams", err)
	}
	if _, err := vn.Generate(0, 10, ValueNoiseParams{Frequency: 1, Octaves: 2}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("zero width: err = %v, want ErrInvalidParams", err)
	}
}
