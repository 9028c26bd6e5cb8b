package terrain

import (
	"errors"
	"math"
	"slices"
	"sync"
	"testing"
)

var defaultSimplex = SimplexParams{Scale: 0.01, Octaves: 32, Persistence: 0.5}

func TestSimplexRange(t *testing.T) {
	params := []SimplexParams{
		defaultSimplex,
		{Scale: 0.1, Octaves: 1, Persistence: 0.5},
		{Scale: 1.7, Octaves: 4, Persistence: 0.9},
		{Scale: 0.05, Octaves: 6, Persistence: 0},
	}
	for _, p := range params {
		s, err := NewSimplex(42, SimplexOptions{})
		if err != nil {
			t.Fatalf("NewSimplex: %v", err)
		}
		g, err := s.Generate(64, 48, p)
		if err != nil {
			t.Fatalf("Generate(%+v): %v", p, err)
		}
		for y := range g {
			for x, v := range g[y] {
				if v < 0 || v >= 256 {
					t.Fatalf("%+v: cell (%d,%d) = %f outside [0,256)", p, x, y, v)
				}
			}
		}
	}
}

func TestSimplexRawRange(t *testing.T) {
	s, err := NewSimplex(7, SimplexOptions{})
	if err != nil {
		t.Fatalf("NewSimplex: %v", err)
	}
	for i := 0; i < 10000; i++ {
		x := float64(i)*0.37 + 0.1
		y := float64(i)*0.53 + 0.2
		v := s.Noise2D(x, y)
		if v < 0 || v >= 256 {
			t.Fatalf("Noise2D(%f, %f) = %f, out of [0,256)", x, y, v)
		}
	}
}

func TestSimplexSameSeedSameOutput(t *testing.T) {
	a, _ := NewSimplex(12345, SimplexOptions{})
	b, _ := NewSimplex(12345, SimplexOptions{})
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			t.Fatalf("Noise2D not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestSimplexDifferentSeedsDiffer(t *testing.T) {
	a, _ := NewSimplex(1, SimplexOptions{})
	b, _ := NewSimplex(2, SimplexOptions{})
	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 0.1
		y := float64(i) * 0.2
		if a.Noise2D(x, y) != b.Noise2D(x, y) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestSimplexSetSequenceReproduces(t *testing.T) {
	a, _ := NewSimplex(5, SimplexOptions{})
	seq := a.Sequence()

	b, _ := NewSimplex(999, SimplexOptions{})
	if err := b.SetSequence(seq); err != nil {
		t.Fatalf("SetSequence: %v", err)
	}

	ga, err := a.Generate(32, 32, defaultSimplex)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	gb, err := b.Generate(32, 32, defaultSimplex)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := range ga {
		for x := range ga[y] {
			if ga[y][x] != gb[y][x] {
				t.Fatalf("cell (%d,%d) differs: %f vs %f", x, y, ga[y][x], gb[y][x])
			}
		}
	}
}

func TestSimplexSequenceIsPermutation(t *testing.T) {
	s, _ := NewSimplex(77, SimplexOptions{})
	seq := s.Sequence()
	slices.Sort(seq)
	for i, v := range seq {
		if v != i {
			t.Fatalf("sorted sequence[%d] = %d", i, v)
		}
	}
}

func TestSimplexSetSequenceRejectsBadInput(t *testing.T) {
	s, _ := NewSimplex(1, SimplexOptions{})
	if err := s.SetSequence([]int{1, 2, 3}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("short sequence: err = %v", err)
	}
	dup := make([]int, SequenceLen)
	if err := s.SetSequence(dup); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("duplicate sequence: err = %v", err)
	}
}

func TestSimplexHashMask(t *testing.T) {
	if _, err := NewSimplex(1, SimplexOptions{HashMask: 300}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("mask 300: err = %v", err)
	}
	s, err := NewSimplex(1, SimplexOptions{HashMask: 15})
	if err != nil {
		t.Fatalf("NewSimplex: %v", err)
	}
	g, err := s.Generate(64, 64, SimplexParams{Scale: 0.3, Octaves: 3, Persistence: 0.5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := range g {
		for x, v := range g[y] {
			if v < 0 || v >= 256 {
				t.Fatalf("masked cell (%d,%d) = %f outside [0,256)", x, y, v)
			}
		}
	}
}

func TestSimplexOctaveSmoothness(t *testing.T) {
	s, _ := NewSimplex(456, SimplexOptions{})

	prev := s.OctaveNoise2D(0, 0, 1, 4, 0.5)
	step := 0.01
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := s.OctaveNoise2D(x, 0, 1, 4, 0.5)
		if diff := math.Abs(curr - prev); diff > 25 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}

func TestSimplexConcurrentReseed(t *testing.T) {
	s, _ := NewSimplex(1, SimplexOptions{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := s.Generate(16, 16, defaultSimplex); err != nil {
				t.Error(err)
			}
		}()
		go func(seed int64) {
			defer wg.Done()
			s.Reseed(seed)
		}(int64(i))
	}
	wg.Wait()
}

func TestSimplexInvalidParams(t *testing.T) {
	s, _ := NewSimplex(1, SimplexOptions{})
	if _, err := s.Generate(4, 4, SimplexParams{Scale: 0.1, Octaves: 0, Persistence: 0.5}); !errors.Is(err, ErrInvalidParams) {
		t.Errorf("octaves 0: err = %v", err)
	}
}
