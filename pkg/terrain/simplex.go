package terrain

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// Simplex noise after Ken Perlin's 2D algorithm. Raw samples are in [-1, 1]
// and get remapped to [0, 256) per octave.

const (
	f2 = 0.36602540378443864676 // (sqrt(3) - 1) / 2
	g2 = 0.21132486540518711775 // (3 - sqrt(3)) / 6

	// SequenceLen is the length of the seed sequence the permutation table is built from.
	SequenceLen = 256

	// DefaultHashMask is used when SimplexOptions.HashMask is unset.
	DefaultHashMask = SequenceLen - 1
)

// grad3 are the 3D gradient vectors; 2D lookups use the first two components.
var grad3 = [12][3]float64{
	{1, 1, 0},
	{-1, 1, 0},
	{1, -1, 0},
	{-1, -1, 0},
	{1, 0, 1},
	{-1, 0, 1},
	{1, 0, -1},
	{-1, 0, -1},
	{0, 1, 1},
	{0, -1, 1},
	{0, 1, -1},
	{0, -1, -1},
}

// baseSequence is the classic reference permutation. Reseeding shuffles a copy of it.
var baseSequence = [SequenceLen]int{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

// permTable is immutable once built; reseeding swaps in a new one.
type permTable struct {
	sequence [SequenceLen]int
	perm     [2 * SequenceLen]int
	mask     int
}

func newPermTable(seq [SequenceLen]int, mask int) *permTable {
	pt := &permTable{sequence: seq, mask: mask}
	// The doubled sequence avoids wraparound on the second lookup.
	for i := range pt.perm {
		pt.perm[i] = seq[(i&mask)%SequenceLen]
	}
	return pt
}

// SimplexOptions configures a Simplex generator.
type SimplexOptions struct {
	// HashMask is applied to lattice coordinates before hashing. Zero selects
	// DefaultHashMask. Values below 255 make the noise repeat more visibly.
	HashMask int `json:"hash_mask"`
}

// SimplexParams are the per-call synthesis parameters.
type SimplexParams struct {
	Scale       float64 `json:"scale"`
	Octaves     int     `json:"octaves"`
	Persistence float64 `json:"persistence"`
}

// Validate reports parameters that cannot produce a grid.
func (p SimplexParams) Validate() error {
	if p.Octaves < 1 {
		return fmt.Errorf("%w: simplex octaves %d < 1", ErrInvalidParams, p.Octaves)
	}
	if p.Scale <= 0 {
		return fmt.Errorf("%w: simplex scale %g must be positive", ErrInvalidParams, p.Scale)
	}
	if p.Persistence < 0 {
		return fmt.Errorf("%w: simplex persistence %g is negative", ErrInvalidParams, p.Persistence)
	}
	return nil
}

// Simplex is a generator handle owning a permutation table. Reseeding
// replaces the table as a unit, so generation and reseeding may run
// concurrently on the same handle.
type Simplex struct {
	mu   sync.RWMutex
	rng  *rand.Rand
	mask int
	pt   *permTable
}

// NewSimplex creates a Simplex generator whose table is shuffled from seed.
func NewSimplex(seed int64, opts SimplexOptions) (*Simplex, error) {
	mask := opts.HashMask
	if mask == 0 {
		mask = DefaultHashMask
	}
	if mask < 0 || mask > DefaultHashMask {
		return nil, fmt.Errorf("%w: hash mask %d outside [0,%d]", ErrInvalidParams, mask, DefaultHashMask)
	}
	s := &Simplex{mask: mask}
	s.Reseed(seed)
	return s, nil
}

// Reseed shuffles the base sequence with a PCG source seeded by seed and
// rebuilds the permutation table.
func (s *Simplex) Reseed(seed int64) {
	rng := newRand(seed)
	seq := baseSequence
	rng.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })

	s.mu.Lock()
	s.rng = rng
	s.pt = newPermTable(seq, s.mask)
	s.mu.Unlock()
}

// Shuffle reshuffles the base sequence using the handle's own source, so
// successive calls keep producing new tables.
func (s *Simplex) Shuffle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	seq := baseSequence
	s.rng.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
	s.pt = newPermTable(seq, s.mask)
}

// SetSequence installs an explicit seed sequence, which must be a
// permutation of 0..255. The same sequence always reproduces the same noise.
func (s *Simplex) SetSequence(seq []int) error {
	if len(seq) != SequenceLen {
		return fmt.Errorf("%w: sequence length %d, want %d", ErrInvalidParams, len(seq), SequenceLen)
	}
	sorted := slices.Clone(seq)
	slices.Sort(sorted)
	for i, v := range sorted {
		if v != i {
			return fmt.Errorf("%w: sequence is not a permutation of 0..%d", ErrInvalidParams, SequenceLen-1)
		}
	}
	var arr [SequenceLen]int
	copy(arr[:], seq)

	s.mu.Lock()
	s.pt = newPermTable(arr, s.mask)
	s.mu.Unlock()
	return nil
}

// Sequence returns a copy of the seed sequence currently in use.
func (s *Simplex) Sequence() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.pt.sequence[:])
}

func (s *Simplex) table() *permTable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pt
}

// Generate fills a width×height grid with octave simplex noise in [0, 256).
func (s *Simplex) Generate(width, height int, p SimplexParams) (grid.Grid[float64], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative size %dx%d", ErrInvalidParams, width, height)
	}
	pt := s.table()
	g := grid.New[float64](width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g[y][x] = pt.octave(float64(x), float64(y), p.Scale, p.Octaves, p.Persistence)
		}
	}
	return g, nil
}

// OctaveNoise2D layers octaves of noise starting at frequency scale and
// returns the amplitude-weighted mean, in [0, 256).
func (s *Simplex) OctaveNoise2D(x, y, scale float64, octaves int, persistence float64) float64 {
	return s.table().octave(x, y, scale, octaves, persistence)
}

// Noise2D returns a single simplex sample remapped to [0, 256).
func (s *Simplex) Noise2D(x, y float64) float64 {
	return toByteRange((s.table().raw(x, y) + 1) * 128)
}

func (pt *permTable) octave(x, y, scale float64, octaves int, persistence float64) float64 {
	var total, maxAmp float64
	frequency := scale
	amplitude := 1.0

	for range octaves {
		total += (pt.raw(x*frequency, y*frequency) + 1) * 128 * amplitude
		maxAmp += amplitude
		amplitude *= persistence
		frequency *= 2.0
	}
	return toByteRange(total / maxAmp)
}

// toByteRange clamps float rounding at the extremes into [0, 256).
func toByteRange(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v >= 256:
		return math.Nextafter(256, 0)
	}
	return v
}

// raw returns 2D simplex noise in [-1, 1].
func (pt *permTable) raw(x, y float64) float64 {
	// Skew input space to determine simplex cell.
	s := (x + y) * f2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Upper or lower triangle of the unit square.
	var i1, j1 int
	if x0 > y0 {
		i1 = 1
	} else {
		j1 = 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1.0 + 2.0*g2
	y2 := y0 - 1.0 + 2.0*g2

	ii := i & pt.mask
	jj := j & pt.mask
	gi0 := pt.perm[ii+pt.perm[jj]] % 12
	gi1 := pt.perm[ii+i1+pt.perm[jj+j1]] % 12
	gi2 := pt.perm[ii+1+pt.perm[jj+1]] % 12

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	return 70.0 * (n0 + n1 + n2)
}

func dot2(g [3]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}
