package config

import (
	"errors"
	"fmt"

	"github.com/OCharnyshevich/gridgen/pkg/floorplan"
	"github.com/OCharnyshevich/gridgen/pkg/terrain"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid config")

// Config holds one generation run: which generator, the map size, the seed
// and the parameter block for every generator kind.
type Config struct {
	Kind   string `json:"kind"` // registered generator name, see gridgen.Kinds
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Seed   int64  `json:"seed"`
	Scheme string `json:"scheme"` // colour scheme for rendering; empty picks the kind's default

	Plasma     terrain.PlasmaParams     `json:"plasma"`
	ValueNoise terrain.ValueNoiseParams `json:"value_noise"`
	Simplex    terrain.SimplexParams    `json:"simplex"`
	HashMask   int                      `json:"hash_mask,omitempty"`
	Perlin     terrain.PerlinParams     `json:"perlin"`
	Rooms      floorplan.Params         `json:"rooms"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Kind:       "branching",
		Width:      120,
		Height:     120,
		Seed:       1,
		Plasma:     terrain.DefaultPlasmaParams(),
		ValueNoise: terrain.ValueNoiseParams{Frequency: 8, Octaves: 128},
		Simplex:    terrain.SimplexParams{Scale: 0.01, Octaves: 32, Persistence: 0.5},
		Perlin:     terrain.DefaultPerlinParams(),
		Rooms:      floorplan.DefaultParams(),
	}
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["kind"] {
		cfg.Kind = fromFile.Kind
	}
	if !explicitFlags["width"] {
		cfg.Width = fromFile.Width
	}
	if !explicitFlags["height"] {
		cfg.Height = fromFile.Height
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["scheme"] {
		cfg.Scheme = fromFile.Scheme
	}
	if !explicitFlags["hash-mask"] {
		cfg.HashMask = fromFile.HashMask
	}

	cfg.Plasma = fromFile.Plasma
	cfg.Perlin = fromFile.Perlin

	if !explicitFlags["frequency"] {
		cfg.ValueNoise.Frequency = fromFile.ValueNoise.Frequency
	}
	if !explicitFlags["turbulence"] {
		cfg.ValueNoise.Octaves = fromFile.ValueNoise.Octaves
	}

	if !explicitFlags["scale"] {
		cfg.Simplex.Scale = fromFile.Simplex.Scale
	}
	if !explicitFlags["octaves"] {
		cfg.Simplex.Octaves = fromFile.Simplex.Octaves
	}
	if !explicitFlags["persistence"] {
		cfg.Simplex.Persistence = fromFile.Simplex.Persistence
	}

	if !explicitFlags["room-min-size"] {
		cfg.Rooms.RoomMinSize = fromFile.Rooms.RoomMinSize
	}
	if !explicitFlags["room-max-size"] {
		cfg.Rooms.RoomMaxSize = fromFile.Rooms.RoomMaxSize
	}
	if !explicitFlags["room-min-count"] {
		cfg.Rooms.RoomMinCount = fromFile.Rooms.RoomMinCount
	}
	if !explicitFlags["room-max-count"] {
		cfg.Rooms.RoomMaxCount = fromFile.Rooms.RoomMaxCount
	}
	if !explicitFlags["max-batches"] {
		cfg.Rooms.MaxBatches = fromFile.Rooms.MaxBatches
	}
}

// Validate reports the first field that cannot drive a generation run.
// Room bounds are checked by the generators against the map size.
func (c *Config) Validate() error {
	if c.Kind == "" {
		return fmt.Errorf("%w: kind is empty", ErrInvalid)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	}
	if c.HashMask < 0 || c.HashMask >= terrain.SequenceLen {
		return fmt.Errorf("%w: hash mask %d outside [0,%d]", ErrInvalid, c.HashMask, terrain.SequenceLen-1)
	}
	checks := []struct {
		field string
		err   error
	}{
		{"plasma", c.Plasma.Validate()},
		{"value_noise", c.ValueNoise.Validate()},
		{"simplex", c.Simplex.Validate()},
		{"perlin", c.Perlin.Validate()},
	}
	for _, chk := range checks {
		if chk.err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, chk.field, chk.err)
		}
	}
	return nil
}
