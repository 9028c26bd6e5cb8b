package config

import (
	"errors"
	"testing"

	"github.com/OCharnyshevich/gridgen/pkg/terrain"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kind = "simplex"
	cfg.Width = 64
	cfg.Simplex.Octaves = 4

	fromFile := DefaultConfig()
	fromFile.Kind = "plasma"
	fromFile.Width = 200
	fromFile.Height = 50
	fromFile.Simplex.Octaves = 16
	fromFile.Simplex.Scale = 0.2
	fromFile.Plasma.MinSeparation = 2

	Merge(cfg, fromFile, map[string]bool{"kind": true, "width": true, "octaves": true})

	if cfg.Kind != "simplex" {
		t.Errorf("Kind = %q, want simplex", cfg.Kind)
	}
	if cfg.Width != 64 {
		t.Errorf("Width = %d, want 64", cfg.Width)
	}
	if cfg.Height != 50 {
		t.Errorf("Height = %d, want 50 from file", cfg.Height)
	}
	if cfg.Simplex.Octaves != 4 {
		t.Errorf("Octaves = %d, want 4", cfg.Simplex.Octaves)
	}
	if cfg.Simplex.Scale != 0.2 {
		t.Errorf("Scale = %f, want 0.2 from file", cfg.Simplex.Scale)
	}
	if cfg.Plasma.MinSeparation != 2 {
		t.Errorf("MinSeparation = %f, want 2 from file", cfg.Plasma.MinSeparation)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"empty kind", func(c *Config) { c.Kind = "" }, ErrInvalid},
		{"zero width", func(c *Config) { c.Width = 0 }, ErrInvalid},
		{"hash mask", func(c *Config) { c.HashMask = 256 }, ErrInvalid},
		{"simplex octaves", func(c *Config) { c.Simplex.Octaves = 0 }, terrain.ErrInvalidParams},
		{"plasma separation", func(c *Config) { c.Plasma.MinSeparation = 0 }, terrain.ErrInvalidParams},
		{"turbulence", func(c *Config) { c.ValueNoise.Octaves = 0 }, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
