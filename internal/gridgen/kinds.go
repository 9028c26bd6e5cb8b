package gridgen

import (
	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/pkg/floorplan"
	"github.com/OCharnyshevich/gridgen/pkg/terrain"
)

const (
	terrainScheme = "terrain"
	dungeonScheme = "dungeon"
)

func init() {
	Register(Kind{Name: "plasma", Factory: newPlasma, Scheme: terrainScheme})
	Register(Kind{Name: "valuenoise", Factory: newValueNoise, Scheme: terrainScheme})
	Register(Kind{Name: "simplex", Factory: newSimplex, Scheme: terrainScheme})
	Register(Kind{Name: "opensimplex", Factory: newOpenSimplex, Scheme: terrainScheme})
	Register(Kind{Name: "perlin", Factory: newPerlin, Scheme: terrainScheme})

	Register(Kind{Name: "sequential", Factory: floorplanKind(func(seed int64) planner { return floorplan.NewSequential(seed) }), Scheme: dungeonScheme, Floorplan: true})
	Register(Kind{Name: "spacefill", Factory: floorplanKind(func(seed int64) planner { return floorplan.NewSpaceFilling(seed) }), Scheme: dungeonScheme, Floorplan: true})
	Register(Kind{Name: "branching", Factory: floorplanKind(func(seed int64) planner { return floorplan.NewBranching(seed) }), Scheme: dungeonScheme, Floorplan: true})
}

func newPlasma(cfg *config.Config) (Generator, error) {
	pf, err := terrain.NewPlasmaFractal(cfg.Seed, cfg.Plasma)
	if err != nil {
		return nil, err
	}
	return GeneratorFunc(func(w, h int) (Output, error) {
		g, err := pf.Generate(w, h)
		return Output{Grid: g}, err
	}), nil
}

func newValueNoise(cfg *config.Config) (Generator, error) {
	vn := terrain.NewValueNoise(cfg.Seed)
	p := cfg.ValueNoise
	return GeneratorFunc(func(w, h int) (Output, error) {
		g, err := vn.Generate(w, h, p)
		return Output{Grid: g}, err
	}), nil
}

func newSimplex(cfg *config.Config) (Generator, error) {
	s, err := terrain.NewSimplex(cfg.Seed, terrain.SimplexOptions{HashMask: cfg.HashMask})
	if err != nil {
		return nil, err
	}
	p := cfg.Simplex
	return GeneratorFunc(func(w, h int) (Output, error) {
		g, err := s.Generate(w, h, p)
		return Output{Grid: g}, err
	}), nil
}

func newOpenSimplex(cfg *config.Config) (Generator, error) {
	o := terrain.NewOpenSimplex(cfg.Seed)
	p := cfg.Simplex
	return GeneratorFunc(func(w, h int) (Output, error) {
		g, err := o.Generate(w, h, p)
		return Output{Grid: g}, err
	}), nil
}

func newPerlin(cfg *config.Config) (Generator, error) {
	pn, err := terrain.NewPerlin(cfg.Seed, cfg.Perlin)
	if err != nil {
		return nil, err
	}
	return GeneratorFunc(func(w, h int) (Output, error) {
		g, err := pn.Generate(w, h)
		return Output{Grid: g}, err
	}), nil
}

type planner interface {
	Generate(width, height int, p floorplan.Params) (*floorplan.Plan, error)
}

func floorplanKind(build func(seed int64) planner) Factory {
	return func(cfg *config.Config) (Generator, error) {
		pl := build(cfg.Seed)
		p := cfg.Rooms
		return GeneratorFunc(func(w, h int) (Output, error) {
			plan, err := pl.Generate(w, h, p)
			if err != nil {
				return Output{}, err
			}
			return Output{Grid: plan.Grid, Plan: plan}, nil
		}), nil
	}
}
