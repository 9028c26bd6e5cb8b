// Package gridgen wires the terrain and floorplan generators behind named
// kinds so front ends can pick one from a config.
package gridgen

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/pkg/floorplan"
	"github.com/OCharnyshevich/gridgen/pkg/grid"
)

// ErrUnknownKind is returned by Lookup for names nothing registered.
var ErrUnknownKind = errors.New("unknown generator kind")

// Output is one generated grid. Plan is set for floorplan kinds only.
type Output struct {
	Grid grid.Reader
	Plan *floorplan.Plan
}

// Generator produces grids of the requested size.
type Generator interface {
	Generate(width, height int) (Output, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(width, height int) (Output, error)

// Generate calls f.
func (f GeneratorFunc) Generate(width, height int) (Output, error) { return f(width, height) }

// Factory constructs a Generator from the seed and parameter blocks of cfg.
type Factory func(cfg *config.Config) (Generator, error)

// Kind is a registered generator.
type Kind struct {
	Name    string
	Factory Factory
	// Scheme is the colour scheme used when the config names none.
	Scheme string
	// Floorplan marks kinds whose output carries a Plan.
	Floorplan bool
}

var kinds = map[string]Kind{}

// Register adds a generator kind under k.Name.
func Register(k Kind) {
	if k.Name == "" || k.Factory == nil {
		return
	}
	kinds[k.Name] = k
}

// Lookup returns the kind registered under name.
func Lookup(name string) (Kind, error) {
	k, ok := kinds[name]
	if !ok {
		return Kind{}, fmt.Errorf("%w %q (have %s)", ErrUnknownKind, name, strings.Join(Kinds(), ", "))
	}
	return k, nil
}

// Kinds returns the registered names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
