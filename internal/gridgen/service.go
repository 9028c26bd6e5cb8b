package gridgen

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/pkg/floorplan"
)

// Result is the outcome of one Run.
type Result struct {
	Output
	Kind    string
	Scheme  string
	Elapsed time.Duration
	// Connected and Regions describe floorplan output; both are zero for
	// terrain kinds.
	Connected bool
	Regions   int
}

// Service builds generators from configs and runs them.
type Service struct {
	log *slog.Logger
}

// NewService creates a Service that logs through log.
func NewService(log *slog.Logger) *Service {
	return &Service{log: log}
}

// Run validates cfg, generates one grid and logs a summary line.
func (s *Service) Run(cfg *config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	kind, err := Lookup(cfg.Kind)
	if err != nil {
		return nil, err
	}
	gen, err := kind.Factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", kind.Name, err)
	}

	start := time.Now()
	out, err := gen.Generate(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("generate %s: %w", kind.Name, err)
	}

	res := &Result{
		Output:  out,
		Kind:    kind.Name,
		Scheme:  cfg.Scheme,
		Elapsed: time.Since(start),
	}
	if res.Scheme == "" {
		res.Scheme = kind.Scheme
	}

	attrs := []any{
		"kind", kind.Name,
		"width", cfg.Width,
		"height", cfg.Height,
		"seed", cfg.Seed,
		"elapsed", res.Elapsed,
	}
	if plan := out.Plan; plan != nil {
		res.Connected = floorplan.Connected(plan.Grid, plan.Rooms)
		res.Regions = floorplan.Regions(plan.Grid)
		if plan.Batches > 1 {
			s.log.Debug("room placement retried", "kind", kind.Name, "batches", plan.Batches)
		}
		attrs = append(attrs,
			"rooms", len(plan.Rooms),
			"corridors", len(plan.Corridors),
			"excavated", plan.Excavated(),
			"connected", res.Connected,
			"regions", res.Regions,
		)
	}
	s.log.Info("generated grid", attrs...)
	return res, nil
}
