//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/internal/gridgen"
	"github.com/OCharnyshevich/gridgen/internal/render"
)

// viewer regenerates and paints one grid per key press.
type viewer struct {
	cfg     *config.Config
	svc     *gridgen.Service
	log     *slog.Logger
	painter *render.Painter
	scale   int
	scheme  string // forced scheme; empty uses the kind's default
}

func newViewer(cfg *config.Config, scale int, log *slog.Logger) (*viewer, error) {
	v := &viewer{
		cfg:     cfg,
		svc:     gridgen.NewService(log),
		log:     log,
		painter: render.NewPainter(cfg.Width, cfg.Height),
		scale:   scale,
		scheme:  cfg.Scheme,
	}
	return v, v.regenerate()
}

func (v *viewer) regenerate() error {
	v.cfg.Scheme = v.scheme
	res, err := v.svc.Run(v.cfg)
	if err != nil {
		return err
	}
	scheme, err := render.SchemeByName(res.Scheme)
	if err != nil {
		return err
	}
	v.painter.Update(res.Grid, scheme)
	ebiten.SetWindowTitle(fmt.Sprintf("gridview: %s seed %d (%s)", res.Kind, v.cfg.Seed, res.Scheme))
	return nil
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		v.cfg.Seed++
	case inpututil.IsKeyJustPressed(ebiten.KeyS), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.cfg.Seed = time.Now().UnixNano()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		v.cfg.Kind = next(gridgen.Kinds(), v.cfg.Kind)
		v.scheme = ""
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		v.scheme = next(render.SchemeNames(), v.scheme)
	default:
		return nil
	}
	if err := v.regenerate(); err != nil {
		v.log.Warn("regenerate failed", "kind", v.cfg.Kind, "seed", v.cfg.Seed, "error", err)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.painter.Draw(screen, v.scale)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := v.painter.Size()
	return w * v.scale, h * v.scale
}

func next(names []string, cur string) string {
	i := slices.Index(names, cur)
	return names[(i+1)%len(names)]
}

func main() {
	cfg := config.DefaultConfig()
	scale := 5
	flag.StringVar(&cfg.Kind, "kind", cfg.Kind, "generator kind")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	flag.StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "colour scheme")
	flag.IntVar(&scale, "scale", scale, "pixels per cell")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	v, err := newViewer(cfg, scale, log)
	if err != nil {
		log.Error("initial generation failed", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("viewer error", "error", err)
		os.Exit(1)
	}
}
