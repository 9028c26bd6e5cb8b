package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/internal/gridgen"
	"github.com/OCharnyshevich/gridgen/internal/render"
	"github.com/OCharnyshevich/gridgen/internal/storage"
)

type options struct {
	data     string
	preset   string
	save     string
	pngPath  string
	ascii    bool
	list     bool
	logLevel string
}

func main() {
	cfg := config.DefaultConfig()
	var opts options

	fs := flag.CommandLine
	bindConfig(fs, cfg)
	fs.StringVar(&opts.data, "data", "./data", "data directory holding presets/")
	fs.StringVar(&opts.preset, "preset", "", "load a preset; explicit flags override its values")
	fs.StringVar(&opts.save, "save", "", "save the effective config as a preset")
	fs.StringVar(&opts.pngPath, "png", "", "write the coloured grid to this PNG file")
	fs.BoolVar(&opts.ascii, "ascii", true, "print the grid as ASCII glyphs")
	fs.BoolVar(&opts.list, "list", false, "list generator kinds, schemes and presets, then exit")
	fs.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(opts.logLevel)}))

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if err := run(cfg, opts, explicit, log, os.Stdout); err != nil {
		log.Error("gridgen failed", "error", err)
		os.Exit(1)
	}
}

// bindConfig registers the config fields that can be set from flags. The
// flag names match the keys config.Merge checks.
func bindConfig(fs *flag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Kind, "kind", cfg.Kind, "generator kind: "+strings.Join(gridgen.Kinds(), ", "))
	fs.IntVar(&cfg.Width, "width", cfg.Width, "grid width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "grid height in cells")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	fs.StringVar(&cfg.Scheme, "scheme", cfg.Scheme, "colour scheme: "+strings.Join(render.SchemeNames(), ", "))
	fs.IntVar(&cfg.HashMask, "hash-mask", cfg.HashMask, "simplex lattice hash mask (0 selects 255)")

	fs.Float64Var(&cfg.ValueNoise.Frequency, "frequency", cfg.ValueNoise.Frequency, "value noise frequency")
	fs.Float64Var(&cfg.ValueNoise.Octaves, "turbulence", cfg.ValueNoise.Octaves, "value noise starting zoom")
	fs.Float64Var(&cfg.Simplex.Scale, "scale", cfg.Simplex.Scale, "simplex starting frequency")
	fs.IntVar(&cfg.Simplex.Octaves, "octaves", cfg.Simplex.Octaves, "simplex octave count")
	fs.Float64Var(&cfg.Simplex.Persistence, "persistence", cfg.Simplex.Persistence, "simplex amplitude decay per octave")

	fs.IntVar(&cfg.Rooms.RoomMinSize, "room-min-size", cfg.Rooms.RoomMinSize, "minimum room side")
	fs.IntVar(&cfg.Rooms.RoomMaxSize, "room-max-size", cfg.Rooms.RoomMaxSize, "maximum room side")
	fs.IntVar(&cfg.Rooms.RoomMinCount, "room-min-count", cfg.Rooms.RoomMinCount, "minimum number of rooms")
	fs.IntVar(&cfg.Rooms.RoomMaxCount, "room-max-count", cfg.Rooms.RoomMaxCount, "room placement attempts per batch")
	fs.IntVar(&cfg.Rooms.MaxBatches, "max-batches", cfg.Rooms.MaxBatches, "placement batches before giving up (0 selects the default)")
}

func run(cfg *config.Config, opts options, explicit map[string]bool, log *slog.Logger, out io.Writer) error {
	store, err := storage.New(opts.data, log)
	if err != nil {
		return err
	}

	if opts.list {
		return list(store, out)
	}

	if opts.preset != "" {
		fromFile, err := store.LoadPreset(opts.preset)
		if err != nil {
			return err
		}
		config.Merge(cfg, fromFile, explicit)
	}

	if opts.save != "" {
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := store.SavePreset(opts.save, cfg); err != nil {
			return err
		}
	}

	res, err := gridgen.NewService(log).Run(cfg)
	if err != nil {
		return err
	}
	scheme, err := render.SchemeByName(res.Scheme)
	if err != nil {
		return err
	}

	if opts.ascii {
		if err := render.ASCII(out, res.Grid, scheme); err != nil {
			return fmt.Errorf("write ascii: %w", err)
		}
	}
	if opts.pngPath != "" {
		if err := writePNG(opts.pngPath, res, scheme); err != nil {
			return err
		}
		log.Info("wrote image", "path", opts.pngPath)
	}
	return nil
}

func writePNG(path string, res *gridgen.Result, scheme render.Scheme) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	if err := png.Encode(f, render.Image(res.Grid, scheme)); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}

func list(store *storage.Storage, out io.Writer) error {
	presets, err := store.ListPresets()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "kinds:   %s\n", strings.Join(gridgen.Kinds(), " "))
	fmt.Fprintf(out, "schemes: %s\n", strings.Join(render.SchemeNames(), " "))
	fmt.Fprintf(out, "presets: %s\n", strings.Join(presets, " "))
	return nil
}

func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
