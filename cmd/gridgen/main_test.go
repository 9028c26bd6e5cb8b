package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OCharnyshevich/gridgen/internal/config"
	"github.com/OCharnyshevich/gridgen/internal/storage"
)

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunPrintsASCII(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Kind = "branching"
	cfg.Width, cfg.Height = 30, 20
	cfg.Rooms.RoomMinSize, cfg.Rooms.RoomMaxSize = 3, 6
	cfg.Rooms.RoomMinCount, cfg.Rooms.RoomMaxCount = 2, 20

	var sb strings.Builder
	opts := options{data: t.TempDir(), ascii: true}
	if err := run(cfg, opts, nil, discard(), &sb); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Fatalf("got %d lines, want 20", len(lines))
	}
	for i, l := range lines {
		if len(l) != 30 {
			t.Fatalf("line %d has %d glyphs, want 30", i, len(l))
		}
	}
	if !strings.Contains(sb.String(), ".") {
		t.Error("no floor glyphs printed")
	}
}

func TestRunPresetWithExplicitFlags(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir, discard())
	if err != nil {
		t.Fatal(err)
	}
	preset := config.DefaultConfig()
	preset.Kind = "simplex"
	preset.Width, preset.Height = 50, 7
	if err := store.SavePreset("wide", preset); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("gridgen", flag.ContinueOnError)
	cfg := config.DefaultConfig()
	bindConfig(fs, cfg)
	if err := fs.Parse([]string{"-width", "12", "-scheme", "grayscale"}); err != nil {
		t.Fatal(err)
	}
	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	pngPath := filepath.Join(dir, "out.png")
	var sb strings.Builder
	opts := options{data: dir, preset: "wide", ascii: true, pngPath: pngPath, save: "narrow"}
	if err := run(cfg, opts, explicit, discard(), &sb); err != nil {
		t.Fatalf("run: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(sb.String(), "\n"), "\n")
	if len(lines) != 7 || len(lines[0]) != 12 {
		t.Errorf("got %d lines of %d, want 7 of 12", len(lines), len(lines[0]))
	}
	if _, err := os.Stat(pngPath); err != nil {
		t.Errorf("png not written: %v", err)
	}
	saved, err := store.LoadPreset("narrow")
	if err != nil {
		t.Fatalf("LoadPreset: %v", err)
	}
	if saved.Kind != "simplex" || saved.Width != 12 || saved.Scheme != "grayscale" {
		t.Errorf("saved preset = %+v", saved)
	}
}

func TestRunList(t *testing.T) {
	var sb strings.Builder
	if err := run(config.DefaultConfig(), options{data: t.TempDir(), list: true}, nil, discard(), &sb); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(sb.String(), "branching") || !strings.Contains(sb.String(), "terrain") {
		t.Errorf("list output = %q", sb.String())
	}
}
