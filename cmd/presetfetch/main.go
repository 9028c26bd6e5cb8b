package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	get "github.com/hashicorp/go-getter"

	"github.com/OCharnyshevich/gridgen/internal/storage"
)

func main() {
	var (
		src  = flag.String("src", "", "preset bundle source (any go-getter URL, e.g. git::https://host/repo.git//presets)")
		data = flag.String("data", "./data", "data directory holding presets/")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *src == "" {
		log.Error("source url required")
		os.Exit(2)
	}

	store, err := storage.New(*data, log)
	if err != nil {
		log.Error("open storage", "error", err)
		os.Exit(1)
	}

	if err := fetch(store, *src, log); err != nil {
		log.Error("fetch presets", "src", *src, "error", err)
		os.Exit(1)
	}
}

// fetch downloads src into a staging directory and imports every valid
// top-level *.json file as a preset named after the file.
func fetch(store *storage.Storage, src string, log *slog.Logger) error {
	staging, err := os.MkdirTemp("", "presetfetch-")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	bundle := filepath.Join(staging, "bundle")
	log.Info("start downloading presets", "src", src)
	if err := get.Get(bundle, src); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	files, err := filepath.Glob(filepath.Join(bundle, "*.json"))
	if err != nil {
		return fmt.Errorf("scan bundle: %w", err)
	}

	imported := 0
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			log.Warn("skip preset", "file", f, "error", err)
			continue
		}
		name := strings.TrimSuffix(filepath.Base(f), ".json")
		cfg, err := store.ImportPreset(name, raw)
		if err != nil {
			log.Warn("skip preset", "name", name, "error", err)
			continue
		}
		log.Info("imported preset", "name", name, "kind", cfg.Kind)
		imported++
	}

	log.Info("done downloading presets", "imported", imported, "found", len(files), "dir", store.PresetDir())
	return nil
}
