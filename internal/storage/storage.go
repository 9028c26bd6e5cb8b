package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/OCharnyshevich/gridgen/internal/config"
)

// ErrNotFound is returned when a named preset does not exist.
var ErrNotFound = errors.New("preset not found")

const presetExt = ".json"

// Storage handles file-based persistence for generation presets.
type Storage struct {
	dir string
	log *slog.Logger
}

// New creates a new Storage rooted at dir, creating subdirectories as needed.
func New(dir string, log *slog.Logger) (*Storage, error) {
	dirs := []string{
		dir,
		filepath.Join(dir, "presets"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", d, err)
		}
	}
	return &Storage{dir: dir, log: log}, nil
}

// PresetDir returns the directory holding <name>.json presets.
func (s *Storage) PresetDir() string {
	return filepath.Join(s.dir, "presets")
}

// LoadPreset reads presets/<name>.json on top of the default config, so a
// preset only needs the fields it changes.
func (s *Storage) LoadPreset(name string) (*config.Config, error) {
	path, err := s.presetPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("read preset %s: %w", name, err)
	}

	cfg, err := decodePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", name, err)
	}
	s.log.Info("loaded preset", "name", name, "kind", cfg.Kind)
	return cfg, nil
}

// ImportPreset validates raw preset JSON and stores it under name.
func (s *Storage) ImportPreset(name string, data []byte) (*config.Config, error) {
	cfg, err := decodePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", name, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	if err := s.SavePreset(name, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodePreset(data []byte) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SavePreset writes cfg to presets/<name>.json atomically.
func (s *Storage) SavePreset(name string, cfg *config.Config) error {
	path, err := s.presetPath(name)
	if err != nil {
		return err
	}
	if err := s.atomicWriteJSON(path, cfg); err != nil {
		return fmt.Errorf("save preset %s: %w", name, err)
	}
	s.log.Debug("saved preset", "name", name, "path", path)
	return nil
}

// ListPresets returns the sorted names of all stored presets.
func (s *Storage) ListPresets() ([]string, error) {
	entries, err := os.ReadDir(s.PresetDir())
	if err != nil {
		return nil, fmt.Errorf("list presets: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), presetExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), presetExt))
	}
	slices.Sort(names)
	return names, nil
}

func (s *Storage) presetPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid preset name %q", name)
	}
	return filepath.Join(s.PresetDir(), name+presetExt), nil
}

// atomicWriteJSON marshals v to JSON and writes it atomically using a temp file + rename.
func (s *Storage) atomicWriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
