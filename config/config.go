// Package config loads the editor's settings file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the editor looks for settings when no -config flag
// is given.
const DefaultPath = "sked.yaml"

// Config holds the editor settings.
type Config struct {
	// TreeDir is the working directory for skill tree files.
	TreeDir string `yaml:"tree_dir"`
	// SnapToGrid controls whether created and moved nodes snap.
	SnapToGrid bool `yaml:"snap_to_grid"`
	// GridSize is the snapping grid pitch in world units.
	GridSize float64 `yaml:"grid_size"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		TreeDir:    ".",
		SnapToGrid: true,
		GridSize:   50,
	}
}

// Load reads settings from path. A missing file is not an error; the
// defaults are returned. Unset fields in the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.GridSize <= 0 {
		cfg.GridSize = Default().GridSize
	}
	if cfg.TreeDir == "" {
		cfg.TreeDir = Default().TreeDir
	}
	return cfg, nil
}
