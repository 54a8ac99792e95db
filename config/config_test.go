package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPath(t *testing.T) {
	if DefaultPath != "sked.yaml" {
		t.Errorf("Expected the settings file sked.yaml, got %q", DefaultPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Expected no error for a missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sked.yaml")
	raw := "tree_dir: trees\nsnap_to_grid: false\ngrid_size: 25\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.TreeDir != "trees" || cfg.SnapToGrid || cfg.GridSize != 25 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sked.yaml")
	if err := os.WriteFile(path, []byte("tree_dir: elsewhere\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.TreeDir != "elsewhere" {
		t.Errorf("Expected the override, got %q", cfg.TreeDir)
	}
	if !cfg.SnapToGrid || cfg.GridSize != 50 {
		t.Errorf("Expected untouched defaults, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sked.yaml")
	if err := os.WriteFile(path, []byte("tree_dir: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error")
	}
}

func TestLoadSanitizesGridSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sked.yaml")
	if err := os.WriteFile(path, []byte("grid_size: -10\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.GridSize != 50 {
		t.Errorf("Expected the default pitch restored, got %g", cfg.GridSize)
	}
}
