package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("grid:\n  width: 10\n  height: 6\npattern: blinker\ntoroidal: true\ntick_rate: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Grid.Width != 10 || cfg.Grid.Height != 6 {
		t.Errorf("grid = %dx%d, expected 10x6", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Pattern != "blinker" || !cfg.Toroidal || cfg.TickRate != 4 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() on a missing custom path succeeded, expected an error")
	}
}

func TestNormalizeFillsInvalidValues(t *testing.T) {
	cfg := SimConfig{Grid: GridConfig{Width: -5, Height: 0}, TickRate: 0}
	cfg.Normalize()

	def := DefaultSimConfig()
	if cfg.Grid.Width != def.Grid.Width || cfg.Grid.Height != def.Grid.Height {
		t.Errorf("grid = %dx%d, expected defaults %dx%d",
			cfg.Grid.Width, cfg.Grid.Height, def.Grid.Width, def.Grid.Height)
	}
	if cfg.TickRate != def.TickRate || cfg.Pattern != def.Pattern {
		t.Errorf("unexpected normalized config: %+v", cfg)
	}
}

func TestEmbeddedDefaultsParse(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Grid.Width <= 0 || cfg.Grid.Height <= 0 || cfg.TickRate <= 0 {
		t.Errorf("defaults are not usable: %+v", cfg)
	}
}
