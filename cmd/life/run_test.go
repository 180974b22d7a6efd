package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-life/internal/config"
	"github.com/vovakirdan/tui-life/internal/life"
)

func writeTestGrid(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "start.gol")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func resetRunFlags(t *testing.T) {
	t.Helper()
	orig := []struct {
		p *int
		v int
	}{{&flagWidth, flagWidth}, {&flagHeight, flagHeight}}
	origLoad := flagLoad
	t.Cleanup(func() {
		for _, o := range orig {
			*o.p = o.v
		}
		flagLoad = origLoad
	})
	flagWidth, flagHeight = 0, 0
	flagLoad = ""
}

func TestInitialGridLoadedWithResize(t *testing.T) {
	resetRunFlags(t)

	// 3x3 blinker, middle row alive
	flagLoad = writeTestGrid(t, "3 3\n   \n###\n   \n")
	flagWidth = 5
	flagHeight = 4

	g, name, err := initialGrid(nil, config.DefaultSimConfig())
	if err != nil {
		t.Fatalf("initialGrid() failed: %v", err)
	}
	if name != "file" {
		t.Errorf("pattern name = %q, expected %q", name, "file")
	}
	if g.Width() != 5 || g.Height() != 4 {
		t.Fatalf("grid is %dx%d, expected 5x4", g.Width(), g.Height())
	}
	// The original cells survive in place, the new area is dead
	for x := 0; x < 3; x++ {
		c, err := g.Get(x, 1)
		if err != nil {
			t.Fatalf("Get(%d, 1) failed: %v", x, err)
		}
		if c != life.Alive {
			t.Errorf("cell (%d, 1) = %v, expected Alive after resize", x, c)
		}
	}
	if g.AliveCells() != 3 {
		t.Errorf("AliveCells() = %d, expected 3", g.AliveCells())
	}
}

func TestInitialGridLoadedWithoutResize(t *testing.T) {
	resetRunFlags(t)

	flagLoad = writeTestGrid(t, "2 2\n##\n##\n")

	g, _, err := initialGrid(nil, config.DefaultSimConfig())
	if err != nil {
		t.Fatalf("initialGrid() failed: %v", err)
	}
	if g.Width() != 2 || g.Height() != 2 {
		t.Errorf("grid is %dx%d, expected the file's own 2x2", g.Width(), g.Height())
	}
}

func TestInitialGridPresetUsesFlags(t *testing.T) {
	resetRunFlags(t)
	flagWidth = 12
	flagHeight = 9

	g, name, err := initialGrid([]string{"blinker"}, config.DefaultSimConfig())
	if err != nil {
		t.Fatalf("initialGrid() failed: %v", err)
	}
	if name != "blinker" {
		t.Errorf("pattern name = %q, expected %q", name, "blinker")
	}
	if g.Width() != 12 || g.Height() != 9 {
		t.Errorf("grid is %dx%d, expected 12x9", g.Width(), g.Height())
	}
	if g.AliveCells() != 3 {
		t.Errorf("AliveCells() = %d, expected the blinker's 3", g.AliveCells())
	}
}
