package life

import (
	"errors"
	"testing"
)

func mustGrid(t *testing.T, w, h int) *Grid {
	t.Helper()
	g, err := NewGrid(w, h)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) failed: %v", w, h, err)
	}
	return g
}

// gridOf builds a grid from row strings of ' ' and '#'.
func gridOf(t *testing.T, rows ...string) *Grid {
	t.Helper()
	w := 0
	if len(rows) > 0 {
		w = len(rows[0])
	}
	cells := make([]Cell, 0, w*len(rows))
	for _, row := range rows {
		if len(row) != w {
			t.Fatalf("gridOf: ragged rows")
		}
		for _, r := range row {
			if r == '#' {
				cells = append(cells, Alive)
			} else {
				cells = append(cells, Dead)
			}
		}
	}
	g, err := GridFromCells(w, len(rows), cells)
	if err != nil {
		t.Fatalf("GridFromCells failed: %v", err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g := mustGrid(t, 4, 3)
	if g.Width() != 4 || g.Height() != 3 {
		t.Errorf("dimensions = %dx%d, expected 4x3", g.Width(), g.Height())
	}
	if g.TotalCells() != 12 {
		t.Errorf("TotalCells() = %d, expected 12", g.TotalCells())
	}
	if g.AliveCells() != 0 {
		t.Errorf("new grid has %d alive cells, expected 0", g.AliveCells())
	}
	if g.DeadCells() != 12 {
		t.Errorf("DeadCells() = %d, expected 12", g.DeadCells())
	}

	if _, err := NewGrid(-1, 3); err == nil {
		t.Error("NewGrid(-1, 3) succeeded, expected DimensionError")
	}
	if _, err := NewSquareGrid(-2); err == nil {
		t.Error("NewSquareGrid(-2) succeeded, expected DimensionError")
	}
}

func TestGridFromCells(t *testing.T) {
	cells := []Cell{Dead, Alive, Dead, Alive}
	g, err := GridFromCells(2, 2, cells)
	if err != nil {
		t.Fatalf("GridFromCells() failed: %v", err)
	}

	// The buffer must be copied, not adopted.
	cells[0] = Alive
	if c, _ := g.Get(0, 0); c != Dead {
		t.Error("grid aliased the caller's buffer")
	}

	if _, err := GridFromCells(2, 2, cells[:3]); err == nil {
		t.Error("GridFromCells with short buffer succeeded, expected DimensionError")
	}
	var dimErr DimensionError
	_, err = GridFromCells(3, -1, nil)
	if !errors.As(err, &dimErr) {
		t.Errorf("GridFromCells(3, -1) error = %v, expected DimensionError", err)
	}
}

func TestGridSetGet(t *testing.T) {
	g := mustGrid(t, 4, 4)
	if err := g.Set(2, 1, Alive); err != nil {
		t.Fatalf("Set(2, 1) failed: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			c, err := g.Get(x, y)
			if err != nil {
				t.Fatalf("Get(%d, %d) failed: %v", x, y, err)
			}
			want := Dead
			if x == 2 && y == 1 {
				want = Alive
			}
			if c != want {
				t.Errorf("cell (%d,%d) = %v, expected %v", x, y, c, want)
			}
		}
	}
}

func TestGridBounds(t *testing.T) {
	g := mustGrid(t, 3, 2)

	tests := []struct {
		name string
		x, y int
	}{
		{"negative x", -1, 0},
		{"negative y", 0, -1},
		{"x at width", 3, 0},
		{"y at height", 0, 2},
		{"both past", 5, 7},
		{"both negative", -3, -3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var oob OutOfBoundsError
			if _, err := g.Get(tc.x, tc.y); !errors.As(err, &oob) {
				t.Errorf("Get(%d, %d) error = %v, expected OutOfBoundsError", tc.x, tc.y, err)
			}
			if err := g.Set(tc.x, tc.y, Alive); !errors.As(err, &oob) {
				t.Errorf("Set(%d, %d) error = %v, expected OutOfBoundsError", tc.x, tc.y, err)
			}
		})
	}

	if g.AliveCells() != 0 {
		t.Error("rejected Set still modified the grid")
	}
}

func TestGridResize(t *testing.T) {
	tests := []struct {
		name       string
		newW, newH int
	}{
		{"shrink", 2, 2},
		{"grow", 6, 6},
		{"mixed grow x shrink y", 6, 2},
		{"mixed shrink x grow y", 2, 6},
		{"same size", 4, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, 4, 4)
			if err := g.Set(1, 1, Alive); err != nil {
				t.Fatal(err)
			}
			if err := g.Set(3, 3, Alive); err != nil {
				t.Fatal(err)
			}

			if err := g.Resize(tc.newW, tc.newH); err != nil {
				t.Fatalf("Resize(%d, %d) failed: %v", tc.newW, tc.newH, err)
			}
			if g.Width() != tc.newW || g.Height() != tc.newH {
				t.Fatalf("dimensions = %dx%d, expected %dx%d", g.Width(), g.Height(), tc.newW, tc.newH)
			}

			for y := 0; y < tc.newH; y++ {
				for x := 0; x < tc.newW; x++ {
					c, err := g.Get(x, y)
					if err != nil {
						t.Fatalf("Get(%d, %d) failed: %v", x, y, err)
					}
					// (1,1) always survives; (3,3) only if still in bounds.
					want := Dead
					if (x == 1 && y == 1) || (x == 3 && y == 3 && tc.newW > 3 && tc.newH > 3) {
						want = Alive
					}
					if c != want {
						t.Errorf("after resize cell (%d,%d) = %v, expected %v", x, y, c, want)
					}
				}
			}
		})
	}

	g := mustGrid(t, 2, 2)
	var regionErr RegionError
	if err := g.Resize(-1, 2); !errors.As(err, &regionErr) {
		t.Errorf("Resize(-1, 2) error = %v, expected RegionError", err)
	}
}

func TestGridCrop(t *testing.T) {
	g := gridOf(t,
		"#   ",
		" ## ",
		" ## ",
		"   #",
	)

	centre, err := g.Crop(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Crop(1, 1, 3, 3) failed: %v", err)
	}
	if !centre.Equal(gridOf(t, "##", "##")) {
		t.Errorf("cropped centre:\n%sexpected a 2x2 block", centre)
	}

	// Crop must be an independent copy.
	if err := centre.Set(0, 0, Dead); err != nil {
		t.Fatal(err)
	}
	if c, _ := g.Get(1, 1); c != Alive {
		t.Error("mutating a cropped grid changed the source")
	}

	invalid := []struct {
		name           string
		x0, y0, x1, y1 int
	}{
		{"negative width", 3, 0, 1, 2},
		{"negative height", 0, 3, 2, 1},
		{"past right edge", 2, 0, 5, 2},
		{"past bottom edge", 0, 2, 2, 5},
		{"negative origin", -1, 0, 2, 2},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			var regionErr RegionError
			if _, err := g.Crop(tc.x0, tc.y0, tc.x1, tc.y1); !errors.As(err, &regionErr) {
				t.Errorf("Crop(%d, %d, %d, %d) error = %v, expected RegionError",
					tc.x0, tc.y0, tc.x1, tc.y1, err)
			}
		})
	}
}

func TestGridMergeOverwrite(t *testing.T) {
	g := gridOf(t,
		"####",
		"####",
		"####",
		"####",
	)
	overlay := gridOf(t,
		"# ",
		" #",
	)

	if err := g.Merge(overlay, 1, 1, false); err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}
	want := gridOf(t,
		"####",
		"## #",
		"# ##",
		"####",
	)
	if !g.Equal(want) {
		t.Errorf("after overwrite merge:\n%sexpected:\n%s", g, want)
	}
}

func TestGridMergeAliveOnly(t *testing.T) {
	g := gridOf(t,
		"# ",
		" #",
	)
	overlay := gridOf(t,
		"##",
		"  ",
	)

	if err := g.Merge(overlay, 0, 0, true); err != nil {
		t.Fatalf("Merge(aliveOnly) failed: %v", err)
	}
	// Live overlay cells turn cells alive; dead overlay cells never kill.
	want := gridOf(t,
		"##",
		" #",
	)
	if !g.Equal(want) {
		t.Errorf("after alive-only merge:\n%sexpected:\n%s", g, want)
	}
}

func TestGridMergeBounds(t *testing.T) {
	g := mustGrid(t, 4, 4)
	overlay := mustGrid(t, 2, 2)

	tests := []struct {
		name   string
		x0, y0 int
	}{
		{"negative x0", -1, 0},
		{"negative y0", 0, -1},
		{"overhangs right", 3, 0},
		{"overhangs bottom", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var oob OutOfBoundsError
			if err := g.Merge(overlay, tc.x0, tc.y0, false); !errors.As(err, &oob) {
				t.Errorf("Merge at (%d, %d) error = %v, expected OutOfBoundsError", tc.x0, tc.y0, err)
			}
		})
	}
}

func TestCropMergeRoundTrip(t *testing.T) {
	original := gridOf(t,
		"#  #",
		" ## ",
		" ## ",
		"#  #",
	)

	cropped, err := original.Crop(1, 1, 3, 3)
	if err != nil {
		t.Fatalf("Crop() failed: %v", err)
	}
	rebuilt := original.Clone()
	if err := rebuilt.Merge(cropped, 1, 1, false); err != nil {
		t.Fatalf("Merge() failed: %v", err)
	}
	if !rebuilt.Equal(original) {
		t.Errorf("crop+merge did not reconstruct the original:\n%sexpected:\n%s", rebuilt, original)
	}
}

func TestGridRotate(t *testing.T) {
	g := gridOf(t,
		"## ",
		"  #",
	)

	t.Run("quarter turn swaps dimensions", func(t *testing.T) {
		r := g.Rotate(1)
		if r.Width() != g.Height() || r.Height() != g.Width() {
			t.Fatalf("rotated dimensions = %dx%d, expected %dx%d",
				r.Width(), r.Height(), g.Height(), g.Width())
		}
		// Clockwise: (x, y) -> (h-1-y, x).
		want := gridOf(t,
			" #",
			" #",
			"# ",
		)
		if !r.Equal(want) {
			t.Errorf("Rotate(1):\n%sexpected:\n%s", r, want)
		}
	})

	t.Run("identity", func(t *testing.T) {
		if !g.Rotate(0).Equal(g) {
			t.Error("Rotate(0) is not the identity")
		}
		if !g.Rotate(4).Equal(g.Rotate(0)) {
			t.Error("Rotate(4) differs from Rotate(0)")
		}
		if !g.Rotate(-4).Equal(g) {
			t.Error("Rotate(-4) is not the identity")
		}
	})

	t.Run("inverse pairs", func(t *testing.T) {
		if !g.Rotate(1).Rotate(-1).Equal(g) {
			t.Error("Rotate(1) then Rotate(-1) is not the identity")
		}
		if !g.Rotate(1).Rotate(3).Equal(g) {
			t.Error("Rotate(1) then Rotate(3) is not the identity")
		}
		if !g.Rotate(2).Rotate(2).Equal(g) {
			t.Error("Rotate(2) applied twice is not the identity")
		}
	})

	t.Run("half turn reverses the buffer", func(t *testing.T) {
		want := gridOf(t,
			"#  ",
			" ##",
		)
		if r := g.Rotate(2); !r.Equal(want) {
			t.Errorf("Rotate(2):\n%sexpected:\n%s", r, want)
		}
	})

	t.Run("large turn counts reduce mod 4", func(t *testing.T) {
		if !g.Rotate(5).Equal(g.Rotate(1)) {
			t.Error("Rotate(5) differs from Rotate(1)")
		}
		if !g.Rotate(-3).Equal(g.Rotate(1)) {
			t.Error("Rotate(-3) differs from Rotate(1)")
		}
	})

	t.Run("rotation copies storage", func(t *testing.T) {
		r := g.Rotate(0)
		if err := r.Set(0, 0, Dead); err != nil {
			t.Fatal(err)
		}
		if c, _ := g.Get(0, 0); c != Alive {
			t.Error("mutating a rotated grid changed the source")
		}
	})
}

func TestGridString(t *testing.T) {
	g := gridOf(t,
		" # ",
		"  #",
		"###",
	)
	want := "+---+\n| # |\n|  #|\n|###|\n+---+\n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}

	empty := mustGrid(t, 0, 0)
	if got := empty.String(); got != "++\n++\n" {
		t.Errorf("empty String() = %q, expected %q", got, "++\n++\n")
	}
}
