package life

import "strings"

// Grid represents a rectangular field of cells stored in row-major order:
// index = y*width + x. The backing buffer always has length width*height and
// is owned exclusively by the grid; derived grids (Crop, Rotate, Clone) never
// share storage with their source.
type Grid struct {
	w     int
	h     int
	cells []Cell
}

// NewGrid creates a grid with the given dimensions, all cells Dead.
func NewGrid(w, h int) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, DimensionError{Width: w, Height: h, Reason: "dimensions must be non-negative"}
	}
	return &Grid{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// NewSquareGrid creates a size x size grid with all cells Dead.
func NewSquareGrid(size int) (*Grid, error) {
	return NewGrid(size, size)
}

// GridFromCells creates a grid from a flat row-major cell buffer. The buffer
// is copied; the caller keeps ownership of the slice it passed in.
func GridFromCells(w, h int, cells []Cell) (*Grid, error) {
	if w < 0 || h < 0 {
		return nil, DimensionError{Width: w, Height: h, BufferLen: len(cells), Reason: "dimensions must be non-negative"}
	}
	if len(cells) != w*h {
		return nil, DimensionError{Width: w, Height: h, BufferLen: len(cells), Reason: "buffer length must equal width*height"}
	}
	buf := make([]Cell, len(cells))
	copy(buf, cells)
	return &Grid{w: w, h: h, cells: buf}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// TotalCells returns width*height.
func (g *Grid) TotalCells() int { return g.w * g.h }

// AliveCells returns the number of Alive cells.
func (g *Grid) AliveCells() int {
	count := 0
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return count
}

// DeadCells returns the number of Dead cells.
func (g *Grid) DeadCells() int {
	return g.TotalCells() - g.AliveCells()
}

// index converts a coordinate to a flat buffer index.
func (g *Grid) index(x, y int) int {
	return y*g.w + x
}

// inBounds reports whether (x, y) is a valid coordinate.
func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// cell reads a cell without a bounds check. Callers must have established
// that (x, y) is in bounds.
func (g *Grid) cell(x, y int) Cell {
	return g.cells[g.index(x, y)]
}

// setCell writes a cell without a bounds check. Callers must have established
// that (x, y) is in bounds.
func (g *Grid) setCell(x, y int, v Cell) {
	g.cells[g.index(x, y)] = v
}

// Get returns the cell at (x, y), or an OutOfBoundsError if the coordinate
// lies outside the grid.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.inBounds(x, y) {
		return Dead, OutOfBoundsError{X: x, Y: y, Width: g.w, Height: g.h}
	}
	return g.cell(x, y), nil
}

// Set overwrites the cell at (x, y). No other cell is affected. Returns an
// OutOfBoundsError if the coordinate lies outside the grid.
func (g *Grid) Set(x, y int, v Cell) error {
	if !g.inBounds(x, y) {
		return OutOfBoundsError{X: x, Y: y, Width: g.w, Height: g.h}
	}
	g.setCell(x, y, v)
	return nil
}

// Resize reshapes the grid to newW x newH. Cells inside the overlapping
// rectangle keep their values; cells outside it are Dead. Shrink, grow, and
// mixed resizes all follow the same policy. The new buffer is built with
// explicit target-dimension indexing, so no read ever touches freed or
// reinterpreted storage.
func (g *Grid) Resize(newW, newH int) error {
	if newW < 0 || newH < 0 {
		return RegionError{X1: newW, Y1: newH, Reason: "resize dimensions must be non-negative"}
	}
	cells := make([]Cell, newW*newH)
	keepW := min(g.w, newW)
	keepH := min(g.h, newH)
	for y := 0; y < keepH; y++ {
		for x := 0; x < keepW; x++ {
			cells[y*newW+x] = g.cell(x, y)
		}
	}
	g.w = newW
	g.h = newH
	g.cells = cells
	return nil
}

// ResizeSquare reshapes the grid to size x size.
func (g *Grid) ResizeSquare(size int) error {
	return g.Resize(size, size)
}

// Crop extracts the half-open window [x0,x1) x [y0,y1) as a new independent
// grid. The window must lie entirely within the source and describe a
// non-negative area.
func (g *Grid) Crop(x0, y0, x1, y1 int) (*Grid, error) {
	if x1 < x0 || y1 < y0 {
		return nil, RegionError{X0: x0, Y0: y0, X1: x1, Y1: y1, Reason: "window has negative size"}
	}
	if x0 < 0 || y0 < 0 || x1 > g.w || y1 > g.h {
		return nil, RegionError{X0: x0, Y0: y0, X1: x1, Y1: y1, Reason: "window exceeds source bounds"}
	}
	cropped := &Grid{w: x1 - x0, h: y1 - y0, cells: make([]Cell, (x1-x0)*(y1-y0))}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			cropped.setCell(x-x0, y-y0, g.cell(x, y))
		}
	}
	return cropped, nil
}

// Merge overlays other onto g with its top-left corner at (x0, y0). With
// aliveOnly false every covered cell takes the overlay value, dead cells
// included. With aliveOnly true a covered cell is Alive if either side is
// Alive; an existing live cell is never killed by a dead overlay cell.
// The overlay footprint must fit entirely inside g.
func (g *Grid) Merge(other *Grid, x0, y0 int, aliveOnly bool) error {
	if x0 < 0 || y0 < 0 {
		return OutOfBoundsError{X: x0, Y: y0, Width: g.w, Height: g.h}
	}
	if x0+other.w > g.w || y0+other.h > g.h {
		return OutOfBoundsError{X: x0 + other.w - 1, Y: y0 + other.h - 1, Width: g.w, Height: g.h}
	}
	for y := 0; y < other.h; y++ {
		for x := 0; x < other.w; x++ {
			v := other.cell(x, y)
			if aliveOnly && v == Dead {
				continue
			}
			g.setCell(x0+x, y0+y, v)
		}
	}
	return nil
}

// Rotate returns a new grid rotated clockwise by turns*90 degrees. Any
// integer is accepted; the rotation amount is reduced modulo 4 once, so
// execution time does not depend on the magnitude of turns. For a single
// clockwise turn, input cell (x, y) lands at (height-1-y, x) in the output.
func (g *Grid) Rotate(turns int) *Grid {
	r := ((turns % 4) + 4) % 4
	switch r {
	case 1:
		out := &Grid{w: g.h, h: g.w, cells: make([]Cell, len(g.cells))}
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				out.setCell(g.h-1-y, x, g.cell(x, y))
			}
		}
		return out
	case 2:
		out := &Grid{w: g.w, h: g.h, cells: make([]Cell, len(g.cells))}
		for i, c := range g.cells {
			out.cells[len(g.cells)-1-i] = c
		}
		return out
	case 3:
		out := &Grid{w: g.h, h: g.w, cells: make([]Cell, len(g.cells))}
		for y := 0; y < g.h; y++ {
			for x := 0; x < g.w; x++ {
				out.setCell(y, g.w-1-x, g.cell(x, y))
			}
		}
		return out
	default:
		return g.Clone()
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid in its bordered text form:
//
//	+---+
//	| # |
//	|  #|
//	|###|
//	+---+
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.w + 3) * (g.h + 2))
	border := "+" + strings.Repeat("-", g.w) + "+\n"
	sb.WriteString(border)
	for y := 0; y < g.h; y++ {
		sb.WriteByte('|')
		for x := 0; x < g.w; x++ {
			sb.WriteRune(g.cell(x, y).Rune())
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
