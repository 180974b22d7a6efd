package life

// World holds the evolving state of one simulation: the current generation
// and a same-sized scratch grid for the next one. Step reads only from the
// current grid and writes only to the scratch grid, then swaps the two in
// O(1), so a cell's transition is never computed from already-updated
// neighbours.
type World struct {
	cur        *Grid
	next       *Grid
	generation uint64
}

// NewWorld creates a w x h world with all cells Dead.
func NewWorld(w, h int) (*World, error) {
	cur, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	next, err := NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	return &World{cur: cur, next: next}, nil
}

// NewSquareWorld creates a size x size world with all cells Dead.
func NewSquareWorld(size int) (*World, error) {
	return NewWorld(size, size)
}

// NewWorldFromGrid creates a world that adopts initial as its current
// generation. The scratch grid is allocated with matching dimensions; its
// contents are irrelevant until the first Step overwrites them.
func NewWorldFromGrid(initial *Grid) (*World, error) {
	next, err := NewGrid(initial.w, initial.h)
	if err != nil {
		return nil, err
	}
	return &World{cur: initial, next: next}, nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.cur.Width() }

// Height returns the number of rows.
func (w *World) Height() int { return w.cur.Height() }

// TotalCells returns width*height.
func (w *World) TotalCells() int { return w.cur.TotalCells() }

// AliveCells returns the number of Alive cells in the current generation.
func (w *World) AliveCells() int { return w.cur.AliveCells() }

// DeadCells returns the number of Dead cells in the current generation.
func (w *World) DeadCells() int { return w.cur.DeadCells() }

// Generation returns how many steps the world has taken.
func (w *World) Generation() uint64 { return w.generation }

// State returns the current generation's grid. Callers must treat it as
// read-only; mutate the world only through Step, Advance, and Resize.
func (w *World) State() *Grid { return w.cur }

// Resize reshapes both grids to newW x newH. The current generation keeps
// its overlapping content per Grid.Resize; the scratch grid only needs the
// right shape, every Step overwrites it in full before reading it.
func (w *World) Resize(newW, newH int) error {
	if err := w.cur.Resize(newW, newH); err != nil {
		return err
	}
	return w.next.Resize(newW, newH)
}

// ResizeSquare reshapes the world to size x size.
func (w *World) ResizeSquare(size int) error {
	return w.Resize(size, size)
}

// countNeighbours counts Alive cells in the 3x3 neighbourhood around (x, y),
// excluding the centre. Non-toroidal: out-of-range neighbours are skipped,
// as if the grid were Dead beyond its edges. Toroidal: out-of-range
// coordinates wrap to the opposite edge, making the grid a torus.
func (w *World) countNeighbours(x, y int, toroidal bool) int {
	width, height := w.cur.Width(), w.cur.Height()
	alive := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if toroidal {
				nx = (nx + width) % width
				ny = (ny + height) % height
			} else if !w.cur.inBounds(nx, ny) {
				continue
			}
			if w.cur.cell(nx, ny) == Alive {
				alive++
			}
		}
	}
	return alive
}

// Step advances the simulation by one generation under Conway's rule:
//
//   - Alive with fewer than 2 live neighbours dies (underpopulation).
//   - Alive with 2 or 3 live neighbours survives.
//   - Alive with more than 3 live neighbours dies (overpopulation).
//   - Dead with exactly 3 live neighbours becomes Alive (reproduction).
//
// Every cell of the scratch grid is written, so no stale value from an
// earlier generation can leak through. The buffers are then swapped without
// copying.
func (w *World) Step(toroidal bool) {
	for y := 0; y < w.cur.Height(); y++ {
		for x := 0; x < w.cur.Width(); x++ {
			alive := w.countNeighbours(x, y, toroidal)
			next := Dead
			if alive == 3 || (alive == 2 && w.cur.cell(x, y) == Alive) {
				next = Alive
			}
			w.next.setCell(x, y, next)
		}
	}
	w.cur, w.next = w.next, w.cur
	w.generation++
}

// Advance takes steps generations in sequence. Zero or negative steps is a
// no-op; there is no reverse stepping.
func (w *World) Advance(steps int, toroidal bool) {
	for i := 0; i < steps; i++ {
		w.Step(toroidal)
	}
}
