// Package zoo constructs preset Game of Life patterns and loads/saves grids
// in the two on-disk formats: human-readable text (.gol) and packed binary
// (.bgol). Patterns are drawn on a grid the size of their bounding box.
package zoo

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-life/internal/life"
)

// factories maps pattern names to constructors. Patterns are pure and cheap
// to build, so no caching is needed.
var factories = map[string]func() *life.Grid{
	"glider":     Glider,
	"lwss":       LightweightSpaceship,
	"rpentomino": RPentomino,
	"blinker":    Blinker,
	"block":      Block,
}

// Names returns all registered pattern names, sorted.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Pattern builds the named preset pattern.
func Pattern(name string) (*life.Grid, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("zoo: unknown pattern %q", name)
	}
	return factory(), nil
}

// PatternOnBoard builds a w x h board with the named pattern centred on it.
// The board is grown on either axis if the pattern's bounding box does not
// fit the requested size.
func PatternOnBoard(name string, w, h int) (*life.Grid, error) {
	p, err := Pattern(name)
	if err != nil {
		return nil, err
	}
	if w < p.Width() {
		w = p.Width()
	}
	if h < p.Height() {
		h = p.Height()
	}
	board, err := life.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	if err := board.Merge(p, (w-p.Width())/2, (h-p.Height())/2, false); err != nil {
		return nil, err
	}
	return board, nil
}

// Glider returns a 3x3 grid containing a glider.
//
//	+---+
//	| # |
//	|  #|
//	|###|
//	+---+
func Glider() *life.Grid {
	return pattern(3, 3,
		" # ",
		"  #",
		"###",
	)
}

// RPentomino returns a 3x3 grid containing an r-pentomino.
//
//	+---+
//	| ##|
//	|## |
//	| # |
//	+---+
func RPentomino() *life.Grid {
	return pattern(3, 3,
		" ##",
		"## ",
		" # ",
	)
}

// LightweightSpaceship returns a 5x4 grid containing a lightweight spaceship.
//
//	+-----+
//	| #  #|
//	|#    |
//	|#   #|
//	|#### |
//	+-----+
func LightweightSpaceship() *life.Grid {
	return pattern(5, 4,
		" #  #",
		"#    ",
		"#   #",
		"#### ",
	)
}

// Blinker returns a 3x3 grid containing a period-2 blinker.
func Blinker() *life.Grid {
	return pattern(3, 3,
		"   ",
		"###",
		"   ",
	)
}

// Block returns a 2x2 still-life block.
func Block() *life.Grid {
	return pattern(2, 2,
		"##",
		"##",
	)
}

// pattern builds a grid from row strings of ' ' and '#'. The rows are
// compile-time constants, so a failure here is a programming error.
func pattern(w, h int, rows ...string) *life.Grid {
	cells := make([]life.Cell, 0, w*h)
	for _, row := range rows {
		for _, r := range row {
			if r == '#' {
				cells = append(cells, life.Alive)
			} else {
				cells = append(cells, life.Dead)
			}
		}
	}
	g, err := life.GridFromCells(w, h, cells)
	if err != nil {
		panic(fmt.Sprintf("zoo: malformed preset pattern: %v", err))
	}
	return g
}
