// Package life implements the core of Conway's Game of Life: a dense
// rectangular grid of binary cells and a double-buffered world that advances
// it one generation at a time. The package is pure computation with no I/O
// (file formats live in internal/zoo) and no UI dependencies, keeping the
// simulation deterministic and testable.
package life

// Cell is the binary state of one grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns the character used in the text file format and the bordered
// render: ' ' for Dead, '#' for Alive.
func (c Cell) String() string {
	if c == Alive {
		return "#"
	}
	return " "
}

// Rune returns the same encoding as String as a single rune.
func (c Cell) Rune() rune {
	if c == Alive {
		return '#'
	}
	return ' '
}

// Valid reports whether c is one of the two legal cell values.
func (c Cell) Valid() bool {
	return c == Dead || c == Alive
}
