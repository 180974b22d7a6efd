package life

import "fmt"

// OutOfBoundsError reports a coordinate access outside [0,w) x [0,h), or a
// merge footprint that does not fit inside the target grid. Bounds failures
// are never clamped or ignored; doing so would silently corrupt simulation
// results.
type OutOfBoundsError struct {
	X, Y          int
	Width, Height int
}

func (e OutOfBoundsError) Error() string {
	return fmt.Sprintf("life: coordinate (%d,%d) outside %dx%d grid", e.X, e.Y, e.Width, e.Height)
}

// RegionError reports a crop window or resize request describing a negative
// or inconsistent area.
type RegionError struct {
	X0, Y0, X1, Y1 int
	Reason         string
}

// Error renders the window one half-open interval per axis:
// [X0,X1) for columns, then [Y0,Y1) for rows.
func (e RegionError) Error() string {
	return fmt.Sprintf("life: invalid region [%d,%d)x[%d,%d): %s", e.X0, e.X1, e.Y0, e.Y1, e.Reason)
}

// DimensionError reports grid construction with negative dimensions or a
// cell buffer whose length does not match width*height.
type DimensionError struct {
	Width, Height int
	BufferLen     int
	Reason        string
}

func (e DimensionError) Error() string {
	return fmt.Sprintf("life: invalid dimensions %dx%d (buffer %d): %s", e.Width, e.Height, e.BufferLen, e.Reason)
}
