package zoo

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/tui-life/internal/life"
)

// Binary grid format: a little-endian int32 width, a little-endian int32
// height, then (width*height+7)/8 payload bytes. Bit i of the payload,
// counted from the least-significant bit of each byte consumed in order,
// holds cell i in row-major order: 1 = Alive, 0 = Dead. Padding bits past
// width*height in the final byte are zero on write and ignored on read.

// ReadBinary decodes the binary grid format.
func ReadBinary(r io.Reader) (*life.Grid, error) {
	var w, h int32
	if err := binary.Read(r, binary.LittleEndian, &w); err != nil {
		return nil, headerError(err)
	}
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, headerError(err)
	}
	if w < 0 || h < 0 {
		return nil, ParseError{Format: "binary", Reason: fmt.Sprintf("negative dimensions %dx%d", w, h)}
	}

	total := int(w) * int(h)
	payload := make([]byte, (total+7)/8)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ParseError{Format: "binary", Reason: "unexpected end of input in cell payload"}
		}
		return nil, fmt.Errorf("zoo: read binary payload: %w", err)
	}

	cells := make([]life.Cell, total)
	for i := range cells {
		if payload[i/8]&(1<<(i%8)) != 0 {
			cells[i] = life.Alive
		}
	}
	return life.GridFromCells(int(w), int(h), cells)
}

// WriteBinary encodes g in the binary grid format.
func WriteBinary(w io.Writer, g *life.Grid) error {
	if err := binary.Write(w, binary.LittleEndian, int32(g.Width())); err != nil {
		return fmt.Errorf("zoo: write binary header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, int32(g.Height())); err != nil {
		return fmt.Errorf("zoo: write binary header: %w", err)
	}

	total := g.TotalCells()
	payload := make([]byte, (total+7)/8)
	i := 0
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.Get(x, y)
			if err != nil {
				return err
			}
			if c == life.Alive {
				payload[i/8] |= 1 << (i % 8)
			}
			i++
		}
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("zoo: write binary payload: %w", err)
	}
	return nil
}

// LoadBinary reads a grid from a binary format file.
func LoadBinary(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zoo: cannot open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadBinary(f)
	if err != nil {
		return nil, fmt.Errorf("zoo: load %s: %w", path, err)
	}
	return g, nil
}

// SaveBinary writes a grid to a binary format file.
func SaveBinary(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zoo: cannot create %s: %w", path, err)
	}
	if err := WriteBinary(f, g); err != nil {
		f.Close()
		return fmt.Errorf("zoo: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("zoo: save %s: %w", path, err)
	}
	return nil
}

func headerError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ParseError{Format: "binary", Reason: "unexpected end of input in header"}
	}
	return fmt.Errorf("zoo: read binary header: %w", err)
}
