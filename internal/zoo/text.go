package zoo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-life/internal/life"
)

// ReadText decodes the text grid format: a header line "<width> <height>",
// then exactly height lines of exactly width characters, ' ' for Dead and
// '#' for Alive, each terminated by a newline.
func ReadText(r io.Reader) (*life.Grid, error) {
	br := bufio.NewReader(r)

	header, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("zoo: read text header: %w", err)
	}
	if strings.TrimSpace(header) == "" {
		return nil, ParseError{Format: "text", Line: 1, Reason: "missing header"}
	}
	fields := strings.Fields(header)
	if len(fields) != 2 {
		return nil, ParseError{Format: "text", Line: 1, Reason: "header must be two integers separated by a space"}
	}
	w, errW := strconv.Atoi(fields[0])
	h, errH := strconv.Atoi(fields[1])
	if errW != nil || errH != nil || w < 0 || h < 0 {
		return nil, ParseError{Format: "text", Line: 1, Reason: fmt.Sprintf("width and height must be non-negative integers, got %q %q", fields[0], fields[1])}
	}

	cells := make([]life.Cell, 0, w*h)
	for y := 0; y < h; y++ {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("zoo: read text row: %w", err)
		}
		row := strings.TrimSuffix(line, "\n")
		if len(row) != w {
			return nil, ParseError{Format: "text", Line: y + 2, Reason: fmt.Sprintf("row has %d characters, want %d", len(row), w)}
		}
		for _, r := range row {
			switch r {
			case ' ':
				cells = append(cells, life.Dead)
			case '#':
				cells = append(cells, life.Alive)
			default:
				return nil, ParseError{Format: "text", Line: y + 2, Reason: fmt.Sprintf("unexpected character %q, want ' ' or '#'", r)}
			}
		}
	}

	return life.GridFromCells(w, h, cells)
}

// WriteText encodes g in the text grid format.
func WriteText(w io.Writer, g *life.Grid) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.Width(), g.Height()); err != nil {
		return fmt.Errorf("zoo: write text header: %w", err)
	}
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c, err := g.Get(x, y)
			if err != nil {
				return err
			}
			bw.WriteRune(c.Rune())
		}
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("zoo: write text grid: %w", err)
	}
	return nil
}

// LoadText reads a grid from a text format file.
func LoadText(path string) (*life.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("zoo: cannot open %s: %w", path, err)
	}
	defer f.Close()

	g, err := ReadText(f)
	if err != nil {
		return nil, fmt.Errorf("zoo: load %s: %w", path, err)
	}
	return g, nil
}

// SaveText writes a grid to a text format file.
func SaveText(path string, g *life.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("zoo: cannot create %s: %w", path, err)
	}
	if err := WriteText(f, g); err != nil {
		f.Close()
		return fmt.Errorf("zoo: save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("zoo: save %s: %w", path, err)
	}
	return nil
}
