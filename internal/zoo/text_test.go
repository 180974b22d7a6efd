package zoo

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestTextRoundTrip(t *testing.T) {
	original := Glider()

	var buf bytes.Buffer
	if err := WriteText(&buf, original); err != nil {
		t.Fatalf("WriteText() failed: %v", err)
	}

	want := "3 3\n # \n  #\n###\n"
	if buf.String() != want {
		t.Errorf("WriteText() = %q, expected %q", buf.String(), want)
	}

	decoded, err := ReadText(&buf)
	if err != nil {
		t.Fatalf("ReadText() failed: %v", err)
	}
	if !decoded.Equal(original) {
		t.Errorf("round trip changed the grid:\n%sexpected:\n%s", decoded, original)
	}
}

func TestTextFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lwss.gol")
	original := LightweightSpaceship()

	if err := SaveText(path, original); err != nil {
		t.Fatalf("SaveText() failed: %v", err)
	}
	loaded, err := LoadText(path)
	if err != nil {
		t.Fatalf("LoadText() failed: %v", err)
	}
	if !loaded.Equal(original) {
		t.Errorf("file round trip changed the grid:\n%sexpected:\n%s", loaded, original)
	}
}

func TestReadTextMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"one header integer", "3\n"},
		{"non-numeric header", "a b\n # \n"},
		{"negative width", "-1 3\n"},
		{"bad cell character", "2 1\n#x\n"},
		{"short row", "3 2\n##\n###\n"},
		{"long row", "2 1\n###\n"},
		{"missing rows", "3 3\n###\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var parseErr ParseError
			_, err := ReadText(strings.NewReader(tc.input))
			if !errors.As(err, &parseErr) {
				t.Errorf("ReadText(%q) error = %v, expected ParseError", tc.input, err)
			}
		})
	}
}

func TestReadTextEmptyGrid(t *testing.T) {
	g, err := ReadText(strings.NewReader("0 0\n"))
	if err != nil {
		t.Fatalf("ReadText(\"0 0\") failed: %v", err)
	}
	if g.TotalCells() != 0 {
		t.Errorf("TotalCells() = %d, expected 0", g.TotalCells())
	}
}

func TestLoadTextMissingFile(t *testing.T) {
	if _, err := LoadText(filepath.Join(t.TempDir(), "absent.gol")); err == nil {
		t.Error("LoadText() on a missing file succeeded, expected an error")
	}
}
