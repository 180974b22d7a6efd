package zoo

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vovakirdan/tui-life/internal/life"
)

// File extensions recognised by Load and Save.
const (
	TextExt   = ".gol"
	BinaryExt = ".bgol"
)

// Load reads a grid file, picking the codec from the file extension.
func Load(path string) (*life.Grid, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case TextExt:
		return LoadText(path)
	case BinaryExt:
		return LoadBinary(path)
	default:
		return nil, fmt.Errorf("zoo: unrecognised extension on %s, want %s or %s", path, TextExt, BinaryExt)
	}
}

// Save writes a grid file, picking the codec from the file extension.
func Save(path string, g *life.Grid) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case TextExt:
		return SaveText(path, g)
	case BinaryExt:
		return SaveBinary(path, g)
	default:
		return fmt.Errorf("zoo: unrecognised extension on %s, want %s or %s", path, TextExt, BinaryExt)
	}
}
