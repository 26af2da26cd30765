// Package adapter provides file system adapters for the minesweeper tool.
package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "sweep.dev/pkg/sweep/internal/model"
)

const (
	layoutVersion = 1

	mineChar  = '*'
	emptyChar = '.'
)

// ErrInvalidLayout is returned when a layout file does not describe a
// non-empty rectangular grid of mines.
var ErrInvalidLayout = errors.New("invalid layout")

// LayoutStore reads and writes explicit mine layouts.
type LayoutStore interface {
	Load(path m.Path) ([][]bool, error)
	Save(path m.Path, mines [][]bool) error
}

// layoutFile is the YAML shape of a layout: one string per row, '*' for a
// mine and '.' for an empty square.
type layoutFile struct {
	Version int      `yaml:"version"`
	Mines   []string `yaml:"mines"`
}

// LocalLayoutStore implements LayoutStore on the local file system.
type LocalLayoutStore struct{}

// NewLocalLayoutStore creates a LocalLayoutStore.
func NewLocalLayoutStore() *LocalLayoutStore {
	return &LocalLayoutStore{}
}

// Load reads a layout file and validates its shape.
func (s *LocalLayoutStore) Load(path m.Path) ([][]bool, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read layout", "path", path, "error", err)
		return nil, fmt.Errorf("failed to read layout %s: %w", path, err)
	}

	var file layoutFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidLayout, path, err)
	}

	mines, err := parseRows(file.Mines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	slog.Debug("Loaded layout", "path", path, "rows", len(mines), "cols", len(mines[0]))

	return mines, nil
}

// Save writes mines to path, creating parent directories as needed.
func (s *LocalLayoutStore) Save(path m.Path, mines [][]bool) error {
	rows, err := formatRows(mines)
	if err != nil {
		return err
	}

	content, err := yaml.Marshal(layoutFile{Version: layoutVersion, Mines: rows})
	if err != nil {
		return fmt.Errorf("failed to encode layout: %w", err)
	}

	if dir := filepath.Dir(string(path)); dir != "" {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			slog.Error("Failed to create layout directory", "dir", dir, "error", err)
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		slog.Error("Failed to write layout", "path", path, "error", err)
		return fmt.Errorf("failed to write layout %s: %w", path, err)
	}

	slog.Debug("Saved layout", "path", path, "rows", len(rows))

	return nil
}

func parseRows(rows []string) ([][]bool, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	cols := len(strings.TrimSpace(rows[0]))
	if cols == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrInvalidLayout)
	}

	mines := make([][]bool, len(rows))

	for r, row := range rows {
		row = strings.TrimSpace(row)
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrInvalidLayout, r, len(row), cols)
		}

		mines[r] = make([]bool, cols)

		for c := range len(row) {
			switch row[c] {
			case mineChar:
				mines[r][c] = true
			case emptyChar:
			default:
				return nil, fmt.Errorf("%w: row %d column %d: unexpected %q", ErrInvalidLayout, r, c, row[c])
			}
		}
	}

	return mines, nil
}

func formatRows(mines [][]bool) ([]string, error) {
	if len(mines) == 0 || len(mines[0]) == 0 {
		return nil, fmt.Errorf("%w: no squares", ErrInvalidLayout)
	}

	rows := make([]string, len(mines))

	for r, line := range mines {
		if len(line) != len(mines[0]) {
			return nil, fmt.Errorf("%w: row %d has %d squares, want %d", ErrInvalidLayout, r, len(line), len(mines[0]))
		}

		var b strings.Builder
		for _, mine := range line {
			if mine {
				b.WriteByte(mineChar)
			} else {
				b.WriteByte(emptyChar)
			}
		}

		rows[r] = b.String()
	}

	return rows, nil
}
