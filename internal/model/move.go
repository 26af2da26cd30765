package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidMove is returned when a move cannot be parsed.
var ErrInvalidMove = errors.New("invalid move")

// Pos is a square location. Rows and columns start at 0.
type Pos struct {
	Row int
	Col int
}

// Neighbors returns the eight positions around p. Positions outside the
// grid are included; callers clip them against the grid.
func (p Pos) Neighbors() []Pos {
	neighbors := make([]Pos, 0, MaxAdjacent)

	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}

			neighbors = append(neighbors, Pos{Row: p.Row + dr, Col: p.Col + dc})
		}
	}

	return neighbors
}

func (p Pos) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// MoveKind is the player action applied to a square.
type MoveKind int

const (
	// MoveReveal uncovers a square.
	MoveReveal MoveKind = iota
	// MoveFlag cycles the guess marker of a covered square.
	MoveFlag
)

func (k MoveKind) String() string {
	switch k {
	case MoveReveal:
		return "reveal"
	case MoveFlag:
		return "flag"
	}

	return "unknown"
}

// Move is a single player action.
type Move struct {
	Kind MoveKind
	Pos  Pos
}

func (mv Move) String() string {
	return fmt.Sprintf("%s:%s", mv.Kind, mv.Pos)
}

// ParseMove parses the script form of a move: "r:ROW,COL" or "f:ROW,COL".
// The long names "reveal" and "flag" are accepted as well.
func ParseMove(text string) (Move, error) {
	kindText, posText, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return Move{}, fmt.Errorf("%w %q: expected KIND:ROW,COL", ErrInvalidMove, text)
	}

	var kind MoveKind

	switch strings.ToLower(kindText) {
	case "r", "reveal":
		kind = MoveReveal
	case "f", "flag":
		kind = MoveFlag
	default:
		return Move{}, fmt.Errorf("%w %q: unknown kind %q", ErrInvalidMove, text, kindText)
	}

	pos, err := ParsePos(posText)
	if err != nil {
		return Move{}, fmt.Errorf("%w %q: %w", ErrInvalidMove, text, err)
	}

	return Move{Kind: kind, Pos: pos}, nil
}

// ParsePos parses "ROW,COL".
func ParsePos(text string) (Pos, error) {
	rowText, colText, ok := strings.Cut(strings.TrimSpace(text), ",")
	if !ok {
		return Pos{}, fmt.Errorf("position %q: expected ROW,COL", text)
	}

	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad row: %w", text, err)
	}

	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return Pos{}, fmt.Errorf("position %q: bad column: %w", text, err)
	}

	return Pos{Row: row, Col: col}, nil
}
