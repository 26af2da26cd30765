package domain

import (
	m "sweep.dev/pkg/sweep/internal/model"
)

// VisibleField is the part of a game the player can see: the status of every
// square of an underlying MineField.
//
// The MineField is shared, not copied: VisibleField reads it and never
// changes it, while callers reaching it through MineField() may. Every
// (row, col) argument must satisfy MineField().InRange(row, col).
type VisibleField struct {
	field  *MineField
	status [][]m.Status
}

// NewVisibleField creates a visible field over field with every square covered.
func NewVisibleField(field *MineField) *VisibleField {
	status := make([][]m.Status, field.Rows())
	for r := range status {
		status[r] = make([]m.Status, field.Cols())
	}

	v := &VisibleField{field: field, status: status}
	v.ResetGameDisplay()

	return v
}

// ResetGameDisplay covers every square again. The MineField is untouched.
func (v *VisibleField) ResetGameDisplay() {
	for r := range v.status {
		for c := range v.status[r] {
			v.status[r][c] = m.StatusCovered
		}
	}
}

// MineField returns the field this VisibleField covers.
func (v *VisibleField) MineField() *MineField {
	return v.field
}

// Status returns the visible status of (row, col).
func (v *VisibleField) Status(row, col int) m.Status {
	return v.status[row][col]
}

// NumMinesLeft returns the declared mine count minus the number of mine
// guesses. It is negative when the player guessed more squares than there
// are mines, and says nothing about whether the guesses are right.
func (v *VisibleField) NumMinesLeft() int {
	guesses := 0

	for r := range v.status {
		for c := range v.status[r] {
			if v.status[r][c] == m.StatusMineGuess {
				guesses++
			}
		}
	}

	return v.field.MineCount() - guesses
}

// CycleGuess moves a covered square through Covered, MineGuess and Question
// and back to Covered. It has no effect on an uncovered square.
func (v *VisibleField) CycleGuess(row, col int) {
	switch v.status[row][col].Kind {
	case m.Covered:
		v.status[row][col] = m.StatusMineGuess
	case m.MineGuess:
		v.status[row][col] = m.StatusQuestion
	case m.Question:
		v.status[row][col] = m.StatusCovered
	case m.Revealed, m.Mine, m.IncorrectGuess, m.Exploded:
	}
}

// Uncover opens (row, col) and returns false iff it holds a mine, in which
// case the square becomes Exploded.
//
// Otherwise the square and, when it has no adjacent mines, the whole region
// of mine-free squares around it are uncovered, up to and including the
// mine-adjacent squares on its boundary. Only Covered squares are opened or
// searched through: MineGuess and Question squares stop the fill. When the
// last non-mine square is opened the remaining covered mines are marked as
// MineGuess.
func (v *VisibleField) Uncover(row, col int) bool {
	if v.field.HasMine(row, col) {
		v.status[row][col] = m.StatusExploded
		return false
	}

	v.floodFill(m.Pos{Row: row, Col: col})
	v.markMinesIfWon()

	return true
}

// IsGameOver reports whether a mine exploded or every non-mine square has
// been uncovered.
func (v *VisibleField) IsGameOver() bool {
	covered := 0

	for r := range v.status {
		for c := range v.status[r] {
			switch {
			case v.status[r][c] == m.StatusExploded:
				return true
			case v.status[r][c].IsCovered():
				covered++
			}
		}
	}

	return covered == v.field.MineCount()
}

// IsUncovered reports whether (row, col) is in one of the uncovered states.
func (v *VisibleField) IsUncovered(row, col int) bool {
	return v.status[row][col].IsUncovered()
}

// floodFill reveals start and the zero-count region reachable from it. The
// status grid doubles as the visited set: a square leaves Covered the first
// time it is popped, so each square is processed at most once.
func (v *VisibleField) floodFill(start m.Pos) {
	stack := []m.Pos{start}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !v.field.InRange(p.Row, p.Col) || v.status[p.Row][p.Col] != m.StatusCovered {
			continue
		}

		adjacent := v.field.NumAdjacentMines(p.Row, p.Col)
		v.status[p.Row][p.Col] = m.RevealedStatus(adjacent)

		if adjacent == 0 {
			stack = append(stack, p.Neighbors()...)
		}
	}
}

func (v *VisibleField) markMinesIfWon() {
	for r := range v.status {
		for c := range v.status[r] {
			if !v.field.HasMine(r, c) && v.status[r][c].IsCovered() {
				return
			}
		}
	}

	for r := range v.status {
		for c := range v.status[r] {
			if v.field.HasMine(r, c) && v.status[r][c] == m.StatusCovered {
				v.status[r][c] = m.StatusMineGuess
			}
		}
	}
}
