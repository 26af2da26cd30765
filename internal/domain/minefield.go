package domain

import (
	"log/slog"
	"math/rand/v2"
)

// Rand is the source of uniform random integers used to place mines.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// NewSeededRand returns a deterministic Rand for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// MineFieldOption configures a MineField.
type MineFieldOption func(*MineField)

// WithRand sets the random source used by Populate.
func WithRand(r Rand) MineFieldOption {
	return func(f *MineField) {
		f.rng = r
	}
}

// MineField holds the locations of the mines of one game.
//
// A field built with NewMineField starts empty and only holds MineCount()
// mines once Populate has run; ResetEmpty returns it to that state. Callers
// must keep every (row, col) argument within InRange.
type MineField struct {
	mines     [][]bool
	rows      int
	cols      int
	mineCount int
	rng       Rand
}

// NewMineFieldFromData creates a field with the dimensions and mines of data.
// data must have at least one row and one column and be rectangular.
func NewMineFieldFromData(data [][]bool, opts ...MineFieldOption) *MineField {
	rows, cols := len(data), len(data[0])
	f := newMineField(rows, cols, 0, opts)

	for r := range rows {
		for c := range cols {
			f.mines[r][c] = data[r][c]
			if data[r][c] {
				f.mineCount++
			}
		}
	}

	return f
}

// NewMineField creates an empty field that will hold mineCount mines once
// Populate is called.
// PRE: rows > 0, cols > 0 and 0 <= mineCount < rows*cols/3.
func NewMineField(rows, cols, mineCount int, opts ...MineFieldOption) *MineField {
	return newMineField(rows, cols, mineCount, opts)
}

func newMineField(rows, cols, mineCount int, opts []MineFieldOption) *MineField {
	mines := make([][]bool, rows)
	for r := range mines {
		mines[r] = make([]bool, cols)
	}

	f := &MineField{
		mines:     mines,
		rows:      rows,
		cols:      cols,
		mineCount: mineCount,
		rng:       globalRand{},
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Populate removes all mines and places MineCount() mines at random distinct
// locations, never at (avoidRow, avoidCol).
// PRE: InRange(avoidRow, avoidCol) and MineCount() < Rows()*Cols()/3.
func (f *MineField) Populate(avoidRow, avoidCol int) {
	f.ResetEmpty()

	placed := 0
	for placed < f.mineCount {
		r := f.rng.IntN(f.rows)
		c := f.rng.IntN(f.cols)

		if (r == avoidRow && c == avoidCol) || f.mines[r][c] {
			continue
		}

		f.mines[r][c] = true
		placed++
	}

	slog.Debug("populated mine field", "rows", f.rows, "cols", f.cols, "mines", f.mineCount, "avoidRow", avoidRow, "avoidCol", avoidCol)
}

// ResetEmpty removes every mine. Rows, Cols and MineCount are unchanged.
func (f *MineField) ResetEmpty() {
	for r := range f.mines {
		clear(f.mines[r])
	}
}

// NumAdjacentMines returns the number of mines in the up to eight squares
// around (row, col), not counting (row, col) itself.
func (f *MineField) NumAdjacentMines(row, col int) int {
	count := 0

	for r := row - 1; r <= row+1; r++ {
		for c := col - 1; c <= col+1; c++ {
			if (r == row && c == col) || !f.InRange(r, c) {
				continue
			}

			if f.mines[r][c] {
				count++
			}
		}
	}

	return count
}

// InRange reports whether (row, col) is a location of the field.
func (f *MineField) InRange(row, col int) bool {
	return row >= 0 && row < f.rows && col >= 0 && col < f.cols
}

// HasMine reports whether (row, col) holds a mine.
func (f *MineField) HasMine(row, col int) bool {
	return f.mines[row][col]
}

// Rows returns the number of rows.
func (f *MineField) Rows() int {
	return f.rows
}

// Cols returns the number of columns.
func (f *MineField) Cols() int {
	return f.cols
}

// MineCount returns the declared number of mines. See the MineField doc for
// when it differs from the mines actually placed.
func (f *MineField) MineCount() int {
	return f.mineCount
}

// Data returns a copy of the mine grid.
func (f *MineField) Data() [][]bool {
	data := make([][]bool, f.rows)
	for r := range data {
		data[r] = append([]bool(nil), f.mines[r]...)
	}

	return data
}
