package controller

import (
	"fmt"
	"strconv"
	"strings"

	m "sweep.dev/pkg/sweep/internal/model"
)

// statusGlyph returns the single character drawn for a square.
func statusGlyph(status m.Status) string {
	switch status.Kind {
	case m.Covered:
		return "#"
	case m.MineGuess:
		return "F"
	case m.Question:
		return "?"
	case m.Revealed:
		if status.Adjacent == 0 {
			return "."
		}

		return strconv.Itoa(status.Adjacent)
	case m.Mine:
		return "*"
	case m.IncorrectGuess:
		return "X"
	case m.Exploded:
		return "@"
	}

	return " "
}

// renderBoard draws the board as a plain text grid with row and column numbers.
func renderBoard(board BoardView) string {
	var b strings.Builder

	width := len(strconv.Itoa(max(board.Rows(), board.Cols()) - 1))
	cell := "%" + strconv.Itoa(width) + "s"

	b.WriteString(strings.Repeat(" ", width+1))

	for c := range board.Cols() {
		fmt.Fprintf(&b, " "+cell, strconv.Itoa(c))
	}

	b.WriteString("\n")

	for r := range board.Rows() {
		fmt.Fprintf(&b, cell+" ", strconv.Itoa(r))

		for c := range board.Cols() {
			fmt.Fprintf(&b, " "+cell, statusGlyph(DisplayStatus(board, m.Pos{Row: r, Col: c})))
		}

		b.WriteString("\n")
	}

	return b.String()
}

// renderStatusLine summarises the game below the grid.
func renderStatusLine(board BoardView) string {
	line := fmt.Sprintf("Mines left: %d  Moves: %d", board.MinesLeft(), board.Moves())

	switch board.Outcome() {
	case m.Won:
		return line + "  You won!"
	case m.Lost:
		return line + "  Boom! You lost."
	case m.Playing:
	}

	return line
}

// renderLayout draws a mine layout with '*' for mines and '.' for empty squares.
func renderLayout(mines [][]bool) string {
	var b strings.Builder

	for _, row := range mines {
		for _, mine := range row {
			if mine {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}

		b.WriteByte('\n')
	}

	return b.String()
}

func countLayoutMines(mines [][]bool) int {
	count := 0

	for _, row := range mines {
		for _, mine := range row {
			if mine {
				count++
			}
		}
	}

	return count
}
