package controller

import (
	"github.com/charmbracelet/lipgloss"
	m "sweep.dev/pkg/sweep/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			MarginBottom(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	lostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	// Classic minesweeper colors for 1 through 8.
	adjacentColors = [m.MaxAdjacent + 1]lipgloss.Color{
		"7", "12", "2", "9", "5", "1", "6", "15", "8",
	}
)

// statusStyle returns the style of a square, without cursor highlighting.
func statusStyle(status m.Status) lipgloss.Style {
	style := lipgloss.NewStyle()

	switch status.Kind {
	case m.Covered:
		return style.Foreground(lipgloss.Color("8"))
	case m.MineGuess:
		return style.Foreground(lipgloss.Color("11")).Bold(true)
	case m.Question:
		return style.Foreground(lipgloss.Color("13"))
	case m.Revealed:
		if status.Adjacent < 0 || status.Adjacent > m.MaxAdjacent {
			return style
		}

		return style.Foreground(adjacentColors[status.Adjacent])
	case m.Mine:
		return style.Foreground(lipgloss.Color("1"))
	case m.IncorrectGuess:
		return style.Foreground(lipgloss.Color("5")).Strikethrough(true)
	case m.Exploded:
		return style.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")).Bold(true)
	}

	return style
}

func outcomeStyle(outcome m.Outcome) lipgloss.Style {
	switch outcome {
	case m.Won:
		return wonStyle
	case m.Lost:
		return lostStyle
	case m.Playing:
	}

	return lipgloss.NewStyle()
}
