package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	m "sweep.dev/pkg/sweep/internal/model"
)

type playKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Reveal key.Binding
	Guess  key.Binding
	Hint   key.Binding
	New    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func newPlayKeyMap() playKeyMap {
	return playKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Reveal: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "uncover")),
		Guess:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag/?")),
		Hint:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hint")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k playKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Guess, k.Hint, k.New, k.Help, k.Quit}
}

func (k playKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Guess, k.Hint},
		{k.New, k.Help, k.Quit},
	}
}

// playModel is the Bubble Tea model of an interactive game.
type playModel struct {
	board    Board
	cursor   m.Pos
	keys     playKeyMap
	help     help.Model
	message  string
	width    int
	quitting bool
}

func newPlayModel(board Board) playModel {
	return playModel{
		board: board,
		keys:  newPlayKeyMap(),
		help:  help.New(),
	}
}

func (pm playModel) Init() tea.Cmd {
	return nil
}

func (pm playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.width = msg.Width
		pm.help.Width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

//nolint:cyclop // Key handling requires multiple cases for UI navigation
func (pm playModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pm.message = ""

	switch {
	case key.Matches(msg, pm.keys.Quit):
		pm.quitting = true
		return pm, tea.Quit

	case key.Matches(msg, pm.keys.Up):
		pm.moveCursor(-1, 0)

	case key.Matches(msg, pm.keys.Down):
		pm.moveCursor(1, 0)

	case key.Matches(msg, pm.keys.Left):
		pm.moveCursor(0, -1)

	case key.Matches(msg, pm.keys.Right):
		pm.moveCursor(0, 1)

	case key.Matches(msg, pm.keys.Reveal):
		pm.report(pm.board.Uncover(pm.cursor))

	case key.Matches(msg, pm.keys.Guess):
		pm.report(pm.board.CycleGuess(pm.cursor))

	case key.Matches(msg, pm.keys.Hint):
		if mv, ok := pm.board.Hint(); ok {
			pm.cursor = mv.Pos
			pm.message = "try: " + mv.String()
		} else {
			pm.message = "no move to suggest"
		}

	case key.Matches(msg, pm.keys.New):
		pm.board.Reset()
		pm.cursor = m.Pos{}

	case key.Matches(msg, pm.keys.Help):
		pm.help.ShowAll = !pm.help.ShowAll
	}

	return pm, nil
}

func (pm *playModel) moveCursor(dr, dc int) {
	pm.cursor.Row = min(max(pm.cursor.Row+dr, 0), pm.board.Rows()-1)
	pm.cursor.Col = min(max(pm.cursor.Col+dc, 0), pm.board.Cols()-1)
}

func (pm *playModel) report(err error) {
	if err != nil {
		pm.message = err.Error()
	}
}

func (pm playModel) View() string {
	if pm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Minesweeper"))
	b.WriteString("\n")
	b.WriteString(boxStyle.Render(pm.renderGrid()))
	b.WriteString("\n")

	outcome := pm.board.Outcome()
	b.WriteString(outcomeStyle(outcome).Render(renderStatusLine(pm.board)))
	b.WriteString("\n")

	if pm.message != "" {
		b.WriteString(messageStyle.Render(pm.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(pm.help.View(pm.keys))
	b.WriteString("\n")

	return b.String()
}

func (pm playModel) renderGrid() string {
	var b strings.Builder

	for r := range pm.board.Rows() {
		for c := range pm.board.Cols() {
			p := m.Pos{Row: r, Col: c}
			status := DisplayStatus(pm.board, p)
			glyph := fmt.Sprintf(" %s ", statusGlyph(status))

			if p == pm.cursor {
				b.WriteString(cursorStyle.Render(glyph))
			} else {
				b.WriteString(statusStyle(status).Render(glyph))
			}
		}

		if r < pm.board.Rows()-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
