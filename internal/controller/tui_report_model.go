package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	m "sweep.dev/pkg/sweep/internal/model"
)

type reportKeyMap struct {
	Quit key.Binding
}

func (k reportKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit}
}

func (k reportKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Quit}}
}

// reportModel displays the output of a non-interactive run: a final board,
// simulation progress and summary, or a saved layout.
type reportModel struct {
	keys        reportKeyMap
	help        help.Model
	progressBar progress.Model
	board       *boardMsg
	done        int
	total       int
	won         int
	lost        int
	summary     *m.SimulationSummary
	layout      *layoutMsg
	width       int
	quitting    bool
}

func newReportModel() reportModel {
	return reportModel{
		keys: reportKeyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help: help.New(),
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
	}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.help.Width = msg.Width

	case tea.KeyMsg:
		if key.Matches(msg, rm.keys.Quit) {
			rm.quitting = true
			return rm, tea.Quit
		}

	case boardMsg:
		rm.board = &msg

	case gameResultMsg:
		rm.done = msg.done
		rm.total = msg.total

		switch msg.result.Outcome {
		case m.Won:
			rm.won++
		case m.Lost:
			rm.lost++
		case m.Playing:
		}

	case summaryMsg:
		rm.summary = &msg.summary
		rm.done = msg.summary.Games
		rm.total = msg.summary.Games

	case layoutMsg:
		rm.layout = &msg
	}

	return rm, nil
}

func (rm reportModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Minesweeper"))
	b.WriteString("\n")

	if rm.board != nil {
		b.WriteString(boxStyle.Render(strings.TrimRight(rm.board.grid, "\n")))
		b.WriteString("\n")
		b.WriteString(rm.board.status)
		b.WriteString("\n")
	}

	if rm.total > 0 {
		b.WriteString(rm.viewProgress())
	}

	if rm.summary != nil {
		b.WriteString(rm.viewSummary())
	}

	if rm.layout != nil {
		fmt.Fprintf(&b, "Saved %dx%d layout with %d mines to %s\n", rm.layout.rows, rm.layout.cols, rm.layout.mines, rm.layout.path)
		b.WriteString(boxStyle.Render(strings.TrimRight(rm.layout.grid, "\n")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(rm.help.View(rm.keys))
	b.WriteString("\n")

	return b.String()
}

func (rm reportModel) viewProgress() string {
	percent := float64(rm.done) / float64(rm.total)

	return fmt.Sprintf("%s %d/%d  %s %s\n",
		rm.progressBar.ViewAs(percent), rm.done, rm.total,
		wonStyle.Render(fmt.Sprintf("won %d", rm.won)),
		lostStyle.Render(fmt.Sprintf("lost %d", rm.lost)),
	)
}

func (rm reportModel) viewSummary() string {
	s := rm.summary

	lines := []string{
		fmt.Sprintf("Games     %d", s.Games),
		wonStyle.Render(fmt.Sprintf("Won       %d", s.Won)),
		lostStyle.Render(fmt.Sprintf("Lost      %d", s.Lost)),
		fmt.Sprintf("Stalled   %d", s.Stalled),
		fmt.Sprintf("Win rate  %.2f%%", s.WinRate()*100),
		fmt.Sprintf("Moves     %.1f avg", s.AvgMoves),
		fmt.Sprintf("Guesses   %.1f avg", s.AvgGuesses),
	}

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}
