package controller

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "sweep.dev/pkg/sweep/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
//
// In report mode a single program runs in the background from Start until
// the user quits or Close is called; Display calls are forwarded to it as
// messages. Play always runs its own program in the foreground.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI. In report mode it launches the report program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := buildStartConfig(options)
	if cfg.mode != ModeReport {
		return nil
	}

	return t.startWithModel(newReportModel())
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	t.program = tea.NewProgram(model, tea.WithOutput(t.output))
	t.done = make(chan struct{})
	t.started = true

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			slog.Error("TUI program failed", "error", err)
		}
	}()

	return nil
}

func (t *TUI) ensureStarted() {
	t.mu.Lock()
	started := t.started
	t.mu.Unlock()

	if started {
		return
	}

	if err := t.startWithModel(newReportModel()); err != nil {
		slog.Error("Failed to start TUI", "error", err)
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Close stops the report program, if any, and waits for it to exit.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.started = false
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user closes the report program or ctx is done.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

// Play runs an interactive game until the user quits.
func (t *TUI) Play(ctx context.Context, board Board) error {
	program := tea.NewProgram(
		newPlayModel(board),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	return nil
}

// DisplayBoard shows a snapshot of the board.
func (t *TUI) DisplayBoard(ctx context.Context, board BoardView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.ensureStarted()
	t.send(boardMsg{grid: renderBoard(board), status: renderStatusLine(board)})

	return nil
}

// DisplayGameResult advances the simulation progress bar.
func (t *TUI) DisplayGameResult(ctx context.Context, result m.GameResult, done int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.ensureStarted()
	t.send(gameResultMsg{result: result, done: done, total: total})
}

// DisplaySimulation shows the simulation summary.
func (t *TUI) DisplaySimulation(ctx context.Context, summary m.SimulationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.ensureStarted()
	t.send(summaryMsg{summary: summary})

	return nil
}

// DisplayLayout shows a saved layout.
func (t *TUI) DisplayLayout(ctx context.Context, path m.Path, mines [][]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.ensureStarted()
	t.send(layoutMsg{
		path:  path,
		grid:  renderLayout(mines),
		rows:  len(mines),
		cols:  len(mines[0]),
		mines: countLayoutMines(mines),
	})

	return nil
}
