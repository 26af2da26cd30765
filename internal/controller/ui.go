// Package controller provides the interactive and plain-text front ends of the game.
package controller

import (
	"context"

	m "sweep.dev/pkg/sweep/internal/model"
)

// BoardView is the read side of a game as a front end sees it.
type BoardView interface {
	Rows() int
	Cols() int
	Status(p m.Pos) m.Status
	HasMine(p m.Pos) bool
	MinesLeft() int
	Moves() int
	Outcome() m.Outcome
}

// Board is a game a player can act on.
type Board interface {
	BoardView
	ID() string
	Uncover(p m.Pos) error
	CycleGuess(p m.Pos) error
	Hint() (m.Move, bool)
	Reset()
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModePlay StartMode = iota
	ModeReport
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithPlayMode sets the UI to interactive play.
func WithPlayMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModePlay
	}
}

// WithReportMode sets the UI to display results of a non-interactive run.
func WithReportMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeReport
	}
}

func buildStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModePlay}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for playing and displaying games.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	Play(ctx context.Context, board Board) error
	DisplayBoard(ctx context.Context, board BoardView) error
	DisplayGameResult(ctx context.Context, result m.GameResult, done int, total int)
	DisplaySimulation(ctx context.Context, summary m.SimulationSummary) error
	DisplayLayout(ctx context.Context, path m.Path, mines [][]bool) error
}

// DisplayStatus returns the status to draw at p. Once a game is lost the
// covered mines are shown as Mine and wrong guesses as IncorrectGuess.
func DisplayStatus(board BoardView, p m.Pos) m.Status {
	status := board.Status(p)
	if board.Outcome() != m.Lost {
		return status
	}

	switch {
	case status.Kind == m.Covered && board.HasMine(p):
		return m.StatusMine
	case status.Kind == m.Question && board.HasMine(p):
		return m.StatusMine
	case status.Kind == m.MineGuess && !board.HasMine(p):
		return m.StatusIncorrectGuess
	}

	return status
}
