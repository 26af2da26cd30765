// Package domain implements the minesweeper game and the workflows behind the CLI commands.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"sweep.dev/pkg/sweep/internal/adapter"
	"sweep.dev/pkg/sweep/internal/controller"
	m "sweep.dev/pkg/sweep/internal/model"
	"sweep.dev/pkg/sweep/pkg"
)

var (
	// ErrInvalidBoard is returned for board dimensions a random game cannot be built from.
	ErrInvalidBoard = errors.New("invalid board")
	// ErrInvalidSimulation is returned for simulation arguments that cannot be run.
	ErrInvalidSimulation = errors.New("invalid simulation")
)

// BoardArgs describes the board of a game: either a layout file or a random
// field of the given size.
type BoardArgs struct {
	Rows   int
	Cols   int
	Mines  int
	Seed   uint64 // 0 picks a random seed
	Layout m.Path // when set, Rows, Cols and Mines are ignored
}

// PlayArgs contains the arguments for an interactive game.
type PlayArgs struct {
	BoardArgs
}

// ScriptArgs contains the arguments for replaying a list of moves.
type ScriptArgs struct {
	BoardArgs
	Moves []string
}

// SimulateArgs contains the arguments for solver-driven games.
type SimulateArgs struct {
	BoardArgs
	Games      int
	Parallel   int
	MaxMoves   int    // per game; 0 means twice the number of squares
	ResultsDir string // when set, the per-game results file is kept there
}

// LayoutArgs contains the arguments for generating a layout file.
type LayoutArgs struct {
	BoardArgs
	Output m.Path
	Avoid  m.Pos
}

// Workflow runs the commands of the tool.
type Workflow interface {
	Play(ctx context.Context, args PlayArgs) error
	Script(ctx context.Context, args ScriptArgs) error
	Simulate(ctx context.Context, args SimulateArgs) error
	Layout(ctx context.Context, args LayoutArgs) error
}

type workflow struct {
	store adapter.LayoutStore
	ui    controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(store adapter.LayoutStore, ui controller.UI) Workflow {
	return &workflow{
		store: store,
		ui:    ui,
	}
}

// Play builds a game and hands it to the UI until the player quits.
func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	game, err := w.newGame(args.BoardArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(ctx, controller.WithPlayMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.ui.Close(ctx)

	slog.Info("Starting game", "game", game.ID(), "rows", game.Rows(), "cols", game.Cols())

	if err := w.ui.Play(ctx, game); err != nil {
		slog.Error("Game ended with error", "game", game.ID(), "error", err)
		return fmt.Errorf("play: %w", err)
	}

	slog.Info("Game finished", "game", game.ID(), "outcome", game.Outcome(), "moves", game.Moves())

	return nil
}

// Script applies moves in order and displays the resulting board. Moves
// after the end of the game are ignored.
func (w *workflow) Script(ctx context.Context, args ScriptArgs) error {
	moves := make([]m.Move, 0, len(args.Moves))

	for _, text := range args.Moves {
		mv, err := m.ParseMove(text)
		if err != nil {
			return err
		}

		moves = append(moves, mv)
	}

	game, err := w.newGame(args.BoardArgs)
	if err != nil {
		return err
	}

	for i, mv := range moves {
		if game.Outcome() != m.Playing {
			slog.Info("Ignoring moves after game over", "game", game.ID(), "ignored", len(moves)-i)
			break
		}

		if err := game.Apply(mv); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, mv, err)
		}
	}

	if err := w.ui.Start(ctx, controller.WithReportMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	if err := w.ui.DisplayBoard(ctx, game); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

// Simulate plays args.Games solver-driven games in parallel and displays
// their summary. Game i is seeded with Seed+i, so runs are reproducible.
func (w *workflow) Simulate(ctx context.Context, args SimulateArgs) error {
	if args.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidSimulation, args.Games)
	}

	layout, err := w.loadOrValidate(args.BoardArgs)
	if err != nil {
		return err
	}

	seed := args.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	results, err := pkg.NewFileSpill[m.GameResult](spillOptions(args.ResultsDir)...)
	if err != nil {
		return fmt.Errorf("create results file: %w", err)
	}

	defer func() {
		if err := results.Close(); err != nil {
			slog.Error("Failed to close results file", "path", results.Path(), "error", err)
		}
	}()

	slog.Info("Starting simulation", "games", args.Games, "parallel", args.Parallel, "seed", seed, "results", results.Path())

	if err := w.ui.Start(ctx, controller.WithReportMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	if err := w.runGames(ctx, args, layout, seed, results); err != nil {
		w.ui.Close(ctx)
		return err
	}

	summary, err := summarize(results)
	if err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("summarize: %w", err)
	}

	slog.Info("Simulation finished", "games", summary.Games, "won", summary.Won, "lost", summary.Lost, "stalled", summary.Stalled)

	if err := w.ui.DisplaySimulation(ctx, summary); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func spillOptions(dir string) []pkg.Option {
	if dir == "" {
		return nil
	}

	return []pkg.Option{pkg.WithDir(dir), pkg.WithKeep()}
}

func (w *workflow) runGames(
	ctx context.Context,
	args SimulateArgs,
	layout [][]bool,
	seed uint64,
	results pkg.FileSpill[m.GameResult],
) error {
	group, groupCtx := errgroup.WithContext(ctx)
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	var done atomic.Int64

	for i := range args.Games {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			result, err := solveGame(args, layout, seed+uint64(i))
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}

			if err := results.Append(result); err != nil {
				return fmt.Errorf("record game %d: %w", i, err)
			}

			w.ui.DisplayGameResult(groupCtx, result, int(done.Add(1)), args.Games)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("Simulation failed", "error", err)
		return err
	}

	return nil
}

// solveGame lets the solver play one game to the end or until the move
// limit is reached.
func solveGame(args SimulateArgs, layout [][]bool, seed uint64) (m.GameResult, error) {
	rng := NewSeededRand(seed)

	var game *Game
	if layout != nil {
		game = NewGame(NewMineFieldFromData(layout), WithGameRand(rng))
	} else {
		game = NewRandomGame(args.Rows, args.Cols, args.Mines, WithGameRand(rng))
	}

	maxMoves := args.MaxMoves
	if maxMoves <= 0 {
		maxMoves = 2 * game.Rows() * game.Cols()
	}

	guesses := 0

	for game.Outcome() == m.Playing && game.Moves() < maxMoves {
		mv, strategy, ok := game.solver.Next()
		if !ok {
			break
		}

		if strategy == StrategyRandom {
			guesses++
		}

		if err := game.Apply(mv); err != nil {
			return m.GameResult{}, err
		}
	}

	slog.Debug("Solved game", "game", game.ID(), "seed", seed, "outcome", game.Outcome(), "moves", game.Moves(), "guesses", guesses)

	return m.GameResult{
		ID:      game.ID(),
		Outcome: game.Outcome(),
		Moves:   game.Moves(),
		Guesses: guesses,
	}, nil
}

func summarize(results pkg.FileSpill[m.GameResult]) (m.SimulationSummary, error) {
	var (
		summary      m.SimulationSummary
		totalMoves   int
		totalGuesses int
	)

	err := results.Range(func(_ uint64, result m.GameResult) error {
		summary.Games++
		totalMoves += result.Moves
		totalGuesses += result.Guesses

		switch result.Outcome {
		case m.Won:
			summary.Won++
		case m.Lost:
			summary.Lost++
		case m.Playing:
			summary.Stalled++
		}

		return nil
	})
	if err != nil {
		return m.SimulationSummary{}, err
	}

	if summary.Games > 0 {
		summary.AvgMoves = float64(totalMoves) / float64(summary.Games)
		summary.AvgGuesses = float64(totalGuesses) / float64(summary.Games)
	}

	return summary, nil
}

// Layout places mines on a random field, never at args.Avoid, and saves it.
func (w *workflow) Layout(ctx context.Context, args LayoutArgs) error {
	if err := validateBoard(args.Rows, args.Cols, args.Mines); err != nil {
		return err
	}

	field := NewMineField(args.Rows, args.Cols, args.Mines, WithRand(newRand(args.Seed)))
	if !field.InRange(args.Avoid.Row, args.Avoid.Col) {
		return fmt.Errorf("avoid %s: %w", args.Avoid, ErrOutOfRange)
	}

	field.Populate(args.Avoid.Row, args.Avoid.Col)
	mines := field.Data()

	if err := w.store.Save(args.Output, mines); err != nil {
		return fmt.Errorf("save layout: %w", err)
	}

	slog.Info("Saved layout", "path", args.Output, "rows", args.Rows, "cols", args.Cols, "mines", args.Mines)

	if err := w.ui.Start(ctx, controller.WithReportMode()); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}

	if err := w.ui.DisplayLayout(ctx, args.Output, mines); err != nil {
		w.ui.Close(ctx)
		return fmt.Errorf("display: %w", err)
	}

	w.ui.Wait(ctx)
	w.ui.Close(ctx)

	return nil
}

func (w *workflow) newGame(args BoardArgs) (*Game, error) {
	layout, err := w.loadOrValidate(args)
	if err != nil {
		return nil, err
	}

	rng := newRand(args.Seed)

	if layout != nil {
		return NewGame(NewMineFieldFromData(layout), WithGameRand(rng)), nil
	}

	return NewRandomGame(args.Rows, args.Cols, args.Mines, WithGameRand(rng)), nil
}

// loadOrValidate returns the mines of args.Layout, or nil after checking
// the dimensions of a random board.
func (w *workflow) loadOrValidate(args BoardArgs) ([][]bool, error) {
	if args.Layout == "" {
		return nil, validateBoard(args.Rows, args.Cols, args.Mines)
	}

	layout, err := w.store.Load(args.Layout)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	return layout, nil
}

func validateBoard(rows, cols, mines int) error {
	switch {
	case rows <= 0 || cols <= 0:
		return fmt.Errorf("%w: %dx%d has no squares", ErrInvalidBoard, rows, cols)
	case mines < 0:
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidBoard, mines)
	case 3*mines >= rows*cols:
		return fmt.Errorf("%w: %d mines need more than %d squares", ErrInvalidBoard, mines, 3*mines)
	}

	return nil
}

func newRand(seed uint64) Rand {
	if seed == 0 {
		return globalRand{}
	}

	return NewSeededRand(seed)
}
