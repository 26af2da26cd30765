package domain

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	m "sweep.dev/pkg/sweep/internal/model"
)

var (
	// ErrGameOver is returned for moves made after the game ended.
	ErrGameOver = errors.New("game is over")
	// ErrOutOfRange is returned for moves outside the field.
	ErrOutOfRange = errors.New("position out of range")
)

// Game drives a VisibleField on behalf of a player. It owns the rules the
// model leaves to its caller: mines are placed at the first uncover so that
// square is always safe, and no move is accepted once the game has ended.
type Game struct {
	id        string
	field     *MineField
	visible   *VisibleField
	random    bool
	populated bool
	moves     int
	solver    *Solver
}

// GameOption configures a Game.
type GameOption func(*gameConfig)

type gameConfig struct {
	rng Rand
}

// WithGameRand sets the random source for mine placement and solver guesses.
func WithGameRand(r Rand) GameOption {
	return func(c *gameConfig) {
		c.rng = r
	}
}

// NewGame creates a game over a field whose mines are already placed.
func NewGame(field *MineField, opts ...GameOption) *Game {
	return newGame(field, false, opts)
}

// NewRandomGame creates a rows x cols game with mines mines, placed when the
// first square is uncovered.
// PRE: rows > 0, cols > 0 and 0 <= mines < rows*cols/3.
func NewRandomGame(rows, cols, mines int, opts ...GameOption) *Game {
	cfg := buildGameConfig(opts)
	field := NewMineField(rows, cols, mines, WithRand(cfg.rng))

	return newGame(field, true, opts)
}

func buildGameConfig(opts []GameOption) gameConfig {
	cfg := gameConfig{rng: globalRand{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func newGame(field *MineField, random bool, opts []GameOption) *Game {
	cfg := buildGameConfig(opts)
	visible := NewVisibleField(field)

	g := &Game{
		id:        uuid.NewString(),
		field:     field,
		visible:   visible,
		random:    random,
		populated: !random,
		solver:    NewSolver(visible, cfg.rng),
	}

	slog.Debug("created game", "game", g.id, "rows", field.Rows(), "cols", field.Cols(), "mines", field.MineCount(), "random", random)

	return g
}

// ID returns the unique identifier of the game.
func (g *Game) ID() string {
	return g.id
}

// Rows returns the number of rows of the field.
func (g *Game) Rows() int {
	return g.field.Rows()
}

// Cols returns the number of columns of the field.
func (g *Game) Cols() int {
	return g.field.Cols()
}

// Status returns the visible status of p.
func (g *Game) Status(p m.Pos) m.Status {
	return g.visible.Status(p.Row, p.Col)
}

// HasMine reports whether p holds a mine. Before the first uncover of a
// random game no square does.
func (g *Game) HasMine(p m.Pos) bool {
	return g.field.HasMine(p.Row, p.Col)
}

// MinesLeft returns the number of mines not yet guessed.
func (g *Game) MinesLeft() int {
	return g.visible.NumMinesLeft()
}

// Moves returns the number of accepted moves.
func (g *Game) Moves() int {
	return g.moves
}

// Visible returns the visible field the game drives.
func (g *Game) Visible() *VisibleField {
	return g.visible
}

// Outcome reports whether the game is still running, won or lost.
func (g *Game) Outcome() m.Outcome {
	if !g.visible.IsGameOver() {
		return m.Playing
	}

	for r := range g.field.Rows() {
		for c := range g.field.Cols() {
			if g.visible.Status(r, c) == m.StatusExploded {
				return m.Lost
			}
		}
	}

	return m.Won
}

// Uncover opens p. The first uncover of a random game places the mines.
func (g *Game) Uncover(p m.Pos) error {
	if err := g.checkMove(p); err != nil {
		return err
	}

	if !g.populated {
		g.field.Populate(p.Row, p.Col)
		g.populated = true
	}

	g.moves++
	if !g.visible.Uncover(p.Row, p.Col) {
		slog.Info("mine exploded", "game", g.id, "pos", p.String(), "moves", g.moves)
		return nil
	}

	if g.visible.IsGameOver() {
		slog.Info("game won", "game", g.id, "moves", g.moves)
	}

	return nil
}

// CycleGuess cycles the guess marker of p.
func (g *Game) CycleGuess(p m.Pos) error {
	if err := g.checkMove(p); err != nil {
		return err
	}

	g.moves++
	g.visible.CycleGuess(p.Row, p.Col)

	return nil
}

// Apply performs mv.
func (g *Game) Apply(mv m.Move) error {
	switch mv.Kind {
	case m.MoveReveal:
		return g.Uncover(mv.Pos)
	case m.MoveFlag:
		return g.CycleGuess(mv.Pos)
	}

	return fmt.Errorf("%w: unknown kind %d", m.ErrInvalidMove, mv.Kind)
}

// Hint returns the move the solver would play next.
func (g *Game) Hint() (m.Move, bool) {
	if g.Outcome() != m.Playing {
		return m.Move{}, false
	}

	mv, _, ok := g.solver.Next()

	return mv, ok
}

// Reset starts the game over. A random game also removes its mines; they are
// placed again at the next first uncover.
func (g *Game) Reset() {
	if g.random {
		g.field.ResetEmpty()
		g.populated = false
	}

	g.visible.ResetGameDisplay()
	g.moves = 0
	g.id = uuid.NewString()

	slog.Debug("reset game", "game", g.id, "random", g.random)
}

func (g *Game) checkMove(p m.Pos) error {
	if !g.field.InRange(p.Row, p.Col) {
		return fmt.Errorf("%w: %s in %dx%d field", ErrOutOfRange, p, g.field.Rows(), g.field.Cols())
	}

	if g.Outcome() != m.Playing {
		return ErrGameOver
	}

	return nil
}
