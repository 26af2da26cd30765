package domain

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "sweep.dev/pkg/sweep/internal/adapter/mocks"
	"sweep.dev/pkg/sweep/internal/controller"
	controllermocks "sweep.dev/pkg/sweep/internal/controller/mocks"
	m "sweep.dev/pkg/sweep/internal/model"
)

func expectReport(ui *controllermocks.MockUI) {
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()
}

func TestValidateBoard(t *testing.T) {
	tests := []struct {
		name              string
		rows, cols, mines int
		wantErr           bool
	}{
		{"classic beginner", 9, 9, 10, false},
		{"no mines", 1, 1, 0, false},
		{"largest allowed ratio", 4, 4, 5, false},
		{"ratio reached", 3, 3, 3, true},
		{"no rows", 0, 5, 0, true},
		{"no cols", 5, 0, 0, true},
		{"negative mines", 5, 5, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBoard(tt.rows, tt.cols, tt.mines)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBoard)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestWorkflow_PlayRandomBoard(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockLayoutStore(t)

	ui.On("Start", mock.Anything, mock.Anything).Return(nil)
	ui.On("Play", mock.Anything, mock.MatchedBy(func(board controller.Board) bool {
		return board.Rows() == 8 && board.Cols() == 10 && board.MinesLeft() == 12 && board.Outcome() == m.Playing
	})).Return(nil)
	ui.On("Close", mock.Anything).Return()

	err := NewWorkflow(store, ui).Play(context.Background(), PlayArgs{
		BoardArgs: BoardArgs{Rows: 8, Cols: 10, Mines: 12, Seed: 3},
	})

	require.NoError(t, err)
}

func TestWorkflow_PlayLayout(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockLayoutStore(t)

	store.EXPECT().Load(m.Path("board.yaml")).Return(layout("*..", "..*"), nil)
	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
	ui.EXPECT().Play(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, board controller.Board) error {
			assert.True(t, board.HasMine(m.Pos{Row: 0, Col: 0}))
			assert.True(t, board.HasMine(m.Pos{Row: 1, Col: 2}))
			assert.Equal(t, 2, board.MinesLeft())

			return board.Uncover(m.Pos{Row: 0, Col: 0})
		})
	ui.EXPECT().Close(mock.Anything).Return()

	err := NewWorkflow(store, ui).Play(context.Background(), PlayArgs{
		BoardArgs: BoardArgs{Layout: "board.yaml"},
	})

	require.NoError(t, err)
}

func TestWorkflow_PlayErrors(t *testing.T) {
	t.Run("invalid board", func(t *testing.T) {
		ui := controllermocks.NewMockUI(t)

		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), ui).Play(context.Background(), PlayArgs{
			BoardArgs: BoardArgs{Rows: 3, Cols: 3, Mines: 3},
		})

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("layout cannot be loaded", func(t *testing.T) {
		store := adaptermocks.NewMockLayoutStore(t)
		store.EXPECT().Load(m.Path("missing.yaml")).Return(nil, os.ErrNotExist)

		err := NewWorkflow(store, controllermocks.NewMockUI(t)).Play(context.Background(), PlayArgs{
			BoardArgs: BoardArgs{Layout: "missing.yaml"},
		})

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("ui fails", func(t *testing.T) {
		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
		ui.EXPECT().Play(mock.Anything, mock.Anything).Return(assert.AnError)
		ui.EXPECT().Close(mock.Anything).Return()

		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), ui).Play(context.Background(), PlayArgs{
			BoardArgs: BoardArgs{Rows: 3, Cols: 3, Mines: 1},
		})

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestWorkflow_ScriptPlaysToTheEnd(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockLayoutStore(t)

	store.EXPECT().Load(m.Path("board.yaml")).Return(layout("*.", ".."), nil)
	expectReport(ui)
	ui.EXPECT().DisplayBoard(mock.Anything, mock.MatchedBy(func(board controller.BoardView) bool {
		return board.Outcome() == m.Won &&
			board.Moves() == 4 &&
			board.Status(m.Pos{Row: 0, Col: 0}) == m.StatusMineGuess
	})).Return(nil)

	err := NewWorkflow(store, ui).Script(context.Background(), ScriptArgs{
		BoardArgs: BoardArgs{Layout: "board.yaml"},
		Moves:     []string{"r:1,1", "f:0,0", "r:0,1", "reveal:1,0", "r:0,0"},
	})

	require.NoError(t, err)
}

func TestWorkflow_ScriptErrors(t *testing.T) {
	tests := []struct {
		name    string
		moves   []string
		wantErr error
	}{
		{"malformed move", []string{"r:1,1", "x"}, m.ErrInvalidMove},
		{"out of range", []string{"r:1,1", "f:4,0"}, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := adaptermocks.NewMockLayoutStore(t)
			store.On("Load", mock.Anything).Return(layout("*.", ".."), nil).Maybe()

			err := NewWorkflow(store, controllermocks.NewMockUI(t)).Script(context.Background(), ScriptArgs{
				BoardArgs: BoardArgs{Layout: "board.yaml"},
				Moves:     tt.moves,
			})

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func simulate(t *testing.T, args SimulateArgs) m.SimulationSummary {
	t.Helper()

	ui := controllermocks.NewMockUI(t)

	var summary m.SimulationSummary

	expectReport(ui)
	ui.EXPECT().DisplayGameResult(mock.Anything, mock.Anything, mock.Anything, args.Games).Return().Times(args.Games)
	ui.EXPECT().DisplaySimulation(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s m.SimulationSummary) { summary = s }).
		Return(nil)

	require.NoError(t, NewWorkflow(adaptermocks.NewMockLayoutStore(t), ui).Simulate(context.Background(), args))

	return summary
}

func TestWorkflow_Simulate(t *testing.T) {
	args := SimulateArgs{
		BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10, Seed: 42},
		Games:     20,
		Parallel:  4,
	}

	summary := simulate(t, args)

	assert.Equal(t, 20, summary.Games)
	assert.Equal(t, 20, summary.Won+summary.Lost+summary.Stalled)
	assert.Equal(t, 0, summary.Stalled)
	assert.Positive(t, summary.AvgMoves)
	assert.GreaterOrEqual(t, summary.AvgGuesses, 1.0, "every game opens with a guess")

	again := simulate(t, args)
	assert.Equal(t, summary, again, "same seed gives the same games")
}

func TestWorkflow_SimulateMoveLimit(t *testing.T) {
	summary := simulate(t, SimulateArgs{
		BoardArgs: BoardArgs{Rows: 10, Cols: 10, Mines: 30, Seed: 7},
		Games:     5,
		Parallel:  2,
		MaxMoves:  1,
	})

	assert.Equal(t, 5, summary.Stalled)
	assert.InDelta(t, 1.0, summary.AvgMoves, 0.0001)
}

func TestWorkflow_SimulateKeepsResults(t *testing.T) {
	dir := t.TempDir()

	simulate(t, SimulateArgs{
		BoardArgs:  BoardArgs{Rows: 5, Cols: 5, Mines: 3, Seed: 1},
		Games:      3,
		ResultsDir: dir,
	})

	files, err := filepath.Glob(filepath.Join(dir, "*.gob"))
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestWorkflow_SimulateLayout(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockLayoutStore(t)

	store.EXPECT().Load(m.Path("board.yaml")).Return(layout("....", "....", "...*"), nil).Once()
	expectReport(ui)
	ui.EXPECT().DisplayGameResult(mock.Anything, mock.Anything, mock.Anything, 3).Return().Times(3)
	ui.EXPECT().DisplaySimulation(mock.Anything, mock.MatchedBy(func(s m.SimulationSummary) bool {
		return s.Games == 3 && s.Won+s.Lost == 3
	})).Return(nil)

	err := NewWorkflow(store, ui).Simulate(context.Background(), SimulateArgs{
		BoardArgs: BoardArgs{Layout: "board.yaml", Seed: 5},
		Games:     3,
	})

	require.NoError(t, err)
}

func TestWorkflow_SimulateErrors(t *testing.T) {
	t.Run("no games", func(t *testing.T) {
		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), controllermocks.NewMockUI(t)).
			Simulate(context.Background(), SimulateArgs{BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10}})

		require.ErrorIs(t, err, ErrInvalidSimulation)
	})

	t.Run("invalid board", func(t *testing.T) {
		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), controllermocks.NewMockUI(t)).
			Simulate(context.Background(), SimulateArgs{BoardArgs: BoardArgs{Rows: 2, Cols: 2, Mines: 2}, Games: 1})

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ui := controllermocks.NewMockUI(t)
		ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil)
		ui.EXPECT().Close(mock.Anything).Return()

		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), ui).
			Simulate(ctx, SimulateArgs{BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10}, Games: 3})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWorkflow_Layout(t *testing.T) {
	ui := controllermocks.NewMockUI(t)
	store := adaptermocks.NewMockLayoutStore(t)
	avoid := m.Pos{Row: 4, Col: 4}

	var saved [][]bool

	store.EXPECT().Save(m.Path("out.yaml"), mock.Anything).
		RunAndReturn(func(_ m.Path, mines [][]bool) error {
			saved = mines
			return nil
		})
	expectReport(ui)
	ui.EXPECT().DisplayLayout(mock.Anything, m.Path("out.yaml"), mock.Anything).Return(nil)

	err := NewWorkflow(store, ui).Layout(context.Background(), LayoutArgs{
		BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10, Seed: 11},
		Output:    "out.yaml",
		Avoid:     avoid,
	})

	require.NoError(t, err)
	require.Len(t, saved, 9)
	assert.False(t, saved[avoid.Row][avoid.Col])
	assert.Equal(t, 10, countMines(NewMineFieldFromData(saved)))
}

func TestWorkflow_LayoutErrors(t *testing.T) {
	t.Run("avoid out of range", func(t *testing.T) {
		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), controllermocks.NewMockUI(t)).
			Layout(context.Background(), LayoutArgs{
				BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10},
				Output:    "out.yaml",
				Avoid:     m.Pos{Row: 9, Col: 0},
			})

		require.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("invalid board", func(t *testing.T) {
		err := NewWorkflow(adaptermocks.NewMockLayoutStore(t), controllermocks.NewMockUI(t)).
			Layout(context.Background(), LayoutArgs{BoardArgs: BoardArgs{Rows: 3, Cols: 3, Mines: 5}})

		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("save fails", func(t *testing.T) {
		store := adaptermocks.NewMockLayoutStore(t)
		store.EXPECT().Save(mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewWorkflow(store, controllermocks.NewMockUI(t)).
			Layout(context.Background(), LayoutArgs{BoardArgs: BoardArgs{Rows: 9, Cols: 9, Mines: 10}, Output: "x.yaml"})

		require.ErrorIs(t, err, assert.AnError)
	})
}
