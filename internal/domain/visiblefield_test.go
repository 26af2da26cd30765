package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "sweep.dev/pkg/sweep/internal/model"
)

func requireAllStatus(t *testing.T, v *VisibleField, want m.Status) {
	t.Helper()

	for r := range v.MineField().Rows() {
		for c := range v.MineField().Cols() {
			require.Equal(t, want, v.Status(r, c), "status at %d,%d", r, c)
		}
	}
}

func TestNewVisibleField_AllCovered(t *testing.T) {
	f := NewMineFieldFromData(layout("*..", "..."))
	v := NewVisibleField(f)

	assert.Same(t, f, v.MineField())
	requireAllStatus(t, v, m.StatusCovered)
	assert.False(t, v.IsGameOver())
	assert.Equal(t, 1, v.NumMinesLeft())
}

func TestVisibleField_CycleGuess(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*..", "...")))

	v.CycleGuess(0, 1)
	assert.Equal(t, m.StatusMineGuess, v.Status(0, 1))
	assert.Equal(t, 0, v.NumMinesLeft())

	v.CycleGuess(0, 1)
	assert.Equal(t, m.StatusQuestion, v.Status(0, 1))
	assert.Equal(t, 1, v.NumMinesLeft())

	v.CycleGuess(0, 1)
	assert.Equal(t, m.StatusCovered, v.Status(0, 1))
	assert.Equal(t, 1, v.NumMinesLeft())
}

func TestVisibleField_CycleGuess_NoEffectOnUncovered(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*.", "..", "..")))

	require.True(t, v.Uncover(2, 1))
	before := v.Status(2, 1)
	require.True(t, before.IsUncovered())

	for range 5 {
		v.CycleGuess(2, 1)
		assert.Equal(t, before, v.Status(2, 1))
	}
}

func TestVisibleField_NumMinesLeft_CanBeNegative(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*...")))

	v.CycleGuess(0, 1)
	v.CycleGuess(0, 2)
	v.CycleGuess(0, 3)

	assert.Equal(t, -2, v.NumMinesLeft())
}

func TestVisibleField_Uncover_Mine(t *testing.T) {
	f := NewMineFieldFromData(layout("*..", "..."))
	v := NewVisibleField(f)

	ok := v.Uncover(0, 0)

	assert.False(t, ok)
	assert.Equal(t, m.StatusExploded, v.Status(0, 0))
	assert.True(t, v.IsUncovered(0, 0))
	assert.True(t, v.IsGameOver())
	assert.True(t, f.HasMine(0, 0), "layout must not change")

	// Further uncovers are still legal for the model.
	assert.True(t, v.Uncover(1, 2))
	assert.True(t, v.IsGameOver())
}

func TestVisibleField_Uncover_NumberDoesNotSpread(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout(
		"...",
		".*.",
		"...",
	)))

	require.True(t, v.Uncover(0, 0))

	assert.Equal(t, m.RevealedStatus(1), v.Status(0, 0))
	assert.Equal(t, m.StatusCovered, v.Status(0, 1))
	assert.False(t, v.IsGameOver())
}

func TestVisibleField_Uncover_FloodFillAndWin(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout(
		"....",
		"....",
		"....",
		"...*",
	)))

	require.True(t, v.Uncover(0, 0))

	want := [][]m.Status{
		{m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(0)},
		{m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(0)},
		{m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(1), m.RevealedStatus(1)},
		{m.RevealedStatus(0), m.RevealedStatus(0), m.RevealedStatus(1), m.StatusMineGuess},
	}

	for r := range want {
		for c := range want[r] {
			assert.Equal(t, want[r][c], v.Status(r, c), "status at %d,%d", r, c)
		}
	}

	assert.True(t, v.IsGameOver())
	assert.Equal(t, 0, v.NumMinesLeft())
}

func TestVisibleField_Uncover_FloodFillSkipsGuesses(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout(
		".....",
		".....",
		".....",
		".....",
		"....*",
	)))

	v.CycleGuess(0, 2) // mine guess
	v.CycleGuess(2, 0)
	v.CycleGuess(2, 0) // question

	require.True(t, v.Uncover(0, 0))

	assert.Equal(t, m.StatusMineGuess, v.Status(0, 2))
	assert.Equal(t, m.StatusQuestion, v.Status(2, 0))
	assert.Equal(t, m.RevealedStatus(0), v.Status(0, 3), "fill goes around guesses")
	assert.Equal(t, m.RevealedStatus(1), v.Status(3, 3))
	assert.Equal(t, m.StatusCovered, v.Status(4, 4), "no auto-flag before a win")
	assert.False(t, v.IsGameOver())
}

func TestVisibleField_Uncover_GuessedSquareIsNotOpened(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("..", ".*")))

	v.CycleGuess(0, 0)

	assert.True(t, v.Uncover(0, 0))
	assert.Equal(t, m.StatusMineGuess, v.Status(0, 0))
}

func TestVisibleField_Uncover_AlreadyUncoveredIsStable(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*..", "...", "...")))

	require.True(t, v.Uncover(2, 2))
	snapshot := make([]m.Status, 0, 9)
	for r := range 3 {
		for c := range 3 {
			snapshot = append(snapshot, v.Status(r, c))
		}
	}

	require.True(t, v.Uncover(2, 2))

	i := 0
	for r := range 3 {
		for c := range 3 {
			assert.Equal(t, snapshot[i], v.Status(r, c))
			i++
		}
	}
}

func TestVisibleField_WinMarksOnlyCoveredMines(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout(
		"*.*",
		"...",
	)))

	v.CycleGuess(0, 0)
	v.CycleGuess(0, 0) // question on a mine

	require.True(t, v.Uncover(0, 1))
	require.True(t, v.Uncover(1, 0))
	require.True(t, v.Uncover(1, 1))
	require.False(t, v.IsGameOver())
	require.True(t, v.Uncover(1, 2))

	assert.True(t, v.IsGameOver())
	assert.Equal(t, m.StatusQuestion, v.Status(0, 0))
	assert.Equal(t, m.StatusMineGuess, v.Status(0, 2))
}

func TestVisibleField_ResetAfterWin(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*.")))

	require.True(t, v.Uncover(0, 1))
	require.True(t, v.IsGameOver())
	assert.Equal(t, m.StatusMineGuess, v.Status(0, 0))

	v.ResetGameDisplay()
	v.CycleGuess(0, 0)
	v.CycleGuess(0, 0)

	assert.Equal(t, m.StatusQuestion, v.Status(0, 0))
	assert.Equal(t, m.StatusCovered, v.Status(0, 1))
}

func TestVisibleField_ThreeByThreeExample(t *testing.T) {
	f := NewMineField(3, 3, 1, WithRand(&scriptedRand{values: []int{1, 1}}))
	f.Populate(0, 0)
	require.True(t, f.HasMine(1, 1))

	v := NewVisibleField(f)

	require.True(t, v.Uncover(0, 0))
	assert.Equal(t, m.RevealedStatus(1), v.Status(0, 0))

	for r := range 3 {
		for c := range 3 {
			if r == 1 && c == 1 {
				continue
			}

			assert.False(t, v.IsGameOver())
			require.True(t, v.Uncover(r, c), "uncover %d,%d", r, c)
		}
	}

	assert.True(t, v.IsGameOver())
	assert.Equal(t, m.StatusMineGuess, v.Status(1, 1))
}

func TestVisibleField_NoMinesRevealsEverything(t *testing.T) {
	v := NewVisibleField(NewMineField(300, 300, 0))

	require.True(t, v.Uncover(150, 150))

	requireAllStatus(t, v, m.RevealedStatus(0))
	assert.True(t, v.IsGameOver())
}

func TestVisibleField_ResetGameDisplay(t *testing.T) {
	f := NewMineFieldFromData(layout("*..", "..."))
	v := NewVisibleField(f)

	v.Uncover(1, 2)
	v.CycleGuess(0, 0)
	v.Uncover(0, 0)

	v.ResetGameDisplay()

	requireAllStatus(t, v, m.StatusCovered)
	assert.True(t, f.HasMine(0, 0))
	assert.Equal(t, 1, f.MineCount())
}
