package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "sweep.dev/pkg/sweep/internal/model"
)

func TestSolver_FlagsThenRevealsDeducedSquares(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout(
		".*.",
		"...",
		"...",
	)))
	require.True(t, v.Uncover(0, 0))
	require.True(t, v.Uncover(1, 0))
	require.True(t, v.Uncover(1, 1))

	solver := NewSolver(v, &scriptedRand{values: []int{0}})

	mv, strategy, ok := solver.Next()
	require.True(t, ok)
	assert.Equal(t, StrategyLogic, strategy)
	assert.Equal(t, m.Move{Kind: m.MoveFlag, Pos: m.Pos{Row: 0, Col: 1}}, mv)

	v.CycleGuess(0, 1)

	mv, strategy, ok = solver.Next()
	require.True(t, ok)
	assert.Equal(t, StrategyLogic, strategy)
	assert.Equal(t, m.Move{Kind: m.MoveReveal, Pos: m.Pos{Row: 2, Col: 0}}, mv)
}

func TestSolver_GuessesWhenNothingIsKnown(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*.", "..")))
	solver := NewSolver(v, &scriptedRand{values: []int{3}})

	mv, strategy, ok := solver.Next()

	require.True(t, ok)
	assert.Equal(t, StrategyRandom, strategy)
	assert.Equal(t, m.Move{Kind: m.MoveReveal, Pos: m.Pos{Row: 1, Col: 1}}, mv)
}

func TestSolver_NeverPicksGuessedSquares(t *testing.T) {
	v := NewVisibleField(NewMineFieldFromData(layout("*.", "..")))
	v.CycleGuess(0, 0)
	v.CycleGuess(0, 1)
	v.CycleGuess(0, 1)
	v.CycleGuess(1, 0)

	solver := NewSolver(v, &scriptedRand{values: []int{0}})

	mv, _, ok := solver.Next()

	require.True(t, ok)
	assert.Equal(t, m.Pos{Row: 1, Col: 1}, mv.Pos)
}

func TestSolver_NothingLeftToPlay(t *testing.T) {
	v := NewVisibleField(NewMineField(2, 2, 0))
	require.True(t, v.Uncover(0, 0))

	_, _, ok := NewSolver(v, nil).Next()

	assert.False(t, ok)
}
