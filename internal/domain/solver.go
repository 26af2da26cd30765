package domain

import (
	m "sweep.dev/pkg/sweep/internal/model"
)

// Strategy names how the solver chose a move.
type Strategy string

const (
	// StrategyLogic marks a move deduced from the revealed numbers.
	StrategyLogic Strategy = "logic"
	// StrategyRandom marks a guess among the covered squares.
	StrategyRandom Strategy = "random"
)

// Solver picks moves from what a player can see. It reads the statuses of a
// VisibleField and never looks at the mines.
type Solver struct {
	visible *VisibleField
	rng     Rand
}

// NewSolver creates a solver for visible. rng picks among covered squares
// when no move can be deduced.
func NewSolver(visible *VisibleField, rng Rand) *Solver {
	if rng == nil {
		rng = globalRand{}
	}

	return &Solver{visible: visible, rng: rng}
}

// Next returns the next move and how it was found. It reports false when no
// Covered square is left to play.
//
// A revealed number whose flagged neighbours already match it makes its
// other neighbours safe; one whose covered neighbours exactly match it makes
// all of them mines. Without such a square the solver guesses.
func (s *Solver) Next() (m.Move, Strategy, bool) {
	if mv, ok := s.findSafeMove(); ok {
		return mv, StrategyLogic, true
	}

	if mv, ok := s.findFlagMove(); ok {
		return mv, StrategyLogic, true
	}

	if mv, ok := s.findRandomMove(); ok {
		return mv, StrategyRandom, true
	}

	return m.Move{}, "", false
}

type neighborInfo struct {
	flags   int
	covered int // every covered variant, flags included
	unknown []m.Pos
}

func (s *Solver) neighbors(p m.Pos) neighborInfo {
	var info neighborInfo

	field := s.visible.MineField()

	for _, n := range p.Neighbors() {
		if !field.InRange(n.Row, n.Col) {
			continue
		}

		status := s.visible.Status(n.Row, n.Col)
		if !status.IsCovered() {
			continue
		}

		info.covered++

		if status == m.StatusMineGuess {
			info.flags++
		} else {
			info.unknown = append(info.unknown, n)
		}
	}

	return info
}

// eachNumber calls fn for every revealed square with at least one adjacent
// mine, stopping when fn returns true.
func (s *Solver) eachNumber(fn func(p m.Pos, count int) bool) {
	field := s.visible.MineField()

	for r := range field.Rows() {
		for c := range field.Cols() {
			count, revealed := s.visible.Status(r, c).Count()
			if !revealed || count == 0 {
				continue
			}

			if fn(m.Pos{Row: r, Col: c}, count) {
				return
			}
		}
	}
}

func (s *Solver) findSafeMove() (m.Move, bool) {
	var (
		found m.Move
		ok    bool
	)

	s.eachNumber(func(p m.Pos, count int) bool {
		info := s.neighbors(p)
		if info.flags != count {
			return false
		}

		for _, n := range info.unknown {
			if s.visible.Status(n.Row, n.Col) == m.StatusCovered {
				found, ok = m.Move{Kind: m.MoveReveal, Pos: n}, true
				return true
			}
		}

		return false
	})

	return found, ok
}

func (s *Solver) findFlagMove() (m.Move, bool) {
	var (
		found m.Move
		ok    bool
	)

	s.eachNumber(func(p m.Pos, count int) bool {
		info := s.neighbors(p)
		if info.covered != count || len(info.unknown) == 0 {
			return false
		}

		for _, n := range info.unknown {
			if s.visible.Status(n.Row, n.Col) == m.StatusCovered {
				found, ok = m.Move{Kind: m.MoveFlag, Pos: n}, true
				return true
			}
		}

		return false
	})

	return found, ok
}

func (s *Solver) findRandomMove() (m.Move, bool) {
	field := s.visible.MineField()

	var candidates []m.Pos

	for r := range field.Rows() {
		for c := range field.Cols() {
			if s.visible.Status(r, c) == m.StatusCovered {
				candidates = append(candidates, m.Pos{Row: r, Col: c})
			}
		}
	}

	if len(candidates) == 0 {
		return m.Move{}, false
	}

	return m.Move{Kind: m.MoveReveal, Pos: candidates[s.rng.IntN(len(candidates))]}, true
}
