// Package model defines the data structures shared by the minesweeper model,
// its controllers and its user interfaces.
package model

import "strconv"

// StatusKind identifies the variant of a square's visible status.
type StatusKind int

const (
	// Covered is the initial state of every square.
	Covered StatusKind = iota
	// MineGuess marks a covered square the player believes holds a mine.
	MineGuess
	// Question marks a covered square the player is unsure about.
	Question
	// Revealed is an uncovered non-mine square; Status.Adjacent holds its count.
	Revealed
	// Mine is a mine that was not guessed, shown at the end of a lost game.
	Mine
	// IncorrectGuess is a MineGuess on a square without a mine, shown at the end of a lost game.
	IncorrectGuess
	// Exploded is the mine the player uncovered by mistake.
	Exploded
)

// MaxAdjacent is the largest number of mines that can surround a square.
const MaxAdjacent = 8

// Status is the visible state of one square. Adjacent is only meaningful when
// Kind is Revealed and is zero otherwise, so Status values compare with ==.
type Status struct {
	Kind     StatusKind
	Adjacent int
}

// Fixed status values for every variant without a payload.
var (
	StatusCovered        = Status{Kind: Covered}
	StatusMineGuess      = Status{Kind: MineGuess}
	StatusQuestion       = Status{Kind: Question}
	StatusMine           = Status{Kind: Mine}
	StatusIncorrectGuess = Status{Kind: IncorrectGuess}
	StatusExploded       = Status{Kind: Exploded}
)

// RevealedStatus returns the status of an uncovered square with the given
// number of adjacent mines. PRE: 0 <= adjacent <= MaxAdjacent.
func RevealedStatus(adjacent int) Status {
	return Status{Kind: Revealed, Adjacent: adjacent}
}

// IsCovered reports whether s is one of Covered, MineGuess or Question.
func (s Status) IsCovered() bool {
	switch s.Kind {
	case Covered, MineGuess, Question:
		return true
	case Revealed, Mine, IncorrectGuess, Exploded:
		return false
	}

	return false
}

// IsUncovered reports whether s is a revealed count or a terminal variant.
func (s Status) IsUncovered() bool {
	return !s.IsCovered()
}

// Count returns the adjacent-mine count of a Revealed square.
func (s Status) Count() (int, bool) {
	if s.Kind != Revealed {
		return 0, false
	}

	return s.Adjacent, true
}

func (s Status) String() string {
	switch s.Kind {
	case Covered:
		return "covered"
	case MineGuess:
		return "mine-guess"
	case Question:
		return "question"
	case Revealed:
		return strconv.Itoa(s.Adjacent)
	case Mine:
		return "mine"
	case IncorrectGuess:
		return "incorrect-guess"
	case Exploded:
		return "exploded"
	}

	return "unknown"
}
