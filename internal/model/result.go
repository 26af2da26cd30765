package model

// Outcome is the state of a game as seen by a controller.
type Outcome int

const (
	// Playing means the game accepts further moves.
	Playing Outcome = iota
	// Won means every non-mine square is uncovered.
	Won
	// Lost means a mine was uncovered.
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}

	return "unknown"
}

// GameResult is the record of one finished (or abandoned) game.
type GameResult struct {
	ID      string
	Outcome Outcome
	Moves   int
	Guesses int // moves the solver could not deduce
}

// SimulationSummary aggregates the results of many games.
type SimulationSummary struct {
	Games      int
	Won        int
	Lost       int
	Stalled    int // games that stopped while still Playing
	AvgMoves   float64
	AvgGuesses float64
}

// WinRate returns the fraction of games won, or 0 when no game was played.
func (s SimulationSummary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}

	return float64(s.Won) / float64(s.Games)
}
