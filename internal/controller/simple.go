package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "sweep.dev/pkg/sweep/internal/model"
)

const simpleHelp = `Commands:
  r ROW COL   uncover a square
  f ROW COL   cycle the guess on a square
  h           suggest a move
  n           start a new game
  q           quit
`

var errUnknownCommand = errors.New("unknown command")

// SimpleUI implements UI using cobra Command's input and output.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// Play reads commands line by line until "q", end of input or ctx is done.
func (s *SimpleUI) Play(ctx context.Context, board Board) error {
	s.printf("%s\n", simpleHelp)
	s.printBoard(board)

	scanner := bufio.NewScanner(s.cmd.InOrStdin())

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.printf("> ")

		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}

		quit, err := s.execute(board, scanner.Text())
		if err != nil {
			s.printf("error: %v\n", err)
			continue
		}

		if quit {
			return nil
		}
	}
}

func (s *SimpleUI) execute(board Board, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	name := strings.ToLower(fields[0])

	switch name {
	case "q", "quit":
		return true, nil

	case "n", "new":
		board.Reset()
		s.printBoard(board)

	case "h", "hint":
		mv, ok := board.Hint()
		if !ok {
			s.printf("no move to suggest\n")
			return false, nil
		}

		s.printf("try: %s\n", mv)

	case "r", "reveal", "f", "flag":
		p, err := parseCoordinates(fields[1:])
		if err != nil {
			return false, err
		}

		if name[0] == 'r' {
			err = board.Uncover(p)
		} else {
			err = board.CycleGuess(p)
		}

		if err != nil {
			return false, err
		}

		s.printBoard(board)

	default:
		return false, fmt.Errorf("%w: %q", errUnknownCommand, fields[0])
	}

	return false, nil
}

func parseCoordinates(args []string) (m.Pos, error) {
	if len(args) != 2 {
		return m.Pos{}, fmt.Errorf("%w: want ROW COL", m.ErrInvalidMove)
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return m.Pos{}, fmt.Errorf("%w: row %q", m.ErrInvalidMove, args[0])
	}

	col, err := strconv.Atoi(args[1])
	if err != nil {
		return m.Pos{}, fmt.Errorf("%w: column %q", m.ErrInvalidMove, args[1])
	}

	return m.Pos{Row: row, Col: col}, nil
}

// DisplayBoard prints the board and its status line.
func (s *SimpleUI) DisplayBoard(ctx context.Context, board BoardView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printBoard(board)

	return nil
}

// DisplayGameResult prints one line per finished game.
func (s *SimpleUI) DisplayGameResult(ctx context.Context, result m.GameResult, done int, total int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("[%d/%d] game %s %s in %d moves (%d guesses)\n",
		done, total, shortID(result.ID), result.Outcome, result.Moves, result.Guesses)
}

// DisplaySimulation prints the simulation summary as a table.
func (s *SimpleUI) DisplaySimulation(ctx context.Context, summary m.SimulationSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSimulationTable(summary))
	s.printf("Win rate: %.2f%%  Avg moves: %.1f  Avg guesses: %.1f\n",
		summary.WinRate()*100, summary.AvgMoves, summary.AvgGuesses)

	return nil
}

func renderSimulationTable(summary m.SimulationSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Outcome", "Games"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	table.Append([]string{m.Won.String(), strconv.Itoa(summary.Won)})
	table.Append([]string{m.Lost.String(), strconv.Itoa(summary.Lost)})
	table.Append([]string{"stalled", strconv.Itoa(summary.Stalled)})

	table.SetFooter([]string{"Total", strconv.Itoa(summary.Games)})

	table.Render()

	return tableBuffer.String()
}

// DisplayLayout prints a saved layout.
func (s *SimpleUI) DisplayLayout(ctx context.Context, path m.Path, mines [][]bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("Saved %dx%d layout with %d mines to %s\n", len(mines), len(mines[0]), countLayoutMines(mines), path)
	s.printf("%s", renderLayout(mines))

	return nil
}

func (s *SimpleUI) printBoard(board BoardView) {
	s.printf("%s%s\n", renderBoard(board), renderStatusLine(board))
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
