package cmd

import (
	"github.com/spf13/cobra"

	"sweep.dev/pkg/sweep/internal/domain"
)

const scriptLongDescription = `Apply moves to a board in order and show the result. A move is
"r:ROW,COL" to uncover a square or "f:ROW,COL" to cycle its guess; the
long forms "reveal:" and "flag:" are accepted too. Moves after the game
has ended are ignored. Use --seed or --layout for a reproducible board.

` + boardHelp

// scriptCmd represents the script command.
var scriptCmd = newScriptCmd()

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script MOVE...",
		Short: "Replay a list of moves",
		Long:  scriptLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Script(cmd.Context(), domain.ScriptArgs{
				BoardArgs: boardArgsFromConfig(),
				Moves:     args,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(scriptCmd)
}
