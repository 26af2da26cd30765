package cmd

import (
	"github.com/spf13/cobra"

	"sweep.dev/pkg/sweep/internal/domain"
)

// playCmd represents the play command.
var playCmd = newPlayCmd()

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game",
		Long: `Play a game in the terminal. On a terminal the board is navigated with the
arrow keys; otherwise commands such as "r 2 3" are read from standard input.

` + boardHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Play(cmd.Context(), domain.PlayArgs{BoardArgs: boardArgsFromConfig()})
		},
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
