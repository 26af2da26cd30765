package cmd

import (
	"github.com/spf13/cobra"

	"sweep.dev/pkg/sweep/internal/domain"
	m "sweep.dev/pkg/sweep/internal/model"
)

var avoidFlag string

// layoutCmd represents the layout command.
var layoutCmd = newLayoutCmd()

func newLayoutCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout FILE",
		Short: "Generate a random mine layout",
		Long: `Place mines on a random board and save the layout to FILE, so the same
board can be played again with --layout FILE. The square given by --avoid
never holds a mine.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			avoid, err := m.ParsePos(avoidFlag)
			if err != nil {
				return err
			}

			board := boardArgsFromConfig()
			board.Layout = ""

			return workflow.Layout(cmd.Context(), domain.LayoutArgs{
				BoardArgs: board,
				Output:    m.Path(args[0]),
				Avoid:     avoid,
			})
		},
	}

	cmd.Flags().StringVar(&avoidFlag, avoidFlagName, "0,0", "square kept free of mines, as ROW,COL")

	return cmd
}

func init() {
	rootCmd.AddCommand(layoutCmd)
}
