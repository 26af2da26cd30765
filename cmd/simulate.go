package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sweep.dev/pkg/sweep/internal/domain"
)

var (
	gamesFlag      int
	parallelFlag   int
	maxMovesFlag   int
	resultsDirFlag string
)

// simulateCmd represents the simulate command.
var simulateCmd = newSimulateCmd()

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Let the solver play many games",
		Long: `Play games with the built-in solver and report how many were won. The
solver flags and uncovers squares it can deduce from the revealed numbers
and guesses otherwise. Game i uses seed --seed+i.

` + boardHelp,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Simulate(cmd.Context(), domain.SimulateArgs{
				BoardArgs:  boardArgsFromConfig(),
				Games:      viper.GetInt(simulateGamesKey),
				Parallel:   viper.GetInt(simulateParallelKey),
				MaxMoves:   viper.GetInt(simulateMaxMovesKey),
				ResultsDir: viper.GetString(simulateResultsDirKey),
			})
		},
	}

	configureSimulateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(simulateCmd)
}

func configureSimulateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&gamesFlag, gamesFlagName, "n", defaultSimulateGames, "number of games to play")
	bindFlagToConfig(cmd.Flags().Lookup(gamesFlagName), simulateGamesKey)

	cmd.Flags().IntVarP(&parallelFlag, parallelFlagName, "p", runtime.NumCPU(), "number of games played in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), simulateParallelKey)

	cmd.Flags().IntVar(&maxMovesFlag, maxMovesFlagName, defaultMaxMoves, "moves after which a game counts as stalled (0: twice the squares)")
	bindFlagToConfig(cmd.Flags().Lookup(maxMovesFlagName), simulateMaxMovesKey)

	cmd.Flags().StringVar(&resultsDirFlag, resultsDirFlagName, "", "keep the per-game results file in this directory")
	bindFlagToConfig(cmd.Flags().Lookup(resultsDirFlagName), simulateResultsDirKey)
}
