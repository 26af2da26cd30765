// Package cmd provides the root command and CLI setup for sweep.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"sweep.dev/pkg/sweep/internal/adapter"
	"sweep.dev/pkg/sweep/internal/controller"
	"sweep.dev/pkg/sweep/internal/domain"
	m "sweep.dev/pkg/sweep/internal/model"
)

var layoutStore adapter.LayoutStore
var workflow domain.Workflow
var ui controller.UI

var (
	rowsFlag    int
	colsFlag    int
	minesFlag   int
	seedFlag    uint64
	layoutFlag  string
	logFileFlag string
	verboseFlag bool
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	layoutStore = adapter.NewLocalLayoutStore()
	workflow = domain.NewWorkflow(layoutStore, ui)
}

const boardHelp = `A random board is sized with --rows, --cols and --mines; fewer than a
third of its squares may hold mines. Mines are placed on the first uncover,
so the first square is always safe. --layout FILE plays a saved layout instead.`

const rootLongDescription = `Sweep is a terminal minesweeper. Play interactively, replay scripted
moves, let the built-in solver play many games, or generate layouts.

` + boardHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Terminal minesweeper",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.IntVar(&rowsFlag, rowsFlagName, defaultRows, "number of rows of a random board")
	bindFlagToConfig(flags.Lookup(rowsFlagName), boardRowsKey)

	flags.IntVar(&colsFlag, colsFlagName, defaultCols, "number of columns of a random board")
	bindFlagToConfig(flags.Lookup(colsFlagName), boardColsKey)

	flags.IntVarP(&minesFlag, minesFlagName, "m", defaultMines, "number of mines of a random board")
	bindFlagToConfig(flags.Lookup(minesFlagName), boardMinesKey)

	flags.Uint64Var(&seedFlag, seedFlagName, defaultSeed, "random seed (0 picks one)")
	bindFlagToConfig(flags.Lookup(seedFlagName), boardSeedKey)

	flags.StringVarP(&layoutFlag, layoutFlagName, "l", "", "play the mine layout saved in this file")
	bindFlagToConfig(flags.Lookup(layoutFlagName), boardLayoutKey)

	flags.StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", defaultLogVerbose, "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// boardArgsFromConfig reads the board settings shared by all game commands.
func boardArgsFromConfig() domain.BoardArgs {
	return domain.BoardArgs{
		Rows:   viper.GetInt(boardRowsKey),
		Cols:   viper.GetInt(boardColsKey),
		Mines:  viper.GetInt(boardMinesKey),
		Seed:   viper.GetUint64(boardSeedKey),
		Layout: m.Path(viper.GetString(boardLayoutKey)),
	}
}
