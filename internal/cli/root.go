// Package cli implements the command-line interface for cubeorder.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_order/internal/config"
	"github.com/SeamusWaldron/gocube_order/internal/logging"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by the root command before any subcommand runs.
	cfg    config.Config
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeorder",
	Short: "Cube move-sequence order explorer",
	Long: `cubeorder - find out how often a move sequence has to be repeated
before a 3x3x3 cube returns to solved.

Search every sequence up to a given depth over a pool of moves, or measure
the order of a single sequence or named algorithm.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Verbose = true
		}
		cfg = loaded

		l, err := logging.New(cfg.Verbose)
		if err != nil {
			return err
		}
		logger = l
		logger.Debug("Configuration loaded",
			zap.String("config", configPath),
			zap.Int("from_depth", cfg.FromDepth),
			zap.Int("to_depth", cfg.ToDepth),
			zap.Strings("pool", cfg.Pool))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
// Interrupting the process cancels a running search.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (CUBEORDER_* environment variables override it)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
