package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_order/internal/search"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

var (
	searchDepth     int
	searchFrom      int
	searchTo        int
	searchPool      string
	searchWorkers   int
	searchMaxOrder  int
	searchBatchSize int
	searchJSON      bool
	searchSummary   bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Measure the order of every sequence up to a depth",
	Long: `Enumerate every sequence of the given depth over a move pool and print how
many repetitions each needs to return the cube to solved.

Sequences with three identical moves in a row are skipped. Output follows
the order of the pool, so identical settings always print identical lines.

Examples:
  cubeorder search --depth 3
  cubeorder search --from 1 --to 4 --pool "R U R' U'"
  cubeorder search --depth 4 --workers 8 --json`,
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchDepth, "depth", "d", 0, "Search a single depth (overrides --from/--to)")
	searchCmd.Flags().IntVar(&searchFrom, "from", 0, "First depth to search (default from config: 3)")
	searchCmd.Flags().IntVar(&searchTo, "to", 0, "Last depth to search (default from config: 3)")
	searchCmd.Flags().StringVarP(&searchPool, "pool", "p", "", "Moves to draw from, e.g. \"R U F R' U' F'\" (default: the 12 face turns)")
	searchCmd.Flags().IntVarP(&searchWorkers, "workers", "w", 0, "Parallel workers (default: number of CPUs)")
	searchCmd.Flags().IntVar(&searchMaxOrder, "max-order", 0, "Fail when a sequence needs more repetitions (0: no cap)")
	searchCmd.Flags().IntVar(&searchBatchSize, "batch-size", 0, "Sequences per parallel batch")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Write one JSON object per result")
	searchCmd.Flags().BoolVar(&searchSummary, "summary", true, "Print an order histogram after each depth")
}

// applySearchFlags overlays explicitly set flags on the loaded config.
func applySearchFlags(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("from") {
		cfg.FromDepth = searchFrom
	}
	if flags.Changed("to") {
		cfg.ToDepth = searchTo
	}
	if flags.Changed("depth") {
		cfg.FromDepth, cfg.ToDepth = searchDepth, searchDepth
	}
	if flags.Changed("pool") {
		moves, err := types.ParseMoves(searchPool)
		if err != nil {
			return fmt.Errorf("invalid --pool: %w", err)
		}
		cfg.Pool = search.Pool(moves).Names()
	}
	if flags.Changed("workers") {
		cfg.Workers = searchWorkers
	}
	if flags.Changed("max-order") {
		cfg.MaxOrder = searchMaxOrder
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = searchBatchSize
	}
	if flags.Changed("json") {
		cfg.JSON = searchJSON
	}
	return cfg.Validate()
}

func runSearch(cmd *cobra.Command, args []string) error {
	if err := applySearchFlags(cmd); err != nil {
		return err
	}

	pool, err := cfg.SearchPool()
	if err != nil {
		return err
	}

	opts := append(cfg.SearchOptions(), search.WithLogger(logger))
	searcher, err := search.New(pool, opts...)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	out := cmd.OutOrStdout()
	report := textReporter(out)
	if cfg.JSON {
		report = jsonReporter(out)
	}

	logger.Info("Search started",
		zap.String("run_id", searcher.RunID()),
		zap.String("pool", pool.String()),
		zap.Int("from_depth", cfg.FromDepth),
		zap.Int("to_depth", cfg.ToDepth))

	for depth := cfg.FromDepth; depth <= cfg.ToDepth; depth++ {
		summary, err := searcher.Run(cmd.Context(), depth, report)
		if err != nil {
			return fmt.Errorf("search at depth %d failed: %w", depth, err)
		}
		if searchSummary && !cfg.JSON {
			printSummary(out, summary)
		}
	}

	return nil
}
