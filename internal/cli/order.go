package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/internal/search"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

var (
	orderMaxOrder int
	orderAnalyze  bool
)

var orderCmd = &cobra.Command{
	Use:   "order <sequence|algorithm>...",
	Short: "Measure the order of a move sequence",
	Long: `Repeat a sequence on a solved cube until it is solved again and print the
number of repetitions.

Each argument is either a named algorithm (see 'cubeorder moves') or move
notation; moves may be space separated or written back to back.

Examples:
  cubeorder order "R U"
  cubeorder order RUR\'U\'
  cubeorder order one-of-everything --analyze`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOrder,
}

func init() {
	rootCmd.AddCommand(orderCmd)
	orderCmd.Flags().IntVar(&orderMaxOrder, "max-order", 0, "Fail when the sequence needs more repetitions (0: no cap)")
	orderCmd.Flags().BoolVar(&orderAnalyze, "analyze", false, "Also print the cycle structure of the sequence")
}

func runOrder(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for _, arg := range args {
		seq, err := types.LookupSequence(arg)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", arg, err)
		}

		order, err := search.MeasureOrder(seq, orderMaxOrder)
		if err != nil {
			return err
		}
		logger.Debug("Order measured",
			zap.String("sequence", types.FormatMoves(seq)),
			zap.Int("order", order))

		fmt.Fprintf(out, "%s: %s\n", types.FormatMoves(seq), orderStyle.Render(fmt.Sprint(order)))

		if orderAnalyze {
			printCycles(out, cube.SequencePermutation(seq))
		}
	}
	return nil
}

func printCycles(w io.Writer, p cube.Permutation) {
	ct := p.CycleType()
	lengths := make([]int, 0, len(ct))
	for n := range ct {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)

	var parts []string
	for _, n := range lengths {
		parts = append(parts, fmt.Sprintf("%dx%d-cycle", ct[n], n))
	}
	if len(parts) == 0 {
		parts = append(parts, "identity")
	}
	fmt.Fprintf(w, "  cycle type: %s (lcm %d)\n", strings.Join(parts, ", "), p.Order())

	for _, cycle := range p.Cycles() {
		names := make([]string, len(cycle))
		for i, c := range cycle {
			names[i] = cube.Cell(c).String()
		}
		kind := cube.Cell(cycle[0]).Kind()
		fmt.Fprintf(w, "  %-6s (%s)\n", kind, strings.Join(names, " "))
	}
}
