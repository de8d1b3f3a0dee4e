package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List primitive moves and named algorithms",
	Long:  `List the 18 primitive moves with the slice each one turns, followed by the named algorithms accepted by 'cubeorder order'.`,
	Args:  cobra.NoArgs,
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

func runMoves(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Moves"))
	for _, m := range types.AllMoves() {
		dir := "clockwise"
		if m.Turn() == types.TurnCCW {
			dir = "counter-clockwise"
		}
		fmt.Fprintf(out, "  %-3s %s plane %d, %s\n", m.Notation(), m.Axis(), m.Layer(), dir)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Algorithms"))
	for _, name := range types.AlgorithmNames() {
		fmt.Fprintf(out, "  %-26s %s\n", name, types.FormatMoves(types.Algorithms[name]))
	}
	return nil
}
