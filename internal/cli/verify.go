package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/internal/geometry"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

var errVerifyFailed = errors.New("move verification failed")

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every move against the cube invariants",
	Long: `Check each of the 18 primitive moves:

  - it is a rigid quarter turn of its slice in space
  - four applications return the cube to solved
  - the move followed by its inverse changes nothing
  - it keeps all 27 cells exactly once`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// checkMove returns the failed checks for m, empty when all pass.
func checkMove(m types.Move, r geometry.Report) []string {
	var failed []string
	if !r.Rigid() {
		failed = append(failed, "not a rigid rotation")
	}

	c := cube.New()
	c.Move(m)
	if g := c.Grid(); !g.Valid() {
		failed = append(failed, "lost a cell")
	}
	c.Move(m.Inverse())
	if !c.IsSolved() {
		failed = append(failed, "inverse does not undo it")
	}

	c.Reset()
	for i := 0; i < 4; i++ {
		c.Move(m)
	}
	if !c.IsSolved() {
		failed = append(failed, "order is not 4")
	}
	return failed
}

func runVerify(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failures := 0

	for _, r := range geometry.Verify() {
		failed := checkMove(r.Move, r)
		if len(failed) > 0 {
			failures++
			logger.Warn("Move failed verification",
				zap.String("move", r.Move.Notation()),
				zap.Strings("checks", failed))
			fmt.Fprintf(out, "%-3s %s %v\n", r.Move.Notation(), errorStyle.Render("FAIL"), failed)
			continue
		}
		fmt.Fprintf(out, "%-3s %s %+d quarter turn about the %s normal\n",
			r.Move.Notation(), okStyle.Render("ok"), r.Sign, r.Axis)
	}

	if failures > 0 {
		return fmt.Errorf("%w: %d of %d moves", errVerifyFailed, failures, types.NumMoves)
	}
	return nil
}
