package search

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// MeasureOrder applies seq to a fresh solved cube until it is solved again
// and returns the number of repetitions.
//
// Every sequence has a finite order, so the loop always ends. maxReps
// bounds it anyway: when positive, a sequence that is still unsolved after
// maxReps repetitions yields ErrOrderExceeded. Zero means no bound.
func MeasureOrder(seq []types.Move, maxReps int) (int, error) {
	tr := cube.NewTracker()
	for {
		if tr.Repeat(seq) {
			return tr.Repetitions(), nil
		}
		if maxReps > 0 && tr.Repetitions() >= maxReps {
			return 0, fmt.Errorf("%w: %s not solved after %d repetitions",
				ErrOrderExceeded, types.FormatMoves(seq), maxReps)
		}
	}
}

// Result is the measured order of one sequence.
type Result struct {
	RunID    string       `json:"run_id,omitempty"`
	Depth    int          `json:"depth"`
	Order    int          `json:"order"`
	Sequence []types.Move `json:"-"`
}

// Name returns the sequence as concatenated notation, e.g. "RUR'".
func (r Result) Name() string {
	return types.ConcatMoves(r.Sequence)
}

// Notation returns the sequence as space-separated notation.
func (r Result) Notation() string {
	return types.FormatMoves(r.Sequence)
}

// ReportFunc receives results in enumeration order. Returning an error
// stops the search.
type ReportFunc func(Result) error
