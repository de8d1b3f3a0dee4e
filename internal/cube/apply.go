package cube

import "github.com/SeamusWaldron/gocube_order/pkg/types"

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.Move(m)
	}
}

// ApplyNotation parses notation and applies the moves.
func (c *Cube) ApplyNotation(notation string) error {
	moves, err := types.ParseMoves(notation)
	if err != nil {
		return err
	}
	c.ApplyMoves(moves)
	return nil
}

// Tracker wraps a Cube and counts how often a sequence has been applied
// since the last reset.
type Tracker struct {
	cube     *Cube
	reps     int
	moves    int
	onSolved func(reps int)
}

// NewTracker creates a new tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{cube: New()}
}

// SetSolvedCallback sets a callback that fires whenever a repetition
// leaves the cube solved.
func (t *Tracker) SetSolvedCallback(cb func(reps int)) {
	t.onSolved = cb
}

// Reset resets the tracker to a solved cube.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.reps = 0
	t.moves = 0
}

// Repeat applies seq once more and returns true if the cube is solved.
func (t *Tracker) Repeat(seq []types.Move) bool {
	t.cube.ApplyMoves(seq)
	t.reps++
	t.moves += len(seq)

	solved := t.cube.IsSolved()
	if solved && t.onSolved != nil {
		t.onSolved(t.reps)
	}
	return solved
}

// Repetitions returns the number of completed repetitions.
func (t *Tracker) Repetitions() int {
	return t.reps
}

// MoveCount returns the number of primitive moves applied.
func (t *Tracker) MoveCount() int {
	return t.moves
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
