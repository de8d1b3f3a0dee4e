package gocube

import (
	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/internal/search"
)

// Cube is a standalone 3x3x3 cube that moves can be applied to.
// It is not safe for concurrent use.
type Cube struct {
	c *cube.Cube
}

// NewCube creates a new cube in the solved state.
func NewCube() *Cube {
	return &Cube{c: cube.New()}
}

// Apply applies moves to the cube in order.
// Panics if a move is not one of the 18 primitive moves.
func (c *Cube) Apply(moves ...Move) {
	c.c.ApplyMoves(moves)
}

// ApplyNotation parses and applies a notation string such as "R U R' U'".
// Nothing is applied if the string fails to parse.
func (c *Cube) ApplyNotation(notation string) error {
	return c.c.ApplyNotation(notation)
}

// IsSolved reports whether every cell is in its home position.
func (c *Cube) IsSolved() bool {
	return c.c.IsSolved()
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.c.Reset()
}

// Clone returns an independent copy of the cube.
func (c *Cube) Clone() *Cube {
	return &Cube{c: c.c.Clone()}
}

// Equal reports whether both cubes hold the same arrangement.
func (c *Cube) Equal(other *Cube) bool {
	return c.c.Equal(other.c)
}

// String returns the grid as three layers side by side.
func (c *Cube) String() string {
	return c.c.String()
}

// Order returns how many times moves must be repeated on a solved cube
// before it is solved again.
func Order(moves ...Move) (int, error) {
	return search.MeasureOrder(moves, 0)
}

// OrderNotation is Order for a notation string.
func OrderNotation(notation string) (int, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return 0, err
	}
	return Order(moves...)
}

// CycleOrder computes the order of moves from the cycle structure of the
// cell permutation instead of by repetition. It always equals Order.
func CycleOrder(moves ...Move) int {
	return cube.SequencePermutation(moves).Order()
}
