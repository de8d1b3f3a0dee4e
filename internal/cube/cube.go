// Package cube provides a 3x3x3 cube model built from plane rotations.
//
// The cube is a Grid of 27 labelled cells. Every primitive move copies one
// slice of the grid into a Plane, rotates the plane a quarter turn and
// writes it back to the same slice:
//
//	F S B   XY planes, layers 0 1 2
//	U E D   XZ planes, rows 0 1 2
//	L M R   YZ planes, columns 0 1 2
//
// Clockwise moves rotate the extracted plane with Rotate90 and their
// primes with RotateMinus90, in plane coordinates.
package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// planeTurn is one row of the move dispatch table.
type planeTurn struct {
	axis  types.Axis
	layer int
	cw    bool
}

// moveTable maps every primitive move to the slice it turns.
var moveTable = [types.NumMoves]planeTurn{
	types.R:      {types.AxisYZ, 2, true},
	types.RPrime: {types.AxisYZ, 2, false},
	types.L:      {types.AxisYZ, 0, true},
	types.LPrime: {types.AxisYZ, 0, false},
	types.U:      {types.AxisXZ, 0, true},
	types.UPrime: {types.AxisXZ, 0, false},
	types.D:      {types.AxisXZ, 2, true},
	types.DPrime: {types.AxisXZ, 2, false},
	types.F:      {types.AxisXY, 0, true},
	types.FPrime: {types.AxisXY, 0, false},
	types.B:      {types.AxisXY, 2, true},
	types.BPrime: {types.AxisXY, 2, false},
	types.M:      {types.AxisYZ, 1, true},
	types.MPrime: {types.AxisYZ, 1, false},
	types.E:      {types.AxisXZ, 1, true},
	types.EPrime: {types.AxisXZ, 1, false},
	types.S:      {types.AxisXY, 1, true},
	types.SPrime: {types.AxisXY, 1, false},
}

// Cube is a 3x3x3 cube.
type Cube struct {
	grid Grid
}

// New creates a solved cube.
func New() *Cube {
	return &Cube{grid: Solved}
}

// FromGrid creates a cube holding a copy of g.
// It returns an error if g is not a permutation of the 27 cells.
func FromGrid(g Grid) (*Cube, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("cube: grid is not a permutation of the %d cells", NumCells)
	}
	return &Cube{grid: g}, nil
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Grid returns a copy of the current grid.
func (c *Cube) Grid() Grid {
	return c.grid
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	c.grid = Solved
}

// IsSolved returns true if every cell is at its home position.
func (c *Cube) IsSolved() bool {
	return c.grid == Solved
}

// Equal reports whether both cubes hold the same grid.
func (c *Cube) Equal(other *Cube) bool {
	return c.grid == other.grid
}

// Move applies a primitive move. Only the 9 cells of the turned slice
// change. It panics if m is not one of the 18 primitive moves.
func (c *Cube) Move(m types.Move) {
	if !m.Valid() {
		panic(fmt.Sprintf("cube: invalid move %d", m))
	}
	t := moveTable[m]
	p := c.grid.Plane(t.axis, t.layer)
	if t.cw {
		p.Rotate90()
	} else {
		p.RotateMinus90()
	}
	c.grid.SetPlane(t.axis, t.layer, p)
}

// String returns a text representation of the cube.
func (c *Cube) String() string {
	return c.grid.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v, misplaced: %d", c.IsSolved(), len(c.grid.Diff(&Solved)))
}
