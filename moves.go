package gocube

import "github.com/SeamusWaldron/gocube_order/pkg/types"

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
const (
	// Right face moves
	R      = types.R      // Right clockwise
	RPrime = types.RPrime // Right counter-clockwise

	// Left face moves
	L      = types.L      // Left clockwise
	LPrime = types.LPrime // Left counter-clockwise

	// Up face moves
	U      = types.U      // Up clockwise
	UPrime = types.UPrime // Up counter-clockwise

	// Down face moves
	D      = types.D      // Down clockwise
	DPrime = types.DPrime // Down counter-clockwise

	// Front face moves
	F      = types.F      // Front clockwise
	FPrime = types.FPrime // Front counter-clockwise

	// Back face moves
	B      = types.B      // Back clockwise
	BPrime = types.BPrime // Back counter-clockwise

	// Middle slice moves
	M      = types.M
	MPrime = types.MPrime
	E      = types.E
	EPrime = types.EPrime
	S      = types.S
	SPrime = types.SPrime
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Algorithm returns a copy of a named algorithm, e.g. "one-of-everything".
func Algorithm(name string) ([]Move, bool) {
	alg, ok := types.Algorithms[name]
	if !ok {
		return nil, false
	}
	return append([]Move(nil), alg...), true
}

// AlgorithmNames returns the known algorithm names, sorted.
func AlgorithmNames() []string {
	return types.AlgorithmNames()
}
