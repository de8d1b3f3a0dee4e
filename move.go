package gocube

import "github.com/SeamusWaldron/gocube_order/pkg/types"

// Move is one of the 18 primitive quarter turns.
type Move = types.Move

// Face represents a turnable layer in standard notation.
type Face = types.Face

// Turn represents the direction of a quarter turn.
type Turn = types.Turn

// Axis identifies one of the three stacks of parallel slices.
type Axis = types.Axis

const (
	CW  = types.TurnCW  // Clockwise (90 degrees)
	CCW = types.TurnCCW // Counter-clockwise (90 degrees)
)

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back
	FaceM = types.FaceM // Middle
	FaceE = types.FaceE // Equator
	FaceS = types.FaceS // Standing
)

// AllMoves returns the 18 primitive moves in canonical order.
func AllMoves() []Move {
	return types.AllMoves()
}

// ParseMove parses a single move in standard notation.
// Examples: R, R', M
func ParseMove(s string) (Move, error) {
	return types.ParseMove(s)
}

// ParseMoves parses a move sequence such as "R U R' U'" or "RUR'U'".
// Half turns like R2 expand to two quarter turns. Unlike the lenient
// parser of a live recorder, any invalid token is an error.
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}

// Invert returns the sequence that undoes moves.
func Invert(moves []Move) []Move {
	return types.InvertMoves(moves)
}
