// Package types contains shared type definitions for the cube order explorer.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidNotation is returned when move notation cannot be parsed.
var ErrInvalidNotation = errors.New("types: invalid move notation")

// Axis identifies one of the three stacks of parallel slices, named by the
// plane a slice of that stack spans.
type Axis int

const (
	AxisXY Axis = iota // Front/back stack, fixed layer coordinate
	AxisXZ             // Top/bottom stack, fixed row coordinate
	AxisYZ             // Left/right stack, fixed column coordinate
)

func (a Axis) String() string {
	switch a {
	case AxisXY:
		return "XY"
	case AxisXZ:
		return "XZ"
	case AxisYZ:
		return "YZ"
	default:
		return "?"
	}
}

// Face represents a turnable layer in standard notation.
// M, E and S are the middle slices.
type Face string

const (
	FaceR Face = "R" // Right
	FaceL Face = "L" // Left
	FaceU Face = "U" // Up
	FaceD Face = "D" // Down
	FaceF Face = "F" // Front
	FaceB Face = "B" // Back
	FaceM Face = "M" // Middle, between L and R
	FaceE Face = "E" // Equator, between U and D
	FaceS Face = "S" // Standing, between F and B
)

// Axis returns the slice stack the face belongs to.
func (f Face) Axis() Axis {
	switch f {
	case FaceF, FaceS, FaceB:
		return AxisXY
	case FaceU, FaceE, FaceD:
		return AxisXZ
	default:
		return AxisYZ
	}
}

// Layer returns the index of the face along its axis.
// Outer faces sit at 0 or 2, middle slices at 1.
func (f Face) Layer() int {
	switch f {
	case FaceF, FaceU, FaceL:
		return 0
	case FaceS, FaceE, FaceM:
		return 1
	default:
		return 2
	}
}

// IsSlice returns true for the three middle slices.
func (f Face) IsSlice() bool {
	return f == FaceM || f == FaceE || f == FaceS
}

// Turn represents the direction of a quarter turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
)

// Move is one of the 18 primitive quarter turns. The zero value is R.
// Even values are clockwise and the following odd value is the inverse.
type Move uint8

const (
	R Move = iota
	RPrime
	L
	LPrime
	U
	UPrime
	D
	DPrime
	F
	FPrime
	B
	BPrime
	M
	MPrime
	E
	EPrime
	S
	SPrime

	// NumMoves is the number of primitive moves.
	NumMoves = 18
)

var moveFaces = [NumMoves / 2]Face{FaceR, FaceL, FaceU, FaceD, FaceF, FaceB, FaceM, FaceE, FaceS}

// AllMoves returns the 18 primitive moves in canonical order.
func AllMoves() []Move {
	moves := make([]Move, NumMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// NewMove builds the move for a face and direction.
func NewMove(f Face, t Turn) (Move, error) {
	for i, face := range moveFaces {
		if face != f {
			continue
		}
		switch t {
		case TurnCW:
			return Move(2 * i), nil
		case TurnCCW:
			return Move(2*i + 1), nil
		}
	}
	return 0, fmt.Errorf("%w: face %q turn %d", ErrInvalidNotation, f, t)
}

// Valid reports whether m is one of the 18 primitive moves.
func (m Move) Valid() bool {
	return m < NumMoves
}

// Face returns the layer this move turns.
func (m Move) Face() Face {
	return moveFaces[m/2]
}

// Turn returns the move direction.
func (m Move) Turn() Turn {
	if m%2 == 0 {
		return TurnCW
	}
	return TurnCCW
}

// Axis returns the slice stack the move turns.
func (m Move) Axis() Axis {
	return m.Face().Axis()
}

// Layer returns the index of the turned slice along its axis.
func (m Move) Layer() int {
	return m.Face().Layer()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	return m ^ 1
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', M, M'
func (m Move) Notation() string {
	if !m.Valid() {
		return "?"
	}
	if m.Turn() == TurnCCW {
		return string(m.Face()) + "'"
	}
	return string(m.Face())
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Token encodes the move as a single byte.
func (m Move) Token() uint8 {
	return uint8(m)
}

// ParseMove parses a single move in standard notation.
// Examples: R, R', R`, m'
func ParseMove(s string) (Move, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return 0, err
	}
	if len(moves) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single move", ErrInvalidNotation, s)
	}
	return moves[0], nil
}

// ParseMoves parses a move sequence. Moves may be separated by whitespace
// or written back to back ("R U R' U'" and "RUR'U'" are equal).
// A half turn such as R2 expands to two quarter turns.
func ParseMoves(s string) ([]Move, error) {
	var moves []Move

	for i := 0; i < len(s); {
		c := s[i]
		if c == ' ' || c == '\t' || c == '\n' || c == ',' {
			i++
			continue
		}

		face, ok := faceFromByte(c)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrInvalidNotation, c, i)
		}
		i++

		turn := TurnCW
		repeat := 1
		if i < len(s) {
			switch s[i] {
			case '\'', '`':
				turn = TurnCCW
				i++
			case '2':
				repeat = 2
				i++
				// R2' is the same as R2
				if i < len(s) && (s[i] == '\'' || s[i] == '`') {
					i++
				}
			}
		}

		m, err := NewMove(face, turn)
		if err != nil {
			return nil, err
		}
		for r := 0; r < repeat; r++ {
			moves = append(moves, m)
		}
	}

	return moves, nil
}

func faceFromByte(c byte) (Face, bool) {
	switch c {
	case 'R', 'r':
		return FaceR, true
	case 'L', 'l':
		return FaceL, true
	case 'U', 'u':
		return FaceU, true
	case 'D', 'd':
		return FaceD, true
	case 'F', 'f':
		return FaceF, true
	case 'B', 'b':
		return FaceB, true
	case 'M', 'm':
		return FaceM, true
	case 'E', 'e':
		return FaceE, true
	case 'S', 's':
		return FaceS, true
	default:
		return "", false
	}
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// ConcatMoves formats a slice of moves with no separator, e.g. "RUR'U'".
func ConcatMoves(moves []Move) string {
	var sb strings.Builder
	for _, m := range moves {
		sb.WriteString(m.Notation())
	}
	return sb.String()
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
