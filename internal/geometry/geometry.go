// Package geometry checks cube moves against rigid rotations in space.
//
// Grid positions are placed on integer coordinates centred on the core:
//
//	x = col - 1     (blue side -1, green side +1)
//	y = 1 - row     (white side -1, yellow side +1)
//	z = 1 - layer   (orange side -1, red side +1)
//
// A quarter turn of a slice is a rotation of its positions by ±90° about
// the axis normal to the slice.
package geometry

import (
	"math"

	"github.com/westphae/quaternion"

	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// Quarter turns about each coordinate axis, positive by the right-hand rule.
var (
	XPlus  = quaternion.FromEuler(math.Pi/2, 0, 0)
	YPlus  = quaternion.FromEuler(0, math.Pi/2, 0)
	ZPlus  = quaternion.FromEuler(0, 0, math.Pi/2)
	XMinus = quaternion.FromEuler(-math.Pi/2, 0, 0)
	YMinus = quaternion.FromEuler(0, -math.Pi/2, 0)
	ZMinus = quaternion.FromEuler(0, 0, -math.Pi/2)
)

// Vector returns the centred coordinates of a grid position.
func Vector(p cube.Pos) quaternion.Vec3 {
	return quaternion.Vec3{
		X: float64(p.Col - 1),
		Y: float64(1 - p.Row),
		Z: float64(1 - p.Layer),
	}
}

// PosOf converts centred coordinates back to a grid position, rounding
// away floating point noise.
func PosOf(v quaternion.Vec3) cube.Pos {
	return cube.Pos{
		Layer: 1 - int(math.Round(v.Z)),
		Row:   1 - int(math.Round(v.Y)),
		Col:   int(math.Round(v.X)) + 1,
	}
}

// turns returns the positive and negative quarter turn about the normal of
// axis.
func turns(axis types.Axis) (plus, minus quaternion.Quaternion) {
	switch axis {
	case types.AxisYZ:
		return XPlus, XMinus
	case types.AxisXZ:
		return YPlus, YMinus
	default:
		return ZPlus, ZMinus
	}
}

// inSlice reports whether p lies in the slice a move of face turns.
func inSlice(p cube.Pos, face types.Face) bool {
	l := face.Layer()
	switch face.Axis() {
	case types.AxisXY:
		return p.Layer == l
	case types.AxisXZ:
		return p.Row == l
	default:
		return p.Col == l
	}
}

// Rotate returns the grid produced by rotating the slice of face by rot,
// leaving every other position alone.
func Rotate(g cube.Grid, face types.Face, rot quaternion.Quaternion) cube.Grid {
	out := g
	for i := 0; i < cube.NumCells; i++ {
		p := cube.PosFromIndex(i)
		if !inSlice(p, face) {
			continue
		}
		q := PosOf(Vector(p).Rotate(rot))
		out[q.Layer][q.Row][q.Col] = g.At(p)
	}
	return out
}

// Sign reports which rigid quarter turn a move performs about the normal
// of its slice: +1 or -1 by the right-hand rule, 0 if the move is not a
// rigid rotation at all.
func Sign(m types.Move) int {
	c := cube.New()
	c.Move(m)
	got := c.Grid()

	plus, minus := turns(m.Axis())
	switch got {
	case Rotate(cube.Solved, m.Face(), plus):
		return 1
	case Rotate(cube.Solved, m.Face(), minus):
		return -1
	default:
		return 0
	}
}

// Report describes how one move relates to the rigid rotation model.
type Report struct {
	Move types.Move
	Axis types.Axis
	Sign int
}

// Rigid reports whether the move matched a rigid quarter turn.
func (r Report) Rigid() bool {
	return r.Sign != 0
}

// Verify checks every primitive move.
func Verify() []Report {
	reports := make([]Report, 0, types.NumMoves)
	for _, m := range types.AllMoves() {
		reports = append(reports, Report{Move: m, Axis: m.Axis(), Sign: Sign(m)})
	}
	return reports
}
