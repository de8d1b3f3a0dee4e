package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_order/internal/matrix"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// Size is the edge length of the cube.
const Size = 3

// Pos addresses one position of the grid.
type Pos struct {
	Layer, Row, Col int
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.Layer, p.Row, p.Col)
}

// Index returns the position as a number in [0,27), layer major.
func (p Pos) Index() int {
	return p.Layer*9 + p.Row*3 + p.Col
}

// PosFromIndex is the inverse of Pos.Index.
func PosFromIndex(i int) Pos {
	return Pos{Layer: i / 9, Row: i / 3 % 3, Col: i % 3}
}

// Grid holds one cell per position, indexed [layer][row][col].
//
// Layer 0 is the red side, row 0 the yellow side and column 0 the blue
// side of the solved cube.
type Grid [Size][Size][Size]Cell

// Plane is a 3x3 copy of one slice of a Grid.
type Plane [Size][Size]Cell

// rows returns row slices backed by the plane itself, so the matrix
// transforms rotate the plane in place.
func (p *Plane) rows() [][]Cell {
	return [][]Cell{p[0][:], p[1][:], p[2][:]}
}

// Rotate90 turns the plane a quarter turn clockwise.
func (p *Plane) Rotate90() {
	matrix.Rotate90(p.rows())
}

// RotateMinus90 turns the plane a quarter turn counter-clockwise.
func (p *Plane) RotateMinus90() {
	matrix.RotateMinus90(p.rows())
}

// Rotate180 turns the plane a half turn.
func (p *Plane) Rotate180() {
	matrix.Rotate180(p.rows())
}

// Solved is the grid with every cell at its home position.
var Solved = Grid{
	{
		{RYB, RY, RYG},
		{RB, RedCenter, RG},
		{RBW, RW, RGW},
	},
	{
		{YB, YellowCenter, YG},
		{BlueCenter, Core, GreenCenter},
		{BW, WhiteCenter, GW},
	},
	{
		{YBO, YO, YGO},
		{BO, OrangeCenter, GO},
		{BWO, WO, GWO},
	},
}

// At returns the cell at p.
func (g *Grid) At(p Pos) Cell {
	return g[p.Layer][p.Row][p.Col]
}

// Valid reports whether every one of the 27 cells appears exactly once.
func (g *Grid) Valid() bool {
	var seen [NumCells]bool
	for l := range g {
		for r := range g[l] {
			for _, c := range g[l][r] {
				if !c.Valid() || seen[c] {
					return false
				}
				seen[c] = true
			}
		}
	}
	return true
}

// XY returns the slice with fixed layer l: p[i][j] = g[l][i][j].
func (g *Grid) XY(l int) Plane {
	mustIndex(l)
	return Plane(g[l])
}

// SetXY writes p back into the slice read by XY.
func (g *Grid) SetXY(l int, p Plane) {
	mustIndex(l)
	g[l] = p
}

// YZ returns the slice with fixed column l: p[i][j] = g[i][j][l].
// Rows of the plane run along the layers.
func (g *Grid) YZ(l int) Plane {
	mustIndex(l)
	var p Plane
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			p[i][j] = g[i][j][l]
		}
	}
	return p
}

// SetYZ writes p back into the slice read by YZ.
func (g *Grid) SetYZ(l int, p Plane) {
	mustIndex(l)
	for i := 0; i < Size; i++ {
		for j := 0; j < Size; j++ {
			g[i][j][l] = p[i][j]
		}
	}
}

// XZ returns the slice with fixed row l: p[i][j] = g[i][l][j].
// Rows of the plane run along the layers.
func (g *Grid) XZ(l int) Plane {
	mustIndex(l)
	var p Plane
	for i := 0; i < Size; i++ {
		p[i] = g[i][l]
	}
	return p
}

// SetXZ writes p back into the slice read by XZ.
func (g *Grid) SetXZ(l int, p Plane) {
	mustIndex(l)
	for i := 0; i < Size; i++ {
		g[i][l] = p[i]
	}
}

// Plane returns the slice at index l along axis.
func (g *Grid) Plane(axis types.Axis, l int) Plane {
	switch axis {
	case types.AxisXY:
		return g.XY(l)
	case types.AxisYZ:
		return g.YZ(l)
	case types.AxisXZ:
		return g.XZ(l)
	default:
		panic(fmt.Sprintf("cube: unknown axis %d", axis))
	}
}

// SetPlane writes p into the slice at index l along axis.
func (g *Grid) SetPlane(axis types.Axis, l int, p Plane) {
	switch axis {
	case types.AxisXY:
		g.SetXY(l, p)
	case types.AxisYZ:
		g.SetYZ(l, p)
	case types.AxisXZ:
		g.SetXZ(l, p)
	default:
		panic(fmt.Sprintf("cube: unknown axis %d", axis))
	}
}

// PlanePos returns the grid position of element (i,j) of the plane at
// index l along axis.
func PlanePos(axis types.Axis, l, i, j int) Pos {
	mustIndex(l)
	switch axis {
	case types.AxisXY:
		return Pos{Layer: l, Row: i, Col: j}
	case types.AxisYZ:
		return Pos{Layer: i, Row: j, Col: l}
	case types.AxisXZ:
		return Pos{Layer: i, Row: l, Col: j}
	default:
		panic(fmt.Sprintf("cube: unknown axis %d", axis))
	}
}

// Diff returns the positions whose cells differ between g and other.
func (g *Grid) Diff(other *Grid) []Pos {
	var diff []Pos
	for i := 0; i < NumCells; i++ {
		p := PosFromIndex(i)
		if g.At(p) != other.At(p) {
			diff = append(diff, p)
		}
	}
	return diff
}

// String returns the three layers side by side.
func (g *Grid) String() string {
	result := ""
	for r := 0; r < Size; r++ {
		for l := 0; l < Size; l++ {
			for c := 0; c < Size; c++ {
				result += fmt.Sprintf("%-4s", g[l][r][c])
			}
			if l < Size-1 {
				result += "| "
			}
		}
		result += "\n"
	}
	return result
}

func mustIndex(l int) {
	if l < 0 || l >= Size {
		panic(fmt.Sprintf("cube: plane index %d out of range [0,%d)", l, Size))
	}
}
