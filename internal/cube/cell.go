package cube

// Cell identifies one of the 27 pieces of the cube by the sticker colors
// it shows in the solved state: R(ed), O(range), Y(ellow), W(hite),
// B(lue), G(reen). C is the hidden core.
type Cell uint8

const (
	RYB Cell = iota
	RY
	RYG
	RB
	RedCenter
	RG
	RBW
	RW
	RGW

	YB
	YellowCenter
	YG
	BlueCenter
	Core
	GreenCenter
	BW
	WhiteCenter
	GW

	YBO
	YO
	YGO
	BO
	OrangeCenter
	GO
	BWO
	WO
	GWO

	// NumCells is the number of pieces in a 3x3x3 cube.
	NumCells = 27
)

var cellNames = [NumCells]string{
	"RYB", "RY", "RYG", "RB", "R", "RG", "RBW", "RW", "RGW",
	"YB", "Y", "YG", "B", "C", "G", "BW", "W", "GW",
	"YBO", "YO", "YGO", "BO", "O", "GO", "BWO", "WO", "GWO",
}

// Valid reports whether c is one of the 27 cells.
func (c Cell) Valid() bool {
	return c < NumCells
}

func (c Cell) String() string {
	if !c.Valid() {
		return "?"
	}
	return cellNames[c]
}

// Home returns the position the cell occupies in the solved cube.
func (c Cell) Home() Pos {
	i := int(c)
	return Pos{Layer: i / 9, Row: i / 3 % 3, Col: i % 3}
}

// Kind classifies a cell by how many stickers it carries.
type Kind int

const (
	KindCore   Kind = 0
	KindCenter Kind = 1
	KindEdge   Kind = 2
	KindCorner Kind = 3
)

func (k Kind) String() string {
	switch k {
	case KindCore:
		return "core"
	case KindCenter:
		return "center"
	case KindEdge:
		return "edge"
	case KindCorner:
		return "corner"
	default:
		return "?"
	}
}

// Kind returns whether the cell is a corner, edge, center or the core.
func (c Cell) Kind() Kind {
	p := c.Home()
	k := 0
	for _, v := range [3]int{p.Layer, p.Row, p.Col} {
		if v != 1 {
			k++
		}
	}
	return Kind(k)
}
