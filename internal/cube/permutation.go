package cube

import "github.com/SeamusWaldron/gocube_order/pkg/types"

// Permutation describes where each cell went relative to the solved cube:
// p[i] is the position index now holding the cell whose home index is i.
type Permutation [NumCells]int

// Identity returns the permutation that moves nothing.
func Identity() Permutation {
	var p Permutation
	for i := range p {
		p[i] = i
	}
	return p
}

// Permutation returns the current state as a permutation of positions.
func (c *Cube) Permutation() Permutation {
	var p Permutation
	for i := 0; i < NumCells; i++ {
		pos := PosFromIndex(i)
		p[c.grid.At(pos)] = i
	}
	return p
}

// SequencePermutation returns the permutation produced by applying seq to
// a solved cube.
func SequencePermutation(seq []types.Move) Permutation {
	c := New()
	c.ApplyMoves(seq)
	return c.Permutation()
}

// Cycles returns the non-trivial cycles of the permutation, each starting
// at its smallest home index.
func (p Permutation) Cycles() [][]int {
	var cycles [][]int
	var visited [NumCells]bool
	for start := 0; start < NumCells; start++ {
		if visited[start] || p[start] == start {
			visited[start] = true
			continue
		}
		var cycle []int
		for i := start; !visited[i]; i = p[i] {
			visited[i] = true
			cycle = append(cycle, i)
		}
		cycles = append(cycles, cycle)
	}
	return cycles
}

// Order returns the least k >= 1 such that applying p k times is the
// identity: the least common multiple of its cycle lengths.
func (p Permutation) Order() int {
	order := 1
	for _, cycle := range p.Cycles() {
		order = lcm(order, len(cycle))
	}
	return order
}

// CycleType returns the cycle lengths keyed by length, e.g. {4: 2} for a
// face turn's two 4-cycles (corners and edges).
func (p Permutation) CycleType() map[int]int {
	ct := make(map[int]int)
	for _, cycle := range p.Cycles() {
		ct[len(cycle)]++
	}
	return ct
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
