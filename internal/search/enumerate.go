package search

import (
	"math"
	"math/bits"

	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// maxRun is the longest run of one move a sequence may contain. A quarter
// turn repeated three times equals its inverse, so longer runs add nothing.
const maxRun = 2

// Enumerate calls fn with every sequence of length depth drawn from pool,
// depth first and in pool order, skipping any sequence with more than two
// consecutive identical moves. The slice passed to fn is reused between
// calls; fn must copy it to keep it. Enumeration stops early when fn
// returns false. Depth 0 yields the empty sequence once.
func Enumerate(pool Pool, depth int, fn func(seq []types.Move) bool) {
	if depth < 0 {
		return
	}
	seq := make([]types.Move, 0, depth)
	enumerate(pool, depth, seq, fn)
}

func enumerate(pool Pool, depth int, seq []types.Move, fn func([]types.Move) bool) bool {
	if len(seq) == depth {
		return fn(seq)
	}

	n := len(seq)
	for _, m := range pool {
		if n >= maxRun && seq[n-1] == m && seq[n-2] == m {
			continue
		}
		if !enumerate(pool, depth, append(seq, m), fn) {
			return false
		}
	}
	return true
}

// CountSequences returns how many sequences Enumerate yields for a pool of
// poolSize distinct moves: the number of words of length depth with no run
// of three equal symbols. The count saturates at math.MaxUint64.
func CountSequences(poolSize, depth int) uint64 {
	if depth < 0 || poolSize < 0 {
		return 0
	}
	if depth == 0 {
		return 1
	}

	p := uint64(poolSize)
	// single: words ending in a run of one; double: ending in a run of two.
	single, double := p, uint64(0)
	for d := 1; d < depth; d++ {
		total, ok := addSat(single, double)
		if !ok {
			return math.MaxUint64
		}
		if p == 0 {
			return 0
		}
		next, ok := mulSat(total, p-1)
		if !ok {
			return math.MaxUint64
		}
		single, double = next, single
	}
	total, ok := addSat(single, double)
	if !ok {
		return math.MaxUint64
	}
	return total
}

func addSat(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

func mulSat(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
