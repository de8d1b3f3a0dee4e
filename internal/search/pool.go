// Package search enumerates move sequences and measures their order.
//
// The order of a sequence is the number of times it has to be applied to
// a solved cube before the cube is solved again. Searches enumerate every
// sequence of a given depth over a pool of moves, depth first, skipping
// sequences that repeat the same move three times in a row.
package search

import (
	"errors"
	"fmt"

	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

// Sentinel errors for the search package.
var (
	ErrOrderExceeded = errors.New("search: sequence exceeded the repetition cap")
	ErrEmptyPool     = errors.New("search: move pool is empty")
	ErrDuplicateMove = errors.New("search: duplicate move in pool")
	ErrInvalidDepth  = errors.New("search: depth must be at least 1")
)

// Pool is the ordered list of moves a search draws from. Enumeration
// follows pool order, so equal pools always produce equal output.
type Pool []types.Move

// DefaultPool returns all 18 primitive moves in canonical order.
func DefaultPool() Pool {
	return Pool(types.AllMoves())
}

// FacePool returns the 12 outer face turns: R U F D L B and their primes.
func FacePool() Pool {
	return Pool{
		types.R, types.U, types.F, types.D, types.L, types.B,
		types.RPrime, types.UPrime, types.FPrime, types.DPrime, types.LPrime, types.BPrime,
	}
}

// ParsePool builds a pool from move notation, keeping the given order.
func ParsePool(names []string) (Pool, error) {
	pool := make(Pool, 0, len(names))
	for _, name := range names {
		m, err := types.ParseMove(name)
		if err != nil {
			return nil, fmt.Errorf("pool entry %q: %w", name, err)
		}
		pool = append(pool, m)
	}
	if err := pool.Validate(); err != nil {
		return nil, err
	}
	return pool, nil
}

// Validate checks that the pool is non-empty and has no repeated moves.
func (p Pool) Validate() error {
	if len(p) == 0 {
		return ErrEmptyPool
	}
	seen := make(map[types.Move]bool, len(p))
	for _, m := range p {
		if !m.Valid() {
			return fmt.Errorf("search: invalid move %d in pool", m)
		}
		if seen[m] {
			return fmt.Errorf("%w: %s", ErrDuplicateMove, m)
		}
		seen[m] = true
	}
	return nil
}

// Names returns the notation of every move in the pool.
func (p Pool) Names() []string {
	names := make([]string, len(p))
	for i, m := range p {
		names[i] = m.Notation()
	}
	return names
}

// String returns the pool as space-separated notation.
func (p Pool) String() string {
	return types.FormatMoves(p)
}
