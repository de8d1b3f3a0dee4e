package types

import (
	"fmt"
	"sort"
)

// Named sequences that are handy starting points for order experiments.
var (
	// OneOfEverything turns every outer face once: R U F D L B.
	OneOfEverything = []Move{R, U, F, D, L, B}

	// OneOfEverythingPrime is OneOfEverything with every turn reversed.
	OneOfEverythingPrime = []Move{RPrime, UPrime, FPrime, DPrime, LPrime, BPrime}

	// OneOfEverythingReally chains both of the above.
	OneOfEverythingReally = append(append([]Move{}, OneOfEverything...), OneOfEverythingPrime...)

	// RU is the two-move sequence R U.
	RU = []Move{R, U}

	// SexyMove is R U R' U', the most common trigger.
	SexyMove = []Move{R, U, RPrime, UPrime}
)

// Algorithms maps algorithm names to their move sequences.
var Algorithms = map[string][]Move{
	"one-of-everything":        OneOfEverything,
	"one-of-everything-prime":  OneOfEverythingPrime,
	"one-of-everything-really": OneOfEverythingReally,
	"r-u":                      RU,
	"basic-move":               SexyMove,
	"sexy":                     SexyMove,
}

// AlgorithmNames returns the known algorithm names, sorted.
func AlgorithmNames() []string {
	names := make([]string, 0, len(Algorithms))
	for name := range Algorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupSequence resolves s as an algorithm name first and as notation
// otherwise. The returned slice is never shared with Algorithms.
func LookupSequence(s string) ([]Move, error) {
	if alg, ok := Algorithms[s]; ok {
		return append([]Move(nil), alg...), nil
	}
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	if len(moves) == 0 {
		return nil, fmt.Errorf("%w: empty sequence", ErrInvalidNotation)
	}
	return moves, nil
}
