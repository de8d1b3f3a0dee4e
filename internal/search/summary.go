package search

import (
	"sort"
	"time"
)

// Summary collects statistics for one search depth.
type Summary struct {
	RunID     string        `json:"run_id"`
	Depth     int           `json:"depth"`
	Sequences int           `json:"sequences"`
	Orders    map[int]int   `json:"orders"` // order -> number of sequences
	MinOrder  int           `json:"min_order"`
	MaxOrder  int           `json:"max_order"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

func newSummary(runID string, depth int) *Summary {
	return &Summary{
		RunID:  runID,
		Depth:  depth,
		Orders: make(map[int]int),
	}
}

func (s *Summary) add(order int) {
	if s.Sequences == 0 || order < s.MinOrder {
		s.MinOrder = order
	}
	if order > s.MaxOrder {
		s.MaxOrder = order
	}
	s.Sequences++
	s.Orders[order]++
}

// DistinctOrders returns every order seen, ascending.
func (s *Summary) DistinctOrders() []int {
	orders := make([]int, 0, len(s.Orders))
	for o := range s.Orders {
		orders = append(orders, o)
	}
	sort.Ints(orders)
	return orders
}

// MostCommonOrder returns the order shared by the most sequences, the
// smaller one on ties. It returns 0 for an empty summary.
func (s *Summary) MostCommonOrder() int {
	best, bestCount := 0, 0
	for _, o := range s.DistinctOrders() {
		if s.Orders[o] > bestCount {
			best, bestCount = o, s.Orders[o]
		}
	}
	return best
}
