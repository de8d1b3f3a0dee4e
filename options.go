package gocube

import (
	"context"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_order/internal/search"
)

// Result is the measured order of one sequence found by Search.
type Result = search.Result

// Summary aggregates the orders found at one depth.
type Summary = search.Summary

// Option configures Search behavior.
type Option func(*config)

type config struct {
	pool     search.Pool
	workers  int
	maxOrder int
	logger   *zap.Logger
}

func defaultConfig() *config {
	return &config{
		pool:    search.DefaultPool(),
		workers: 1,
		logger:  zap.NewNop(),
	}
}

// WithPool sets the moves sequences are built from.
// The default is all 18 moves in canonical order.
func WithPool(moves []Move) Option {
	return func(c *config) {
		c.pool = search.Pool(moves)
	}
}

// WithWorkers sets how many sequences are measured concurrently.
// Results are still reported in enumeration order.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithMaxOrder bounds the repetitions tried per sequence. A sequence that
// exceeds it fails the search with ErrOrderExceeded.
func WithMaxOrder(n int) Option {
	return func(c *config) {
		c.maxOrder = n
	}
}

// WithLogger sets the logger for search progress.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// FacePool returns the 12 outer-face moves: R U F D L B then their primes.
func FacePool() []Move {
	return search.FacePool()
}

// Search measures the order of every sequence of length depth over the
// configured pool, skipping sequences with three identical moves in a row.
// report is called once per sequence in enumeration order; returning an
// error from it stops the search.
func Search(ctx context.Context, depth int, report func(Result) error, opts ...Option) (*Summary, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	s, err := search.New(cfg.pool,
		search.WithWorkers(cfg.workers),
		search.WithMaxOrder(cfg.maxOrder),
		search.WithLogger(cfg.logger),
	)
	if err != nil {
		return nil, err
	}
	return s.Run(ctx, depth, report)
}
