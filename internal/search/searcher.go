package search

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

const defaultBatchSize = 1024

// Option configures a Searcher.
type Option func(*Searcher)

// WithMaxOrder caps the repetitions per sequence. Zero means no cap.
func WithMaxOrder(n int) Option {
	return func(s *Searcher) {
		s.maxOrder = n
	}
}

// WithWorkers measures sequences on n goroutines. Results are still
// reported in enumeration order. Values below 2 search sequentially.
func WithWorkers(n int) Option {
	return func(s *Searcher) {
		s.workers = n
	}
}

// WithBatchSize sets how many sequences each parallel round measures
// before reporting them.
func WithBatchSize(n int) Option {
	return func(s *Searcher) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Searcher) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRunID overrides the generated run id.
func WithRunID(id string) Option {
	return func(s *Searcher) {
		s.runID = id
	}
}

// Searcher runs order searches over a fixed pool.
type Searcher struct {
	pool      Pool
	maxOrder  int
	workers   int
	batchSize int
	runID     string
	logger    *zap.Logger
}

// New creates a Searcher for pool.
func New(pool Pool, opts ...Option) (*Searcher, error) {
	if err := pool.Validate(); err != nil {
		return nil, err
	}

	s := &Searcher{
		pool:      append(Pool(nil), pool...),
		workers:   1,
		batchSize: defaultBatchSize,
		runID:     uuid.NewString(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.maxOrder < 0 {
		return nil, fmt.Errorf("search: negative max order %d", s.maxOrder)
	}
	s.logger = s.logger.With(zap.String("run_id", s.runID))
	return s, nil
}

// RunID returns the id attached to every result of this searcher.
func (s *Searcher) RunID() string {
	return s.runID
}

// Pool returns a copy of the searched pool.
func (s *Searcher) Pool() Pool {
	return append(Pool(nil), s.pool...)
}

// Run measures every sequence of the given depth and passes each result
// to report. It stops at the first error from a measurement or from
// report, or when ctx is done.
func (s *Searcher) Run(ctx context.Context, depth int, report ReportFunc) (*Summary, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}

	start := time.Now()
	summary := newSummary(s.runID, depth)
	s.logger.Info("Search depth started",
		zap.Int("depth", depth),
		zap.Int("pool_size", len(s.pool)),
		zap.Uint64("sequences", CountSequences(len(s.pool), depth)),
		zap.Int("workers", s.workers))

	emit := func(seq []types.Move, order int) error {
		summary.add(order)
		if report == nil {
			return nil
		}
		return report(Result{RunID: s.runID, Depth: depth, Order: order, Sequence: seq})
	}

	var err error
	if s.workers > 1 {
		err = s.runParallel(ctx, depth, emit)
	} else {
		err = s.runSequential(ctx, depth, emit)
	}

	summary.Elapsed = time.Since(start)
	if err != nil {
		s.logger.Warn("Search depth aborted",
			zap.Int("depth", depth),
			zap.Int("measured", summary.Sequences),
			zap.Error(err))
		return summary, err
	}

	s.logger.Info("Search depth finished",
		zap.Int("depth", depth),
		zap.Int("sequences", summary.Sequences),
		zap.Int("min_order", summary.MinOrder),
		zap.Int("max_order", summary.MaxOrder),
		zap.Duration("elapsed", summary.Elapsed))
	return summary, nil
}

// RunRange runs every depth from..to inclusive and returns one summary
// per completed depth.
func (s *Searcher) RunRange(ctx context.Context, from, to int, report ReportFunc) ([]*Summary, error) {
	if from < 1 || to < from {
		return nil, fmt.Errorf("%w: range %d..%d", ErrInvalidDepth, from, to)
	}

	var summaries []*Summary
	for depth := from; depth <= to; depth++ {
		summary, err := s.Run(ctx, depth, report)
		if err != nil {
			return summaries, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Searcher) runSequential(ctx context.Context, depth int, emit func([]types.Move, int) error) error {
	var err error
	Enumerate(s.pool, depth, func(seq []types.Move) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		var order int
		order, err = MeasureOrder(seq, s.maxOrder)
		if err != nil {
			return false
		}
		err = emit(append([]types.Move(nil), seq...), order)
		return err == nil
	})
	return err
}

func (s *Searcher) runParallel(ctx context.Context, depth int, emit func([]types.Move, int) error) error {
	batch := make([][]types.Move, 0, s.batchSize)
	orders := make([]int, s.batchSize)

	flush := func() error {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i, seq := range batch {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				order, err := MeasureOrder(seq, s.maxOrder)
				if err != nil {
					return err
				}
				orders[i] = order
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		for i, seq := range batch {
			if err := emit(seq, orders[i]); err != nil {
				return err
			}
		}
		batch = batch[:0]
		return nil
	}

	var err error
	Enumerate(s.pool, depth, func(seq []types.Move) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		batch = append(batch, append([]types.Move(nil), seq...))
		if len(batch) == s.batchSize {
			err = flush()
		}
		return err == nil
	})
	if err != nil {
		return err
	}
	if len(batch) > 0 {
		return flush()
	}
	return nil
}
