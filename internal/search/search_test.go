package search

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"

	"github.com/SeamusWaldron/gocube_order/internal/cube"
	"github.com/SeamusWaldron/gocube_order/pkg/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(pool Pool, depth int) []string {
	var out []string
	Enumerate(pool, depth, func(seq []types.Move) bool {
		out = append(out, types.FormatMoves(seq))
		return true
	})
	return out
}

func TestEnumerateOrderAndPruning(t *testing.T) {
	got := collect(Pool{types.R, types.U}, 3)
	want := []string{
		"R R U",
		"R U R",
		"R U U",
		"U R R",
		"U R U",
		"U U R",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("enumeration mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerateNeverRepeatsThreeTimes(t *testing.T) {
	Enumerate(FacePool(), 4, func(seq []types.Move) bool {
		for i := 2; i < len(seq); i++ {
			if seq[i] == seq[i-1] && seq[i] == seq[i-2] {
				t.Fatalf("%s contains a run of three", types.FormatMoves(seq))
			}
		}
		return true
	})
}

func TestEnumerateCountMatchesCountSequences(t *testing.T) {
	pools := []Pool{
		{types.R},
		{types.R, types.U},
		{types.R, types.U, types.F},
		FacePool(),
	}
	for _, pool := range pools {
		for depth := 0; depth <= 4; depth++ {
			n := uint64(0)
			Enumerate(pool, depth, func([]types.Move) bool {
				n++
				return true
			})
			if want := CountSequences(len(pool), depth); n != want {
				t.Errorf("pool %d depth %d: enumerated %d, CountSequences %d", len(pool), depth, n, want)
			}
		}
	}
}

func TestCountSequences(t *testing.T) {
	tests := []struct {
		pool, depth int
		want        uint64
	}{
		{3, 0, 1},
		{3, 1, 3},
		{3, 2, 9},
		{3, 3, 24},
		{3, 4, 66},
		{1, 2, 1},
		{1, 3, 0},
		{0, 2, 0},
		{12, 3, 1716},
		{18, 3, 5814},
	}
	for _, tt := range tests {
		if got := CountSequences(tt.pool, tt.depth); got != tt.want {
			t.Errorf("CountSequences(%d, %d) = %d, want %d", tt.pool, tt.depth, got, tt.want)
		}
	}
	if got := CountSequences(18, 100); got != ^uint64(0) {
		t.Errorf("CountSequences should saturate, got %d", got)
	}
}

func TestEnumerateStopsEarly(t *testing.T) {
	n := 0
	Enumerate(DefaultPool(), 3, func([]types.Move) bool {
		n++
		return n < 5
	})
	if n != 5 {
		t.Errorf("enumeration continued after stop: %d calls", n)
	}
}

func TestMeasureOrder(t *testing.T) {
	order, err := MeasureOrder([]types.Move{types.R}, 0)
	if err != nil || order != 4 {
		t.Errorf("order(R) = %d, %v; want 4", order, err)
	}

	order, err = MeasureOrder(nil, 0)
	if err != nil || order != 1 {
		t.Errorf("order of empty sequence = %d, %v; want 1", order, err)
	}

	order, err = MeasureOrder([]types.Move{types.R, types.RPrime}, 0)
	if err != nil || order != 1 {
		t.Errorf("order(R R') = %d, %v; want 1", order, err)
	}
}

func TestMeasureOrderRU(t *testing.T) {
	first, err := MeasureOrder(types.RU, 0)
	if err != nil {
		t.Fatal(err)
	}
	second, err := MeasureOrder(types.RU, 0)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("order(R U) not reproducible: %d vs %d", first, second)
	}
	if want := cube.SequencePermutation(types.RU).Order(); first != want {
		t.Errorf("order(R U) = %d, permutation order %d", first, want)
	}
	if first <= 4 {
		t.Errorf("order(R U) = %d, expected more than a single face turn", first)
	}

	c := cube.New()
	for i := 1; i <= first; i++ {
		c.ApplyMoves(types.RU)
		if c.IsSolved() != (i == first) {
			t.Fatalf("after %d repetitions solved = %v", i, c.IsSolved())
		}
	}
}

func TestMeasureOrderCap(t *testing.T) {
	if _, err := MeasureOrder(types.RU, 3); !errors.Is(err, ErrOrderExceeded) {
		t.Errorf("expected ErrOrderExceeded, got %v", err)
	}
	if order, err := MeasureOrder([]types.Move{types.R}, 4); err != nil || order != 4 {
		t.Errorf("cap equal to the order should pass, got %d, %v", order, err)
	}
}

func TestRunReportsEverySequence(t *testing.T) {
	s, err := New(Pool{types.R, types.U, types.F}, WithRunID("test-run"))
	if err != nil {
		t.Fatal(err)
	}

	var results []Result
	summary, err := s.Run(context.Background(), 3, func(r Result) error {
		results = append(results, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 24 || summary.Sequences != 24 {
		t.Fatalf("got %d results, summary %d, want 24", len(results), summary.Sequences)
	}

	total := 0
	for _, n := range summary.Orders {
		total += n
	}
	if total != 24 {
		t.Errorf("summary histogram holds %d sequences", total)
	}

	for _, r := range results {
		if r.RunID != "test-run" || r.Depth != 3 {
			t.Errorf("unexpected result header %+v", r)
		}
		want := cube.SequencePermutation(r.Sequence).Order()
		if r.Order != want {
			t.Errorf("%s: order %d, permutation order %d", r.Name(), r.Order, want)
		}
		if r.Order < summary.MinOrder || r.Order > summary.MaxOrder {
			t.Errorf("%s: order %d outside summary range", r.Name(), r.Order)
		}
	}

	if results[0].Name() != "RRU" || results[0].Notation() != "R R U" {
		t.Errorf("first result = %q / %q", results[0].Name(), results[0].Notation())
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	pool := Pool{types.R, types.U, types.F, types.M}

	run := func(opts ...Option) []Result {
		s, err := New(pool, append(opts, WithRunID("same"))...)
		if err != nil {
			t.Fatal(err)
		}
		var out []Result
		if _, err := s.RunRange(context.Background(), 1, 4, func(r Result) error {
			out = append(out, r)
			return nil
		}); err != nil {
			t.Fatal(err)
		}
		return out
	}

	sequential := run()
	parallel := run(WithWorkers(4), WithBatchSize(7))
	if diff := cmp.Diff(sequential, parallel); diff != "" {
		t.Errorf("parallel results differ (-sequential +parallel):\n%s", diff)
	}
}

func TestRunStopsOnReportError(t *testing.T) {
	stop := errors.New("stop")
	for _, workers := range []int{1, 3} {
		s, err := New(FacePool(), WithWorkers(workers), WithBatchSize(10))
		if err != nil {
			t.Fatal(err)
		}
		n := 0
		_, err = s.Run(context.Background(), 2, func(Result) error {
			n++
			if n == 15 {
				return stop
			}
			return nil
		})
		if !errors.Is(err, stop) {
			t.Errorf("workers=%d: got %v, want stop", workers, err)
		}
		if n != 15 {
			t.Errorf("workers=%d: reported %d results after stop", workers, n)
		}
	}
}

func TestRunHonoursCancellation(t *testing.T) {
	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s, err := New(DefaultPool(), WithWorkers(workers))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := s.Run(ctx, 3, nil); !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: got %v, want context.Canceled", workers, err)
		}
	}
}

func TestRunCapSurfacesError(t *testing.T) {
	s, err := New(Pool{types.R, types.U}, WithMaxOrder(4), WithWorkers(2))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(context.Background(), 2, nil); !errors.Is(err, ErrOrderExceeded) {
		t.Errorf("got %v, want ErrOrderExceeded", err)
	}
}

func TestInvalidArguments(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrEmptyPool) {
		t.Errorf("empty pool: %v", err)
	}
	if _, err := New(Pool{types.R, types.R}); !errors.Is(err, ErrDuplicateMove) {
		t.Errorf("duplicate pool: %v", err)
	}
	if _, err := New(FacePool(), WithMaxOrder(-1)); err == nil {
		t.Error("negative max order accepted")
	}

	s, err := New(FacePool())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Run(context.Background(), 0, nil); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("depth 0: %v", err)
	}
	if _, err := s.RunRange(context.Background(), 3, 2, nil); !errors.Is(err, ErrInvalidDepth) {
		t.Errorf("reversed range: %v", err)
	}
}

func TestParsePool(t *testing.T) {
	pool, err := ParsePool([]string{"U", "R'", "M"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"U", "R'", "M"}, pool.Names()); diff != "" {
		t.Errorf("names mismatch:\n%s", diff)
	}
	if _, err := ParsePool([]string{"U", "Q"}); !errors.Is(err, types.ErrInvalidNotation) {
		t.Errorf("bad notation: %v", err)
	}
	if _, err := ParsePool([]string{"U", "U"}); !errors.Is(err, ErrDuplicateMove) {
		t.Errorf("duplicate: %v", err)
	}
	if len(DefaultPool()) != types.NumMoves || len(FacePool()) != 12 {
		t.Error("unexpected built-in pool sizes")
	}
	if err := FacePool().Validate(); err != nil {
		t.Errorf("FacePool invalid: %v", err)
	}
}

func TestSummary(t *testing.T) {
	s := newSummary("id", 2)
	for _, o := range []int{6, 4, 6, 105} {
		s.add(o)
	}
	if s.MinOrder != 4 || s.MaxOrder != 105 || s.Sequences != 4 {
		t.Errorf("summary = %+v", s)
	}
	if diff := cmp.Diff([]int{4, 6, 105}, s.DistinctOrders()); diff != "" {
		t.Errorf("distinct orders mismatch:\n%s", diff)
	}
	if s.MostCommonOrder() != 6 {
		t.Errorf("most common = %d", s.MostCommonOrder())
	}
}
