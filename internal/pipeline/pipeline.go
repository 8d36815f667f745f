package pipeline

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"pairdist/internal/engine"
	"pairdist/internal/record"
)

// Config controls the pair evaluation.
type Config struct {
	Threads int  // number of rows evaluated concurrently (>=1)
	Ordered bool // deliver results in (i, j) enumeration order
	Window  int  // max rows awaiting emission when Ordered; below Threads means 4*Threads
}

// Stats summarizes one run.
type Stats struct {
	Records   int
	Evaluated int
	Kept      int
}

// PairCount returns n*(n-1)/2, the number of unordered pairs of n records.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

type row struct {
	i    int
	hits []engine.Result
	n    int // pairs evaluated
}

// ForEachPair evaluates every pair (i, j) with i < j. Work is split by row:
// one task compares recs[i] with every later record. Kept results are passed
// to visit from a single goroutine. It returns the first error encountered
// (including context cancellation).
func ForEachPair(
	ctx context.Context,
	cfg Config,
	recs []record.Record,
	cmp Comparer,
	visit func(engine.Result) error,
) (Stats, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Window < cfg.Threads {
		cfg.Window = cfg.Threads * 4
	}
	st := Stats{Records: len(recs)}
	if len(recs) < 2 {
		return st, nil
	}

	g, gctx := errgroup.WithContext(ctx)

	rows := make(chan row, cfg.Threads*2)
	window := semaphore.NewWeighted(int64(cfg.Window))
	var evaluated atomic.Int64

	// Collector
	g.Go(func() error {
		c := collector{ordered: cfg.Ordered, pending: make(map[int]row)}
		emit := func(res engine.Result) error {
			if err := visit(res); err != nil {
				return err
			}
			st.Kept++
			return nil
		}
		done := func() {
			if cfg.Ordered {
				window.Release(1)
			}
		}
		for r := range rows {
			if err := c.add(r, emit, done); err != nil {
				return err
			}
		}
		return nil
	})

	// Feed rows; the last record has no later partner.
	var workers errgroup.Group
	workers.SetLimit(cfg.Threads)
	var feedErr error
	for i := 0; i < len(recs)-1; i++ {
		if cfg.Ordered {
			if err := window.Acquire(gctx, 1); err != nil {
				feedErr = err
				break
			}
		}
		if gctx.Err() != nil {
			feedErr = gctx.Err()
			break
		}
		i := i
		workers.Go(func() error {
			r := compareRow(gctx, i, recs, cmp)
			evaluated.Add(int64(r.n))
			select {
			case rows <- r:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	}
	werr := workers.Wait()
	close(rows)
	gerr := g.Wait()
	st.Evaluated = int(evaluated.Load())

	switch {
	case gerr != nil:
		return st, gerr
	case ctx.Err() != nil:
		return st, ctx.Err()
	case werr != nil:
		return st, werr
	}
	return st, feedErr
}

func compareRow(ctx context.Context, i int, recs []record.Record, cmp Comparer) row {
	r := row{i: i}
	a := &recs[i]
	for j := i + 1; j < len(recs); j++ {
		if j&1023 == 0 && ctx.Err() != nil {
			return r
		}
		res, keep := cmp.Compare(i, j, a, &recs[j])
		r.n++
		if keep {
			r.hits = append(r.hits, res)
		}
	}
	return r
}
