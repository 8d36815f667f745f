// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"pairdist/internal/engine"
	"pairdist/internal/pipeline"
	"pairdist/internal/record"
	"pairdist/internal/runutil"
	"pairdist/internal/seqio"
	"pairdist/internal/writers"
)

type Options struct {
	Inputs []string

	Threshold float64

	Threads   int
	Unordered bool

	NoMatchExitCode int
}

type WriterFactory interface {
	Ordered() bool // whether the format relies on enumeration order
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// Run loads every record, evaluates all pairs and writes the kept ones.
// It returns the process exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	log *slog.Logger,
	o Options,
	wf WriterFactory,
) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	recs, err := seqio.ReadPaths(ctx, o.Inputs)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, err)
		return 3
	}
	return RunRecords(ctx, stdout, stderr, log, o, recs, wf)
}

// RunRecords is Run on records that are already loaded.
func RunRecords(
	ctx context.Context,
	stdout, stderr io.Writer,
	log *slog.Logger,
	o Options,
	recs []record.Record,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	if o.Unordered && wf.Ordered() {
		log.Warn("--unordered has no effect on this output format")
	}
	log.Debug("records loaded", "records", len(recs), "pairs", pipeline.PairCount(len(recs)), "threads", thr)

	eng := engine.New(engine.Config{Threshold: o.Threshold})
	inCh, writeErr := wf.Start(outw, runutil.WriterBuffer(thr))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	st, perr := pipeline.ForEachPair(
		ctx,
		pipeline.Config{Threads: thr, Ordered: !o.Unordered || wf.Ordered()},
		recs,
		eng,
		func(r engine.Result) error {
			select {
			case inCh <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, perr)
		return 3
	}
	log.Debug("pairs evaluated", "evaluated", st.Evaluated, "kept", st.Kept)
	if st.Kept == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
