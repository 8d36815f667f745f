package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pairdist/internal/engine"
	"pairdist/internal/record"
)

// Compile-time check: the concrete engine satisfies the minimal contract.
var _ Comparer = (*engine.Engine)(nil)

// keepAll keeps every pair; earlier rows are made slower so that parallel
// rows finish out of order.
type keepAll struct {
	calls atomic.Int64
	n     int
}

func (k *keepAll) Compare(i, j int, a, b *record.Record) (engine.Result, bool) {
	k.calls.Add(1)
	if j == i+1 {
		time.Sleep(time.Duration(k.n-i) * 50 * time.Microsecond)
	}
	return engine.Result{A: a, B: b, I: i, J: j, Distance: float64(i*1000 + j)}, true
}

func makeRecords(n int) []record.Record {
	out := make([]record.Record, n)
	for i := range out {
		out[i] = record.New(fmt.Sprintf("r%d", i), []byte("ACGT"))
	}
	return out
}

type ij struct{ I, J int }

func run(t *testing.T, cfg Config, recs []record.Record, cmp Comparer) ([]ij, Stats) {
	t.Helper()
	var got []ij
	st, err := ForEachPair(context.Background(), cfg, recs, cmp, func(r engine.Result) error {
		got = append(got, ij{r.I, r.J})
		return nil
	})
	require.NoError(t, err)
	return got, st
}

func enumeration(n int) []ij {
	var out []ij
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, ij{i, j})
		}
	}
	return out
}

func TestPairCount(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 0, 2: 1, 3: 3, 10: 45, 1000: 499500} {
		assert.Equalf(t, want, PairCount(n), "n=%d", n)
	}
}

func TestForEachPair_EvaluatesEveryPairOnce(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 17} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			cmp := &keepAll{n: n}
			got, st := run(t, Config{Threads: 4, Ordered: true}, makeRecords(n), cmp)
			assert.Equal(t, PairCount(n), int(cmp.calls.Load()))
			assert.Equal(t, PairCount(n), st.Evaluated)
			assert.Equal(t, PairCount(n), st.Kept)
			assert.Equal(t, n, st.Records)
			assert.Len(t, got, PairCount(n))
		})
	}
}

func TestForEachPair_OrderedMatchesEnumeration(t *testing.T) {
	const n = 40
	want := enumeration(n)
	for _, threads := range []int{1, 2, 8} {
		got, _ := run(t, Config{Threads: threads, Ordered: true}, makeRecords(n), &keepAll{n: n})
		assert.Equalf(t, want, got, "threads=%d", threads)
	}
}

func TestForEachPair_SmallWindowStillOrdered(t *testing.T) {
	const n = 25
	got, _ := run(t, Config{Threads: 3, Ordered: true, Window: 3}, makeRecords(n), &keepAll{n: n})
	assert.Equal(t, enumeration(n), got)
}

func TestForEachPair_UnorderedSameSet(t *testing.T) {
	const n = 30
	got, st := run(t, Config{Threads: 6}, makeRecords(n), &keepAll{n: n})
	assert.Equal(t, PairCount(n), st.Kept)
	sort.Slice(got, func(a, b int) bool {
		if got[a].I != got[b].I {
			return got[a].I < got[b].I
		}
		return got[a].J < got[b].J
	})
	assert.Equal(t, enumeration(n), got)
}

func TestForEachPair_FiltersWithEngine(t *testing.T) {
	base := strings.Repeat("ACGT", 25)
	near := []byte(base)
	near[0] = 'C'
	recs := []record.Record{
		record.New("seq1", []byte("AAAACCCCGGGGTTTT")),
		record.New("a", []byte(base)),
		record.New("seq3", []byte("TTTTTTTTTTTTTTTT")),
		record.New("b", near),
		record.New("gaps", []byte("----")),
	}
	var kept []string
	st, err := ForEachPair(context.Background(), Config{Threads: 2, Ordered: true}, recs, engine.New(engine.Config{}),
		func(r engine.Result) error {
			kept = append(kept, r.A.Label()+" "+r.B.Label())
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, []string{"a b"}, kept)
	assert.Equal(t, 10, st.Evaluated)
	assert.Equal(t, 1, st.Kept)
}

func TestForEachPair_VisitErrorStops(t *testing.T) {
	boom := errors.New("boom")
	n := 0
	_, err := ForEachPair(context.Background(), Config{Threads: 4, Ordered: true}, makeRecords(50), &keepAll{n: 50},
		func(engine.Result) error {
			n++
			if n == 3 {
				return boom
			}
			return nil
		})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, n)
}

func TestForEachPair_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cmp := &keepAll{n: 100}
	_, err := ForEachPair(ctx, Config{Threads: 2, Ordered: true}, makeRecords(100), cmp, func(engine.Result) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, cmp.calls.Load(), int64(PairCount(100)))
}
