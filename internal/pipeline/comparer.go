package pipeline

import (
	"pairdist/internal/engine"
	"pairdist/internal/record"
)

// Comparer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Comparer interface {
	Compare(i, j int, a, b *record.Record) (engine.Result, bool)
}
