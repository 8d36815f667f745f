package appcore

import (
	"io"

	"pairdist/internal/engine"
	"pairdist/internal/output"
	"pairdist/internal/writers"
)

// ---------------- Pair writer ----------------

type PairWriterFactory struct {
	Format string
	Header bool
}

func NewPairWriterFactory(format string, header bool) PairWriterFactory {
	return PairWriterFactory{Format: format, Header: header}
}

// Ordered reports whether the format is a single document whose element order
// should not depend on scheduling.
func (w PairWriterFactory) Ordered() bool {
	return w.Format == output.FormatJSON
}

func (w PairWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartPairWriter(out, w.Format, writers.Options{Header: w.Header}, bufSize)
}
