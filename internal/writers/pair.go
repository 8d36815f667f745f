package writers

import (
	"io"

	"pairdist/internal/engine"
	"pairdist/internal/output"
)

// StartPairWriter spins up a writer goroutine for engine.Result items.
// The returned error channel yields exactly one value once in is closed and
// everything has been written. Input is always drained, even after an error.
func StartPairWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if format == output.FormatJSONL {
		return StartPairJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookup(format)
		if err == nil {
			err = fn(out, in, o)
		}
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
