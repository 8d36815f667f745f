// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"pairdist/internal/engine"
	"pairdist/internal/output"
)

// Options tunes a pair writer.
type Options struct {
	Header bool // TSV header row
}

// StreamFunc consumes results until in is closed.
type StreamFunc func(w io.Writer, in <-chan engine.Result, o Options) error

// PairWriters maps an output format to its handler.
var PairWriters = map[string]StreamFunc{}

// RegisterPair installs fn for format (last wins).
func RegisterPair(format string, fn StreamFunc) { PairWriters[format] = fn }

// Formats returns the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(PairWriters))
	for f := range PairWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterPair(output.FormatText, func(w io.Writer, in <-chan engine.Result, _ Options) error {
		return output.StreamText(w, in)
	})
	RegisterPair(output.FormatTSV, func(w io.Writer, in <-chan engine.Result, o Options) error {
		return output.StreamTSV(w, in, o.Header)
	})
	RegisterPair(output.FormatJSON, func(w io.Writer, in <-chan engine.Result, _ Options) error {
		var buf []engine.Result
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(w, buf)
	})
}

func lookup(format string) (StreamFunc, error) {
	fn, ok := PairWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown pair format %q (no writer registered)", format)
	}
	return fn, nil
}

// IsBrokenPipe reports whether an error is a broken pipe / closed pipe.
// Useful when downstream consumers (like `head`) close early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
