// internal/output/text.go
package output

import (
	"io"
	"strconv"

	"pairdist/internal/engine"
)

// FormatDistance renders d in Go's shortest default float form.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'g', -1, 64)
}

func appendRow(dst []byte, r engine.Result, sep byte) []byte {
	dst = append(dst, r.A.Label()...)
	dst = append(dst, sep)
	dst = append(dst, r.B.Label()...)
	dst = append(dst, sep)
	dst = append(dst, FormatDistance(r.Distance)...)
	return append(dst, '\n')
}

// StreamText writes "<a> <b> <distance>" lines as results arrive.
func StreamText(w io.Writer, in <-chan engine.Result) error {
	return stream(w, in, ' ')
}

// StreamTSV writes tab-separated rows, optionally preceded by TSVHeader.
func StreamTSV(w io.Writer, in <-chan engine.Result, header bool) error {
	if header {
		if _, err := io.WriteString(w, TSVHeader+"\n"); err != nil {
			return err
		}
	}
	return stream(w, in, '\t')
}

func stream(w io.Writer, in <-chan engine.Result, sep byte) error {
	var line []byte
	for r := range in {
		line = appendRow(line[:0], r, sep)
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
