// Package seqio reads label/sequence line pairs into records.
//
// The format is two lines per record: a label line followed by a single
// sequence line. There is no '>' marker and no multi-line folding.
package seqio

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"pairdist/internal/record"
)

// ErrInvalidUTF8 is returned for input lines that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// ReadPairs scans r two lines at a time and calls emit with one record per
// pair. A trailing unpaired line is dropped. Return a non-nil error from emit
// to stop early.
func ReadPairs(ctx context.Context, r io.Reader, emit func(record.Record) error) error {
	sc := bufio.NewScanner(r)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		label   string
		haveLbl bool
		lineNo  int
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		lineNo++
		line := sc.Bytes()
		if !utf8.Valid(line) {
			return fmt.Errorf("seqio: line %d: %w", lineNo, ErrInvalidUTF8)
		}
		if !haveLbl {
			label = strings.TrimSpace(string(line))
			haveLbl = true
			continue
		}
		seq := bytes.Clone(bytes.TrimSpace(line))
		haveLbl = false
		if err := emit(record.New(label, seq)); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("seqio: scan: %w", err)
	}
	if haveLbl {
		slog.Debug("dropping unpaired trailing line", "line", lineNo, "label", label)
	}
	return nil
}

// ReadAll collects every record from r.
func ReadAll(ctx context.Context, r io.Reader) ([]record.Record, error) {
	var out []record.Record
	err := ReadPairs(ctx, r, func(rec record.Record) error {
		out = append(out, rec)
		return nil
	})
	return out, err
}

// ReadPaths reads each path in order and concatenates the records. No paths
// means stdin.
func ReadPaths(ctx context.Context, paths []string) ([]record.Record, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var out []record.Record
	for _, p := range paths {
		rc, err := Open(p)
		if err != nil {
			return nil, fmt.Errorf("seqio: open %s: %w", p, err)
		}
		err = ReadPairs(ctx, rc, func(rec record.Record) error {
			out = append(out, rec)
			return nil
		})
		cerr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if cerr != nil {
			return nil, fmt.Errorf("seqio: close %s: %w", p, cerr)
		}
	}
	return out, nil
}
