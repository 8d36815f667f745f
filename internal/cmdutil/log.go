package cmdutil

import (
	"io"
	"log/slog"
)

// LogOptions selects the diagnostic logger written to stderr.
type LogOptions struct {
	Format  string // "text" (default) or "json"
	Quiet   bool   // errors only
	Verbose bool   // include debug records
}

// NewLogger builds a slog.Logger on dst. Output data never goes through it.
func NewLogger(dst io.Writer, o LogOptions) *slog.Logger {
	level := slog.LevelInfo
	switch {
	case o.Quiet:
		level = slog.LevelError
	case o.Verbose:
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if o.Format == "json" {
		h = slog.NewJSONHandler(dst, hopts)
	} else {
		h = slog.NewTextHandler(dst, hopts)
	}
	return slog.New(h)
}
