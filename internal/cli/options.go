// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"slices"
	"strings"

	"pairdist/internal/cliutil"
	"pairdist/internal/engine"
	"pairdist/internal/output"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	Inputs []string // files, globs expanded; empty means stdin

	// Distance
	Threshold float64

	// Performance
	Threads   int
	Unordered bool

	// Output
	Output          string
	Header          bool
	NoMatchExitCode int

	// Misc
	Quiet     bool
	Verbose   bool
	LogFormat string
	Version   bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError and the tool's usage.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// register wires every flag onto fs.
func register(fs *flag.FlagSet, o *Options, help *bool) {
	fs.Float64Var(&o.Threshold, "threshold", engine.DefaultThreshold, "report pairs with distance strictly below this")

	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs)")
	fs.IntVar(&o.Threads, "t", 0, "alias of --threads")
	fs.BoolVar(&o.Unordered, "unordered", false, "emit pairs as they finish instead of input order")

	fs.StringVar(&o.Output, "output", output.FormatText, "output: "+strings.Join(output.Formats, " | "))
	fs.StringVar(&o.Output, "o", output.FormatText, "alias of --output")
	fs.BoolVar(&o.Header, "header", false, "print a header row (tsv)")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no pair is reported")

	fs.BoolVar(&o.Quiet, "quiet", false, "only log errors")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&o.Verbose, "verbose", false, "log debug details")
	fs.StringVar(&o.LogFormat, "log-format", "text", "log format: text | json")
	fs.BoolVar(&o.Version, "v", false, "print version and exit")
	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(help, "h", false, "show help")
	fs.BoolVar(help, "help", false, "show help")
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags and input paths may be interleaved.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	register(fs, &opt, &help)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	posArgs = append(posArgs, fs.Args()...)
	inputs, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Inputs = inputs
	return opt, Validate(&opt)
}

// Validate applies the CLI invariants.
func Validate(o *Options) error {
	if math.IsNaN(o.Threshold) || math.IsInf(o.Threshold, 0) || o.Threshold <= 0 {
		return errors.New("--threshold must be a finite number > 0")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if !slices.Contains(output.Formats, o.Output) {
		return fmt.Errorf("invalid --output %q", o.Output)
	}
	if o.LogFormat != "text" && o.LogFormat != "json" {
		return fmt.Errorf("invalid --log-format %q", o.LogFormat)
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
