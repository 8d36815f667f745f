// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"pairdist/internal/appcore"
	"pairdist/internal/cli"
	"pairdist/internal/cmdutil"
	"pairdist/internal/version"
	"pairdist/internal/writers"
)

// flushOrCode flushes w and maps the result to an exit code.
func flushOrCode(w *bufio.Writer, stderr io.Writer, code int) int {
	if err := w.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("pairdist")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flushOrCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flushOrCode(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pairdist version %s\n", version.Version)
		return flushOrCode(outw, stderr, 0)
	}

	log := cmdutil.NewLogger(stderr, cmdutil.LogOptions{
		Format: opts.LogFormat, Quiet: opts.Quiet, Verbose: opts.Verbose,
	})
	prev := slog.Default()
	slog.SetDefault(log)
	defer slog.SetDefault(prev)

	coreOpts := appcore.Options{
		Inputs:          opts.Inputs,
		Threshold:       opts.Threshold,
		Threads:         opts.Threads,
		Unordered:       opts.Unordered,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	writer := appcore.NewPairWriterFactory(opts.Output, opts.Header)
	return appcore.Run(parent, stdout, stderr, log, coreOpts, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
