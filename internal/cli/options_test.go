package cli

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(argv ...string) (Options, error) {
	fs := NewFlagSet("pairdist")
	fs.SetOutput(io.Discard)
	return ParseArgs(fs, argv)
}

func TestParseArgs_Defaults(t *testing.T) {
	o, err := parse()
	require.NoError(t, err)
	assert.Equal(t, 0.04, o.Threshold)
	assert.Equal(t, 0, o.Threads)
	assert.False(t, o.Unordered)
	assert.Equal(t, "text", o.Output)
	assert.Equal(t, 0, o.NoMatchExitCode)
	assert.Empty(t, o.Inputs)
}

func TestParseArgs_Interleaved(t *testing.T) {
	o, err := parse("a.txt", "-t", "3", "--output", "jsonl", "-", "--threshold=0.1", "--unordered")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "-"}, o.Inputs)
	assert.Equal(t, 3, o.Threads)
	assert.Equal(t, "jsonl", o.Output)
	assert.Equal(t, 0.1, o.Threshold)
	assert.True(t, o.Unordered)
}

func TestParseArgs_Help(t *testing.T) {
	_, err := parse("-h")
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestParseArgs_Version(t *testing.T) {
	o, err := parse("--version", "--output", "bogus")
	require.NoError(t, err, "version short-circuits validation")
	assert.True(t, o.Version)
}

func TestParseArgs_Invalid(t *testing.T) {
	cases := map[string][]string{
		"zero threshold":     {"--threshold", "0"},
		"negative threshold": {"--threshold", "-1"},
		"inf threshold":      {"--threshold", "+Inf"},
		"nan threshold":      {"--threshold", "NaN"},
		"threads":            {"--threads", "-2"},
		"output":             {"-o", "xml"},
		"log format":         {"--log-format", "yaml"},
		"exit code":          {"--no-match-exit-code", "300"},
		"unknown flag":       {"--frobnicate"},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parse(argv...)
			assert.Error(t, err)
		})
	}
}

func TestUsage_MentionsFlags(t *testing.T) {
	fs := NewFlagSet("pairdist")
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	_, _ = ParseArgs(fs, []string{"-h"})
	fs.Usage()
	for _, s := range []string{"--threshold", "--threads", "--output", "[0.04]"} {
		assert.Contains(t, buf.String(), s)
	}
}
