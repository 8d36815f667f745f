// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"pairdist/internal/version"
)

// Usage installs the tool's help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – pairwise Jukes-Cantor distances\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage: %s [flags] [file ...]\n\n", name)
		fmt.Fprintln(out, "Input is read two lines per record (label, then sequence) from the")
		fmt.Fprintln(out, "given files in order, or from STDIN when none (or '-') is given.")
		fmt.Fprintln(out, "gzip and zstd files are decompressed automatically.")

		fmt.Fprintln(out, "\nDistance:")
		fmt.Fprintf(out, "      --threshold float       Report pairs with distance below this [%s]\n", def("threshold"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --unordered             Emit pairs as they finish, not in input order [%s]\n", def("unordered"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | tsv | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --header                Header row for tsv [%s]\n", def("header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no pair is reported [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Only log errors [%s]\n", def("quiet"))
		fmt.Fprintf(out, "      --verbose               Log debug details [%s]\n", def("verbose"))
		fmt.Fprintf(out, "      --log-format string     Log format: text | json [%s]\n", def("log-format"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
