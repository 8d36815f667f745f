package output

// Output formats accepted by --output.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// TSVHeader is the canonical header row for TSV output.
const TSVHeader = "a\tb\tdistance"

// Formats lists the valid formats in help order.
var Formats = []string{FormatText, FormatTSV, FormatJSON, FormatJSONL}
