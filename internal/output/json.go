// internal/output/json.go
package output

import (
	"io"

	"pairdist/internal/engine"
	"pairdist/internal/jsonutil"
	"pairdist/pkg/api"
)

// ToAPIPair converts a domain Result to the stable wire schema (v1).
func ToAPIPair(r engine.Result) api.PairV1 {
	return api.PairV1{A: r.A.Label(), B: r.B.Label(), Distance: r.Distance}
}

// WriteJSON writes a single JSON array of v1 pairs (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	out := make([]api.PairV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIPair(r))
	}
	return jsonutil.EncodePretty(w, out)
}
