// internal/writers/jsonl.go
package writers

import (
	"io"

	"pairdist/internal/engine"
	"pairdist/internal/jsonlutil"
	"pairdist/internal/output"
)

// StartPairJSONLWriter streams each engine.Result as one JSON line (v1).
func StartPairJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return jsonlutil.Start(out, bufSize, output.ToAPIPair, IsBrokenPipe)
}
