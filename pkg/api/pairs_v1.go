// pkg/api/pairs_v1.go
package api

// PairV1 is the stable JSON/JSONL schema for a reported pair.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type PairV1 struct {
	A        string  `json:"a"`
	B        string  `json:"b"`
	Distance float64 `json:"distance"`
}
