// Package writers turns evaluated pairs into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text/TSV/JSON/JSONL).
//   - Engine stays domain-only; Pipeline stays orchestration-only.
//   - JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
