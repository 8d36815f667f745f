// Package pipeline enumerates every unordered pair of records, evaluates them
// through a Comparer in parallel, and calls a visit callback for kept pairs.
//
// The only contract to implement is Comparer (Compare).
// This keeps the pipeline swappable and testable.
package pipeline
