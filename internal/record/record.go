// Package record holds the in-memory sequence records compared by the engine.
package record

import "github.com/bits-and-blooms/bitset"

// Record is a labelled sequence. It is immutable once built by New and may be
// read from any number of goroutines.
type Record struct {
	label string
	seq   []byte
	mask  *bitset.BitSet // bit i set iff seq[i] is a canonical nucleotide
}

// New builds a Record. seq is retained; callers must not modify it afterwards.
func New(label string, seq []byte) Record {
	mask := bitset.New(uint(len(seq)))
	for i, b := range seq {
		if IsNucleotide(b) {
			mask.Set(uint(i))
		}
	}
	return Record{label: label, seq: seq, mask: mask}
}

func (r *Record) Label() string { return r.label }

// Seq returns the raw sequence bytes. The slice is shared and read-only.
func (r *Record) Seq() []byte { return r.seq }

func (r *Record) Len() int { return len(r.seq) }

// Informative returns the number of canonical nucleotide positions.
func (r *Record) Informative() int {
	if r.mask == nil {
		return 0
	}
	return int(r.mask.Count())
}

// Mask returns the canonical-position set. Callers must treat it as read-only.
// The zero Record yields an empty set.
func (r *Record) Mask() *bitset.BitSet {
	if r.mask == nil {
		return bitset.New(0)
	}
	return r.mask
}
