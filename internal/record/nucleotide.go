package record

// IsNucleotide reports whether b is one of the four canonical uppercase bases.
// Lowercase bases, IUPAC ambiguity codes, gaps and whitespace are not.
func IsNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
