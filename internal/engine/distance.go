package engine

import (
	"math"

	"pairdist/internal/record"
)

// Differences zips a and b by position and returns the number of informative
// positions (both bytes canonical) and how many of those differ. Positions past
// the shorter sequence are ignored.
func Differences(a, b *record.Record) (diff, informative int) {
	both := a.Mask().Intersection(b.Mask())
	sa, sb := a.Seq(), b.Seq()
	for i, ok := both.NextSet(0); ok; i, ok = both.NextSet(i + 1) {
		informative++
		if sa[i] != sb[i] {
			diff++
		}
	}
	return diff, informative
}

// PercentDifference is the fraction of informative positions that differ.
// With no informative positions the result is NaN.
func PercentDifference(a, b *record.Record) float64 {
	diff, n := Differences(a, b)
	return float64(diff) / float64(n)
}

// JukesCantor applies the JC69 correction to a mismatch fraction p.
// p == 0.75 gives +Inf and p > 0.75 gives NaN.
func JukesCantor(p float64) float64 {
	return -0.75 * math.Log2(1-p*(4.0/3.0))
}

// Distance is the JC69 distance between a and b. It is symmetric.
func Distance(a, b *record.Record) float64 {
	return JukesCantor(PercentDifference(a, b))
}
