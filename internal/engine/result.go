package engine

import "pairdist/internal/record"

// Result is one evaluated pair. I < J are the input positions of A and B.
type Result struct {
	A, B     *record.Record
	I, J     int
	Distance float64
}
