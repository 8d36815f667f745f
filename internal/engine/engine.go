package engine

import "pairdist/internal/record"

// DefaultThreshold is the distance below which a pair is reported.
const DefaultThreshold = 0.04

type Config struct {
	// Threshold is exclusive; 0 selects DefaultThreshold.
	Threshold float64
}

type Engine struct{ cfg Config }

func New(c Config) *Engine {
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	return &Engine{cfg: c}
}

func (e *Engine) Threshold() float64 { return e.cfg.Threshold }

// Compare computes the distance between records i and j and reports whether
// it falls strictly under the threshold. NaN and +Inf distances never do.
func (e *Engine) Compare(i, j int, a, b *record.Record) (Result, bool) {
	d := Distance(a, b)
	r := Result{A: a, B: b, I: i, J: j, Distance: d}
	return r, d < e.cfg.Threshold
}
