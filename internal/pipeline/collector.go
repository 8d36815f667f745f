package pipeline

import "pairdist/internal/engine"

// collector turns finished rows into a result stream. When ordered, rows that
// finish early wait in pending until every lower row has been emitted.
type collector struct {
	ordered bool
	next    int
	pending map[int]row
}

// add accepts a finished row. emit is called per kept result; done is called
// once per row after its results have been emitted.
func (c *collector) add(r row, emit func(engine.Result) error, done func()) error {
	if !c.ordered {
		return flushRow(r, emit, done)
	}
	c.pending[r.i] = r
	for {
		nr, ok := c.pending[c.next]
		if !ok {
			return nil
		}
		delete(c.pending, c.next)
		c.next++
		if err := flushRow(nr, emit, done); err != nil {
			return err
		}
	}
}

func flushRow(r row, emit func(engine.Result) error, done func()) error {
	defer done()
	for _, res := range r.hits {
		if err := emit(res); err != nil {
			return err
		}
	}
	return nil
}
