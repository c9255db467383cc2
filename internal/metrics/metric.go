package metrics

import (
	"iter"

	"github.com/san-kum/compound/internal/growth"
)

// Metric accumulates a single figure over a trace.
type Metric interface {
	Name() string
	Observe(s growth.Snapshot)
	Value() float64
	Reset()
}

// Collect resets ms, feeds every snapshot of seq to each of them and
// returns their values keyed by name.
func Collect(seq iter.Seq[growth.Snapshot], ms ...Metric) map[string]float64 {
	for _, m := range ms {
		m.Reset()
	}
	for s := range seq {
		for _, m := range ms {
			m.Observe(s)
		}
	}

	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}

// Default returns the metrics reported alongside every trace of p.
func Default(p growth.Params, res growth.Result) []Metric {
	return []Metric{
		NewPeakGrowth(p.Principal),
		NewEmitted(),
		NewDivergence(res.FinalAmount),
	}
}
