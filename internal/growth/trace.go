package growth

import (
	"iter"
	"slices"
)

// Snapshot is the running amount after one year of the trace walk.
type Snapshot struct {
	Period int
	Amount float64
	Emit   bool // recommended for display by Cadence
}

// Trace validates p and returns its per-year sequence, Years snapshots long.
//
// Each year adds amount*rate/Frequency to a running amount started at the
// principal. That divides a single year's growth by the frequency instead of
// compounding within the year, so the final snapshot differs from Compute.
// The sequence restarts from the principal every time it is ranged over.
func Trace(p Params) (iter.Seq[Snapshot], error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return func(yield func(Snapshot) bool) {
		current := p.Principal
		for y := 1; y <= p.Years; y++ {
			yearly := current * (p.AnnualRatePercent / 100)
			current += yearly / float64(p.Frequency)
			if !yield(Snapshot{Period: y, Amount: current, Emit: Cadence(y, p.Years)}) {
				return
			}
		}
	}, nil
}

// Snapshots collects the full trace of p.
func Snapshots(p Params) ([]Snapshot, error) {
	seq, err := Trace(p)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}

// Cadence reports whether year y of a years-long trace should be displayed:
// every year for short horizons, otherwise even years and the last one.
func Cadence(y, years int) bool {
	return years <= 20 || y%2 == 0 || y == years
}

// Emitted filters seq down to the snapshots tagged for display.
func Emitted(seq iter.Seq[Snapshot]) iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for s := range seq {
			if !s.Emit {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
