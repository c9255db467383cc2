package metrics

import "github.com/san-kum/compound/internal/growth"

// PeakGrowth is the largest increase between consecutive trace years.
type PeakGrowth struct {
	name      string
	principal float64
	previous  float64
	peak      float64
	samples   int
}

func NewPeakGrowth(principal float64) *PeakGrowth {
	return &PeakGrowth{
		name:      "peak_growth",
		principal: principal,
		previous:  principal,
	}
}

func (g *PeakGrowth) Name() string { return g.name }

func (g *PeakGrowth) Observe(s growth.Snapshot) {
	if delta := s.Amount - g.previous; g.samples == 0 || delta > g.peak {
		g.peak = delta
	}
	g.previous = s.Amount
	g.samples++
}

func (g *PeakGrowth) Value() float64 {
	return g.peak
}

func (g *PeakGrowth) Reset() {
	g.previous = g.principal
	g.peak = 0
	g.samples = 0
}

// Emitted counts snapshots tagged for display.
type Emitted struct {
	name  string
	count int
}

func NewEmitted() *Emitted {
	return &Emitted{name: "emitted"}
}

func (e *Emitted) Name() string { return e.name }

func (e *Emitted) Observe(s growth.Snapshot) {
	if s.Emit {
		e.count++
	}
}

func (e *Emitted) Value() float64 { return float64(e.count) }

func (e *Emitted) Reset() { e.count = 0 }
