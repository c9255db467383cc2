package metrics

import (
	"math"

	"github.com/san-kum/compound/internal/growth"
)

// Divergence is the relative gap between the last trace amount and the
// closed-form final amount. The trace walk approximates sub-annual
// compounding, so this is usually non-zero for frequencies above one.
type Divergence struct {
	name      string
	reference float64
	last      float64
	samples   int
}

func NewDivergence(reference float64) *Divergence {
	return &Divergence{
		name:      "divergence",
		reference: reference,
	}
}

func (d *Divergence) Name() string { return d.name }

func (d *Divergence) Observe(s growth.Snapshot) {
	d.last = s.Amount
	d.samples++
}

func (d *Divergence) Value() float64 {
	if d.samples == 0 || d.reference == 0 {
		return 0
	}
	return math.Abs(d.last-d.reference) / math.Abs(d.reference)
}

func (d *Divergence) Reset() {
	d.last = 0
	d.samples = 0
}
