package growth

import "math"

// MaxRatePercent is the largest accepted annual rate.
const MaxRatePercent = 100.0

// Params are the four inputs of a growth computation.
type Params struct {
	Principal         float64
	AnnualRatePercent float64
	Frequency         int // compounding periods per year
	Years             int
}

// Validate reports the first precondition Params violates. Values are never
// clamped. A principal whose final amount would not fit in a float64 is
// rejected as well.
func (p Params) Validate() error {
	if math.IsInf(p.Principal, 0) || !(p.Principal > 0) {
		return invalid(FieldPrincipal, "must be a positive finite amount, got %v", p.Principal)
	}
	if !(p.AnnualRatePercent >= 0 && p.AnnualRatePercent <= MaxRatePercent) {
		return invalid(FieldAnnualRatePercent, "must be within [0, %v], got %v", MaxRatePercent, p.AnnualRatePercent)
	}
	if p.Frequency <= 0 {
		return invalid(FieldCompoundingFrequency, "must be a positive number of periods per year, got %d", p.Frequency)
	}
	if p.Years <= 0 {
		return invalid(FieldYears, "must be a positive number of years, got %d", p.Years)
	}
	// The trace walk never outgrows the closed form, so one check covers both.
	if math.IsInf(p.Principal*growthFactor(p), 0) {
		return invalid(FieldPrincipal, "final amount overflows float64 at %v%% compounded %d times a year for %d years, got %v",
			p.AnnualRatePercent, p.Frequency, p.Years, p.Principal)
	}
	return nil
}
