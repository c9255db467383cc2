package growth

import "math"

// Result is the outcome of Compute.
type Result struct {
	FinalAmount    float64
	InterestEarned float64
}

// Compute returns P(1 + r/n)^(nt) for the given parameters, with r the annual
// rate as a fraction. Nothing is rounded.
func Compute(p Params) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}

	final := p.Principal
	if p.AnnualRatePercent > 0 {
		final = p.Principal * growthFactor(p)
	}

	return Result{
		FinalAmount:    final,
		InterestEarned: final - p.Principal,
	}, nil
}

// growthFactor is (1 + r/n)^(nt). Rate 0 gives exactly 1.
func growthFactor(p Params) float64 {
	if p.AnnualRatePercent == 0 {
		return 1
	}
	r := p.AnnualRatePercent / 100
	n := float64(p.Frequency)
	periods := n * float64(p.Years)
	// exp(nt * log1p(r/n)) keeps precision when r/n is tiny and nt large.
	return math.Exp(periods * math.Log1p(r/n))
}
