// Package growth computes compound-interest growth of a principal sum.
//
// The package exposes two independent computations:
//
//   - [Compute]: closed-form final amount P(1 + r/n)^(nt) and interest earned
//   - [Trace]: a lazy, restartable per-year sequence of [Snapshot] values
//     tagged with a display cadence
//
// # Trace approximation
//
// [Trace] walks years linearly, adding one year's growth divided by the
// compounding frequency to a running amount. This is not sub-annual
// compounding and its last snapshot does not match [Compute] in general.
// Callers that show both must treat [Result] as authoritative and the trace
// as an illustration only.
//
// # Example
//
//	p := growth.Params{Principal: 10_000_000, AnnualRatePercent: 5, Frequency: 1, Years: 10}
//	res, err := growth.Compute(p)
//	seq, err := growth.Trace(p)
//	for s := range seq {
//		if s.Emit {
//			fmt.Println(s.Period, s.Amount)
//		}
//	}
//
// # Thread Safety
//
// All functions are pure and hold no package state. A sequence returned by
// [Trace] may be ranged over any number of times, from any goroutine.
package growth
