package growth_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/compound/internal/growth"
)

var frequencies = []int{1, 2, 4, 12, 365}

var _ = Describe("Compute", func() {
	DescribeTable("final amount never falls below the principal",
		func(p growth.Params) {
			res, err := growth.Compute(p)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.FinalAmount).To(BeNumerically(">=", p.Principal))
			Expect(res.InterestEarned).To(Equal(res.FinalAmount - p.Principal))
		},
		Entry("zero rate", growth.Params{Principal: 100_000, AnnualRatePercent: 0, Frequency: 12, Years: 40}),
		Entry("small rate", growth.Params{Principal: 100_000, AnnualRatePercent: 0.1, Frequency: 365, Years: 1}),
		Entry("maximum rate", growth.Params{Principal: 100_000, AnnualRatePercent: 100, Frequency: 4, Years: 30}),
		Entry("typical savings", growth.Params{Principal: 10_000_000, AnnualRatePercent: 5, Frequency: 1, Years: 10}),
	)

	It("never decreases as years grow", func() {
		for _, n := range frequencies {
			prev := 0.0
			for years := 1; years <= 100; years++ {
				res, err := growth.Compute(growth.Params{Principal: 1_000_000, AnnualRatePercent: 6.5, Frequency: n, Years: years})
				Expect(err).NotTo(HaveOccurred())
				Expect(res.FinalAmount).To(BeNumerically(">=", prev), "frequency %d, years %d", n, years)
				prev = res.FinalAmount
			}
		}
	})

	It("never decreases as compounding becomes more frequent", func() {
		for _, rate := range []float64{0.1, 1, 5, 12.5, 50, 100} {
			prev := 0.0
			for _, n := range frequencies {
				res, err := growth.Compute(growth.Params{Principal: 1_000_000, AnnualRatePercent: rate, Frequency: n, Years: 25})
				Expect(err).NotTo(HaveOccurred())
				Expect(res.FinalAmount).To(BeNumerically(">=", prev), "rate %v, frequency %d", rate, n)
				prev = res.FinalAmount
			}
		}
	})

	DescribeTable("rejects invalid input naming the field",
		func(p growth.Params, field string) {
			_, err := growth.Compute(p)
			Expect(err).To(MatchError(growth.ErrInvalidParameter))
			var ipe *growth.InvalidParameterError
			Expect(err).To(BeAssignableToTypeOf(ipe))
			Expect(err.(*growth.InvalidParameterError).Field).To(Equal(field))
		},
		Entry("principal = 0", growth.Params{Principal: 0, AnnualRatePercent: 5, Frequency: 1, Years: 10}, growth.FieldPrincipal),
		Entry("frequency = 0", growth.Params{Principal: 1, AnnualRatePercent: 5, Frequency: 0, Years: 10}, growth.FieldCompoundingFrequency),
		Entry("years = 0", growth.Params{Principal: 1, AnnualRatePercent: 5, Frequency: 1, Years: 0}, growth.FieldYears),
	)
})

var _ = Describe("Trace", func() {
	It("produces exactly years snapshots with increasing periods", func() {
		for _, years := range []int{1, 19, 20, 21, 64, 100} {
			snaps, err := growth.Snapshots(growth.Params{Principal: 250_000, AnnualRatePercent: 4, Frequency: 12, Years: years})
			Expect(err).NotTo(HaveOccurred())
			Expect(snaps).To(HaveLen(years))
			for i, s := range snaps {
				Expect(s.Period).To(Equal(i + 1))
			}
		}
	})

	It("emits every snapshot for horizons up to 20 years", func() {
		snaps, err := growth.Snapshots(growth.Params{Principal: 1, AnnualRatePercent: 3, Frequency: 1, Years: 20})
		Expect(err).NotTo(HaveOccurred())
		for _, s := range snaps {
			Expect(s.Emit).To(BeTrue())
		}
	})

	It("emits only even periods and the last one beyond 20 years", func() {
		for _, years := range []int{21, 22, 99, 100} {
			snaps, err := growth.Snapshots(growth.Params{Principal: 1, AnnualRatePercent: 3, Frequency: 1, Years: years})
			Expect(err).NotTo(HaveOccurred())
			for _, s := range snaps {
				Expect(s.Emit).To(Equal(s.Period%2 == 0 || s.Period == years), "years %d period %d", years, s.Period)
			}
		}
	})

	It("yields fresh, identical walks on every range", func() {
		seq, err := growth.Trace(growth.Params{Principal: 42, AnnualRatePercent: 9, Frequency: 4, Years: 50})
		Expect(err).NotTo(HaveOccurred())
		Expect(slices.Collect(seq)).To(Equal(slices.Collect(seq)))
	})

	It("fails before producing anything", func() {
		seq, err := growth.Trace(growth.Params{Principal: 1, AnnualRatePercent: 5, Frequency: 1, Years: 0})
		Expect(err).To(MatchError(growth.ErrInvalidParameter))
		Expect(seq).To(BeNil())
	})
})
