package viz

import (
	"fmt"
	"iter"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/compound/internal/config"
	"github.com/san-kum/compound/internal/growth"
)

const (
	chartWidth  = 70
	chartHeight = 12
)

// Title is the gradient application header.
func Title(s Styles) string {
	return GradientText("💰 Compound Interest Calculator 💰", s.Theme.Primary, s.Theme.Accent)
}

// Summary renders the inputs and the closed-form outcome.
func Summary(p growth.Params, res growth.Result, s Styles) string {
	var b strings.Builder

	row := func(style func(...string) string, label, value string) {
		b.WriteString(s.Label.Render(label) + style(value) + "\n")
	}

	b.WriteString(s.Title.Render("🎉 Calculation Result 🎉") + "\n\n")
	row(s.Info.Render, "Initial principal", FormatMoney(p.Principal))
	row(s.Info.Render, "Annual interest rate", FormatRate(p.AnnualRatePercent))
	row(s.Info.Render, "Compounding", config.FrequencyLabel(p.Frequency))
	row(s.Info.Render, "Term", fmt.Sprintf("%d years", p.Years))
	row(s.Success.Render, fmt.Sprintf("Final amount after %d years", p.Years), FormatMoney(res.FinalAmount))
	row(s.Success.Render, "Total interest earned", FormatMoney(res.InterestEarned))

	return s.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Chart plots every trace amount with asciigraph.
func Chart(trace iter.Seq[growth.Snapshot], caption string) string {
	var data []float64
	for s := range trace {
		data = append(data, s.Amount)
	}
	if len(data) == 0 {
		return ""
	}
	if len(data) == 1 {
		data = append([]float64{data[0]}, data[0])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)
}
