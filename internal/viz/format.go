package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/san-kum/compound/internal/growth"
)

// FormatMoney renders v as whole rupiah with thousands separators.
// Non-finite values render as ∞ or NaN.
func FormatMoney(v float64) string {
	switch {
	case math.IsNaN(v):
		return "Rp NaN"
	case math.IsInf(v, 1):
		return "Rp ∞"
	case math.IsInf(v, -1):
		return "-Rp ∞"
	}

	digits := decimal.NewFromFloat(v).Round(0).StringFixed(0)

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return sign + "Rp " + b.String()
}

func FormatRate(percent float64) string {
	return fmt.Sprintf("%.1f%%", percent)
}

// FrameLine is the headline shown for one revealed year.
func FrameLine(s growth.Snapshot) string {
	return fmt.Sprintf("Year %d: %s %s", s.Period, FormatMoney(s.Amount), strings.Repeat("📈", s.Period%5+1))
}
