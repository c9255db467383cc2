package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Frequency is one of the compounding choices offered to users.
type Frequency struct {
	Name    string
	Label   string
	PerYear int
}

var Frequencies = []Frequency{
	{Name: "annual", Label: "Annual (1x/year)", PerYear: 1},
	{Name: "semiannual", Label: "Semi-annual (2x/year)", PerYear: 2},
	{Name: "quarterly", Label: "Quarterly (4x/year)", PerYear: 4},
	{Name: "monthly", Label: "Monthly (12x/year)", PerYear: 12},
	{Name: "daily", Label: "Daily (365x/year)", PerYear: 365},
}

// ParseFrequency accepts a choice name or a positive integer of periods per
// year.
func ParseFrequency(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, f := range Frequencies {
		if f.Name == s {
			return f.PerYear, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("unknown frequency: %q (available: %v)", s, FrequencyNames())
	}
	return n, nil
}

// FrequencyLabel returns the display label for n periods per year.
func FrequencyLabel(n int) string {
	for _, f := range Frequencies {
		if f.PerYear == n {
			return f.Label
		}
	}
	return fmt.Sprintf("%dx/year", n)
}

func FrequencyNames() []string {
	names := make([]string, len(Frequencies))
	for i, f := range Frequencies {
		names[i] = f.Name
	}
	return names
}
