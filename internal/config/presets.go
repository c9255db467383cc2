package config

import "sort"

var Presets = map[string]*Config{
	"savings": {
		Principal: 10_000_000, AnnualRate: 5.0, Frequency: "annual", Years: 10,
	},
	"deposit": {
		Principal: 50_000_000, AnnualRate: 4.5, Frequency: "monthly", Years: 5,
	},
	"retirement": {
		Principal: 100_000_000, AnnualRate: 7.0, Frequency: "monthly", Years: 30,
	},
	"aggressive": {
		Principal: 10_000_000, AnnualRate: 15.0, Frequency: "quarterly", Years: 40,
	},
	"century": {
		Principal: 1_000_000, AnnualRate: 3.0, Frequency: "daily", Years: 100,
	},
}

// GetPreset returns a copy of the named preset with default display
// settings, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Display = DefaultConfig().Display
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
