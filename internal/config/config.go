package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/compound/internal/growth"
)

const (
	DefaultPrincipal = 10_000_000.0
	DefaultRate      = 5.0
	DefaultFrequency = "annual"
	DefaultYears     = 10
	DefaultTheme     = "emerald"
)

// Input ranges offered to users. The growth package accepts wider ones.
const (
	MinPrincipal = 100_000.0
	MaxPrincipal = 1_000_000_000.0
	MinRate      = 0.1
	MaxRate      = 100.0
	MinYears     = 1
	MaxYears     = 100
)

type Config struct {
	Principal  float64       `yaml:"principal"`
	AnnualRate float64       `yaml:"annual_rate"`
	Frequency  string        `yaml:"frequency"`
	Years      int           `yaml:"years"`
	Display    DisplayConfig `yaml:"display"`
}

type DisplayConfig struct {
	Theme   string        `yaml:"theme"`
	Pace    time.Duration `yaml:"pace"` // zero picks the pace from the horizon
	ShowAll bool          `yaml:"show_all"`
}

func DefaultConfig() *Config {
	return &Config{
		Principal:  DefaultPrincipal,
		AnnualRate: DefaultRate,
		Frequency:  DefaultFrequency,
		Years:      DefaultYears,
		Display: DisplayConfig{
			Theme: DefaultTheme,
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto decodes the file at path over cfg. Fields the file leaves out keep
// their current values.
func LoadInto(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Params resolves the frequency choice and returns the growth inputs.
func (c *Config) Params() (growth.Params, error) {
	n, err := ParseFrequency(c.Frequency)
	if err != nil {
		return growth.Params{}, err
	}
	return growth.Params{
		Principal:         c.Principal,
		AnnualRatePercent: c.AnnualRate,
		Frequency:         n,
		Years:             c.Years,
	}, nil
}

// Clamp pulls the inputs into the user-facing ranges and returns the names
// of the fields it changed.
func (c *Config) Clamp() []string {
	var changed []string
	if v := clampFloat(c.Principal, MinPrincipal, MaxPrincipal); v != c.Principal {
		c.Principal = v
		changed = append(changed, "principal")
	}
	if v := clampFloat(c.AnnualRate, MinRate, MaxRate); v != c.AnnualRate {
		c.AnnualRate = v
		changed = append(changed, "annual_rate")
	}
	if v := min(max(c.Years, MinYears), MaxYears); v != c.Years {
		c.Years = v
		changed = append(changed, "years")
	}
	return changed
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}
