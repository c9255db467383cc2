package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/san-kum/compound/internal/growth"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Principal != 10_000_000 {
		t.Errorf("expected principal 10000000, got %f", cfg.Principal)
	}
	if cfg.Years <= 0 {
		t.Error("years should be positive")
	}
	if _, err := cfg.Params(); err != nil {
		t.Errorf("default config should resolve: %v", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growth.yaml")

	cfg := DefaultConfig()
	cfg.Principal = 2_500_000
	cfg.Frequency = "monthly"
	cfg.Display.Pace = 150 * time.Millisecond
	cfg.Display.ShowAll = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadInto_KeepsUnsetFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	if err := os.WriteFile(path, []byte("years: 7\n"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	cfg := GetPreset("retirement")
	want := *cfg
	want.Years = 7

	if err := LoadInto(path, cfg); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if *cfg != want {
		t.Errorf("got %+v, want preset values with years 7: %+v", cfg, want)
	}
}

func TestParams(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Frequency = "quarterly"
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}
	want := growth.Params{Principal: DefaultPrincipal, AnnualRatePercent: DefaultRate, Frequency: 4, Years: DefaultYears}
	if p != want {
		t.Errorf("got %+v, want %+v", p, want)
	}

	cfg.Frequency = "hourly"
	if _, err := cfg.Params(); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestParams_DoesNotValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Years = 0
	p, err := cfg.Params()
	if err != nil {
		t.Fatalf("params failed: %v", err)
	}
	if _, err := growth.Compute(p); !errors.Is(err, growth.ErrInvalidParameter) {
		t.Errorf("expected growth to reject years=0, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		changed []string
		check   func(*Config) bool
	}{
		{"in range", func(c *Config) {}, nil, func(c *Config) bool { return c.Principal == DefaultPrincipal }},
		{"small principal", func(c *Config) { c.Principal = 10 }, []string{"principal"}, func(c *Config) bool { return c.Principal == MinPrincipal }},
		{"huge rate", func(c *Config) { c.AnnualRate = 250 }, []string{"annual_rate"}, func(c *Config) bool { return c.AnnualRate == MaxRate }},
		{"zero rate", func(c *Config) { c.AnnualRate = 0 }, []string{"annual_rate"}, func(c *Config) bool { return c.AnnualRate == MinRate }},
		{"long horizon", func(c *Config) { c.Years = 500 }, []string{"years"}, func(c *Config) bool { return c.Years == MaxYears }},
		{"all", func(c *Config) { c.Principal = 2e9; c.AnnualRate = -1; c.Years = 0 }, []string{"principal", "annual_rate", "years"}, func(c *Config) bool { return c.Years == MinYears }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			changed := cfg.Clamp()
			if !slices.Equal(changed, tt.changed) {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if !tt.check(cfg) {
				t.Errorf("unexpected config after clamp: %+v", cfg)
			}
		})
	}
}

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"annual", 1, true},
		{"Monthly", 12, true},
		{" daily ", 365, true},
		{"52", 52, true},
		{"0", 0, false},
		{"-4", 0, false},
		{"weekly", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseFrequency(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseFrequency(%q) err = %v, ok want %v", tt.in, err, tt.ok)
		}
		if got != tt.want {
			t.Errorf("ParseFrequency(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFrequencyLabel(t *testing.T) {
	if got := FrequencyLabel(12); got != "Monthly (12x/year)" {
		t.Errorf("FrequencyLabel(12) = %q", got)
	}
	if got := FrequencyLabel(52); got != "52x/year" {
		t.Errorf("FrequencyLabel(52) = %q", got)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("savings")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.AnnualRate != 5.0 {
		t.Errorf("expected rate 5.0, got %f", cfg.AnnualRate)
	}
	if cfg.Display.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %q", cfg.Display.Theme)
	}

	cfg.Years = 99
	if Presets["savings"].Years == 99 {
		t.Error("GetPreset returned shared preset")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != len(Presets) {
		t.Errorf("expected %d presets, got %d", len(Presets), len(presets))
	}
	if !slices.IsSorted(presets) {
		t.Errorf("presets not sorted: %v", presets)
	}
	for _, name := range presets {
		cfg := GetPreset(name)
		p, err := cfg.Params()
		if err != nil {
			t.Errorf("preset %s: %v", name, err)
			continue
		}
		if err := p.Validate(); err != nil {
			t.Errorf("preset %s invalid: %v", name, err)
		}
	}
}
