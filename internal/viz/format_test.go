package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/compound/internal/growth"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "Rp 0"},
		{999, "Rp 999"},
		{1000, "Rp 1,000"},
		{100_000, "Rp 100,000"},
		{10_000_000, "Rp 10,000,000"},
		{16_288_946.27, "Rp 16,288,946"},
		{6_288_946.5, "Rp 6,288,947"},
		{-1_234_567.4, "-Rp 1,234,567"},
		{math.Inf(1), "Rp ∞"},
		{math.Inf(-1), "-Rp ∞"},
		{math.NaN(), "Rp NaN"},
	}

	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatRate(t *testing.T) {
	if got := FormatRate(5); got != "5.0%" {
		t.Errorf("FormatRate(5) = %q", got)
	}
}

func TestFrameLine(t *testing.T) {
	got := FrameLine(growth.Snapshot{Period: 3, Amount: 11_576_250})
	want := "Year 3: Rp 11,576,250 " + strings.Repeat("📈", 4)
	if got != want {
		t.Errorf("FrameLine = %q, want %q", got, want)
	}
	if n := strings.Count(FrameLine(growth.Snapshot{Period: 5}), "📈"); n != 1 {
		t.Errorf("period 5 should carry 1 marker, got %d", n)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil, 5); got != "─────" {
		t.Errorf("empty sparkline = %q", got)
	}
	got := []rune(Sparkline([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 8))
	if len(got) != 8 || got[0] != '▁' || got[7] != '█' {
		t.Errorf("unexpected sparkline %q", string(got))
	}
}

func TestThemes(t *testing.T) {
	if th, err := GetTheme("ocean"); err != nil || th.Name != ThemeOcean.Name {
		t.Errorf("GetTheme(ocean) = %q, %v", th.Name, err)
	}
	if NextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("NextTheme should wrap around")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("ThemeNames length mismatch")
	}
}

func TestHexHelpers(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if hexColor(300, -5, 171) != "#ff00ab" {
		t.Errorf("hexColor = %s", hexColor(300, -5, 171))
	}
}

func TestSetTheme_Unknown(t *testing.T) {
	prev := CurrentTheme
	t.Cleanup(func() { CurrentTheme = prev })

	if err := SetTheme("sunset"); err != nil {
		t.Fatalf("SetTheme(sunset) failed: %v", err)
	}
	err := SetTheme("bogus")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "unknown theme: bogus") || !strings.Contains(err.Error(), "emerald") {
		t.Errorf("unexpected error: %v", err)
	}
	if CurrentTheme.Name != ThemeSunset.Name {
		t.Errorf("CurrentTheme = %q, want sunset kept", CurrentTheme.Name)
	}
}
