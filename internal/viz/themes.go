package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines color scheme for the TUI
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Info      lipgloss.Color
}

// Available themes
var (
	ThemeEmerald = Theme{
		Name:      "emerald",
		Primary:   lipgloss.Color("#2ecc71"),
		Secondary: lipgloss.Color("#f1c40f"), // Gold
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#6b8f71"),
		Success:   lipgloss.Color("#00ff88"),
		Info:      lipgloss.Color("#5dade2"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"), // Ocean blue
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Success:   lipgloss.Color("#00ff88"),
		Info:      lipgloss.Color("#00ccff"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"), // Coral
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Success:   lipgloss.Color("#5fd068"),
		Info:      lipgloss.Color("#ffc048"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // Green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Info:      lipgloss.Color("#00cc00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Success:   lipgloss.Color("#00ff00"),
		Info:      lipgloss.Color("#cccccc"),
	}

	// Default theme
	CurrentTheme = ThemeEmerald

	// All available themes
	Themes = []Theme{
		ThemeEmerald,
		ThemeOcean,
		ThemeSunset,
		ThemeRetroGreen,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) (Theme, error) {
	for _, t := range Themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme: %s (available: %v)", name, ThemeNames())
}

// SetTheme changes the current theme. An unknown name leaves it unchanged.
func SetTheme(name string) error {
	t, err := GetTheme(name)
	if err != nil {
		return err
	}
	CurrentTheme = t
	return nil
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
