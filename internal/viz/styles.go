package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from one theme.
type Styles struct {
	Theme   Theme
	Title   lipgloss.Style
	Panel   lipgloss.Style
	Label   lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Frame   lipgloss.Style
	Banner  lipgloss.Style
	Subtle  lipgloss.Style
	KeyHint lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 2),
		Label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(32),
		Info: lipgloss.NewStyle().
			Foreground(t.Info).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),
		Frame: lipgloss.NewStyle().
			Foreground(t.Text).
			Bold(true).
			Width(60).
			Align(lipgloss.Center),
		Banner: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Bold(true).
			Width(60).
			Align(lipgloss.Center).
			Padding(1, 0),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)

	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}

	return result.String()
}

// AnimatedSpinner returns frame of animated spinner
func AnimatedSpinner(frame int) string {
	spinners := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinners[frame%len(spinners)]
}

// ProgressBar renders a progress bar colored by completion.
func (s Styles) ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	if percent >= 1 {
		return s.Success.Render(bar)
	}
	return s.Info.Render(bar)
}

// Sparkline renders a mini chart of values, sampled to fit width.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - lo) / rng
		idx := int(norm * float64(len(chars)-1))
		idx = min(max(idx, 0), len(chars)-1)
		result.WriteRune(chars[idx])
	}

	return result.String()
}

// Separator draws a decorative rule.
func (s Styles) Separator(width int) string {
	mid := width / 2
	left := strings.Repeat("─", max(mid-3, 0))
	right := strings.Repeat("─", max(width-mid-3, 0))
	return s.Subtle.Render(left + " ◆ " + right)
}

// Helper functions
func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = min(max(v, 0), 255)
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
