package viz

import (
	"fmt"
	"iter"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/compound/internal/growth"
)

const (
	shortHorizonPace = 200 * time.Millisecond
	longHorizonPace  = 50 * time.Millisecond
	spinnerInterval  = 100 * time.Millisecond
	progressWidth    = 40
	sparkWidth       = 50
)

type phase int

const (
	phaseIntro phase = iota
	phaseReveal
	phaseBanner
	phaseDone
)

type tickMsg struct{ id int }

// spinMsg turns the intro spinner; it stops rescheduling once the intro ends.
type spinMsg struct{}

type RevealOptions struct {
	Pace    time.Duration // delay between revealed years
	Intro   time.Duration // "calculating" spinner before the first year
	Hold    time.Duration // how long the closing banner stays up
	ShowAll bool          // reveal every year, not only those tagged Emit
}

// DefaultPace is the delay between frames for a horizon of years.
func DefaultPace(years int) time.Duration {
	if years < 10 {
		return shortHorizonPace
	}
	return longHorizonPace
}

func DefaultRevealOptions(years int) RevealOptions {
	return RevealOptions{
		Pace:  DefaultPace(years),
		Intro: 2 * time.Second,
		Hold:  time.Second,
	}
}

// RevealModel pulls snapshots from a trace one tick at a time.
type RevealModel struct {
	params  growth.Params
	result  growth.Result
	styles  Styles
	opts    RevealOptions
	next    func() (growth.Snapshot, bool)
	stop    func()
	phase   phase
	tickID  int
	frame   int
	paused  bool
	current growth.Snapshot
	shown   int
	total   int
	amounts []float64
}

func NewReveal(p growth.Params, res growth.Result, trace iter.Seq[growth.Snapshot], opts RevealOptions) RevealModel {
	next, stop := iter.Pull(trace)

	total := p.Years
	if !opts.ShowAll {
		total = 0
		for y := 1; y <= p.Years; y++ {
			if growth.Cadence(y, p.Years) {
				total++
			}
		}
	}

	return RevealModel{
		params:  p,
		result:  res,
		styles:  NewStyles(CurrentTheme),
		opts:    opts,
		next:    next,
		stop:    stop,
		phase:   phaseIntro,
		total:   total,
		amounts: make([]float64, 0, total),
	}
}

func (m RevealModel) Init() tea.Cmd {
	return tea.Batch(tick(0, m.opts.Intro), spin())
}

func spin() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinMsg{} })
}

func tick(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{id: id} })
}

func (m *RevealModel) schedule(d time.Duration) tea.Cmd {
	m.tickID++
	return tick(m.tickID, d)
}

// Update handles keys and advances the reveal on its own ticks.
func (m RevealModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.finish()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "s":
			if m.phase == phaseIntro || m.phase == phaseReveal {
				for m.advance() {
				}
				m.phase = phaseBanner
				return m, m.schedule(m.opts.Hold)
			}
		case "t":
			m.styles = NewStyles(NextTheme(m.styles.Theme))
		}
	case spinMsg:
		if m.phase != phaseIntro {
			return m, nil
		}
		m.frame++
		return m, spin()
	case tickMsg:
		if msg.id != m.tickID {
			return m, nil
		}
		switch m.phase {
		case phaseIntro:
			m.phase = phaseReveal
			return m, m.schedule(0)
		case phaseReveal:
			if m.paused {
				return m, m.schedule(m.opts.Pace)
			}
			if m.advance() {
				return m, m.schedule(m.opts.Pace)
			}
			m.phase = phaseBanner
			return m, m.schedule(m.opts.Hold)
		case phaseBanner:
			m.finish()
			return m, tea.Quit
		}
	}
	return m, nil
}

// advance moves to the next snapshot due for display.
func (m *RevealModel) advance() bool {
	for {
		s, ok := m.next()
		if !ok {
			return false
		}
		if m.opts.ShowAll || s.Emit {
			m.current = s
			m.shown++
			m.amounts = append(m.amounts, s.Amount)
			return true
		}
	}
}

func (m *RevealModel) finish() {
	m.phase = phaseDone
	m.stop()
}

func (m RevealModel) View() string {
	var b strings.Builder

	b.WriteString("\n" + Title(m.styles) + "\n\n")

	if m.phase == phaseIntro {
		b.WriteString(m.styles.Info.Render(AnimatedSpinner(m.frame)+" Calculating your money's growth potential...") + "\n")
		return b.String()
	}

	b.WriteString(Summary(m.params, m.result, m.styles) + "\n\n")

	if m.phase == phaseDone {
		b.WriteString(m.styles.Success.Render("Calculation and visualization complete! Happy financial planning! ✨") + "\n")
		return b.String()
	}

	b.WriteString(m.styles.Title.Render("Growth Visualization") + "\n")
	b.WriteString(m.styles.Separator(60) + "\n")

	switch {
	case m.phase == phaseBanner:
		b.WriteString(m.styles.Banner.Render("🎉 Your Investment Grew! 🎉") + "\n")
	case m.shown > 0:
		b.WriteString(m.styles.Frame.Render(FrameLine(m.current)) + "\n")
	default:
		b.WriteString("\n")
	}

	percent := 1.0
	if m.total > 0 {
		percent = float64(m.shown) / float64(m.total)
	}
	b.WriteString(fmt.Sprintf("\n%s %d/%d\n", m.styles.ProgressBar(percent, progressWidth), m.shown, m.total))
	b.WriteString(m.styles.Info.Render(Sparkline(m.amounts, sparkWidth)) + "\n")

	status := "space pause · s skip · t theme · q quit"
	if m.paused {
		status = "PAUSED · " + status
	}
	b.WriteString("\n" + m.styles.KeyHint.Render(status) + "\n")

	return b.String()
}

// Reveal runs the reveal program until the closing banner has been shown.
func Reveal(p growth.Params, res growth.Result, trace iter.Seq[growth.Snapshot], opts RevealOptions) error {
	_, err := tea.NewProgram(NewReveal(p, res, trace, opts)).Run()
	return err
}
