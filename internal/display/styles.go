package display

import "github.com/charmbracelet/lipgloss"

// styles are bound to the console's renderer so colour is only emitted when
// the output is a terminal that supports it.
type styles struct {
	title     lipgloss.Style
	rule      lipgloss.Style
	index     lipgloss.Style
	label     lipgloss.Style
	value     lipgloss.Style
	good      lipgloss.Style
	fair      lipgloss.Style
	poor      lipgloss.Style
	notice    lipgloss.Style
	errorText lipgloss.Style
	hint      lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7DCFFF")),
		rule: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		index: r.NewStyle().
			Foreground(lipgloss.Color("#E0AF68")),
		label: r.NewStyle().
			Foreground(lipgloss.Color("#737373")),
		value: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#c0c0c0")),
		good: r.NewStyle().
			Foreground(lipgloss.Color("#9ECE6A")),
		fair: r.NewStyle().
			Foreground(lipgloss.Color("#E0AF68")),
		poor: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		notice: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BB9AF7")),
		errorText: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")),
		hint: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Italic(true),
	}
}

// grade picks the colour for a stability percentage.
func (s styles) grade(stability float64) lipgloss.Style {
	switch {
	case stability >= 95:
		return s.good
	case stability >= 80:
		return s.fair
	default:
		return s.poor
	}
}
