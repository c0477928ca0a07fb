package report

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#F59E0B") // Amber
	colorIPA    = lipgloss.Color("#06B6D4") // Cyan
	colorError  = lipgloss.Color("#EF4444") // Red
	colorMuted  = lipgloss.Color("#6B7280") // Gray
)

type styles struct {
	word     lipgloss.Style
	label    lipgloss.Style
	stressed lipgloss.Style
	ipa      lipgloss.Style
	muted    lipgloss.Style
	err      lipgloss.Style
}

// newStyles binds the styles to r so that colors are dropped when the
// output is not a terminal
func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		word:     r.NewStyle().Bold(true),
		label:    r.NewStyle().Foreground(colorMuted).Width(13),
		stressed: r.NewStyle().Foreground(colorAccent).Bold(true).Underline(true),
		ipa:      r.NewStyle().Foreground(colorIPA),
		muted:    r.NewStyle().Foreground(colorMuted),
		err:      r.NewStyle().Foreground(colorError),
	}
}
