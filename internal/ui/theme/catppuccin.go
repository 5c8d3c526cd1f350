package theme

import "github.com/charmbracelet/lipgloss"

var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Yellow   = lipgloss.Color("#f9e2af")
)

// Styles are bound to a renderer so that color output follows the
// capabilities of the writer they print to.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Study   lipgloss.Style
	Break   lipgloss.Style
	Hot     lipgloss.Style
	Cheer   lipgloss.Style
	Summary lipgloss.Style
}

func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Title:   r.NewStyle().Foreground(Sapphire).Bold(true),
		Muted:   r.NewStyle().Foreground(Subtext0),
		Study:   r.NewStyle().Foreground(Lavender).Bold(true),
		Break:   r.NewStyle().Foreground(Green).Bold(true),
		Hot:     r.NewStyle().Foreground(Peach).Bold(true),
		Cheer:   r.NewStyle().Foreground(Yellow).Italic(true),
		Summary: r.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(Surface1).Foreground(Text).Padding(0, 1),
	}
}
