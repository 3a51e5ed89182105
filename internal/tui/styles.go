package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Error     = lipgloss.Color("#EF4444") // Red
	Muted     = lipgloss.Color("#6B7280") // Gray

	colorTextBright = lipgloss.Color("#F8FAFC") // Slate 50
	colorTextMuted  = lipgloss.Color("#64748B") // Slate 500
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorTextBright).
			Background(Primary).
			Padding(0, 2).
			MarginBottom(1)

	// The receipt itself, drawn as a paper strip
	PaperStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(1, 2)

	StatusStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(0, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

func RenderHelp(key, desc string) string {
	return HelpKeyStyle.Render(key) + HelpStyle.Render(" "+desc)
}
