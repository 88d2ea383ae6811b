package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Answer   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultTheme uses the site's green and gold on the terminal background.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00cc00")),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#009900")),
		Answer: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffff66")),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")),
	}
}
