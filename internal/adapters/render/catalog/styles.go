package catalog

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	book     lipgloss.Style
	borrowed lipgloss.Style
	member   lipgloss.Style
	statKey  lipgloss.Style
	statVal  lipgloss.Style
	empty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		book:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		borrowed: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		member:   lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		statKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		statVal:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		empty:    lipgloss.NewStyle().Faint(true),
	}
}
