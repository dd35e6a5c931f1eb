package ui

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Header      lipgloss.Style
	Subtitle    lipgloss.Style
	List        lipgloss.Style
	ListHeader  lipgloss.Style
	Help        lipgloss.Style
	Footer      lipgloss.Style
	Accent      lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
	Working     lipgloss.Style
	Status      lipgloss.Style
	StatusRight lipgloss.Style
	Panel       lipgloss.Style
	Subtle      lipgloss.Style
	Center      lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555")).
			Faint(true).
			Padding(0, 1),

		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Padding(0, 1),

		List: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F2A0FF")),

		ListHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A0FF")).
			Bold(true).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#777777")).
			Faint(true),

		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2A0FF")),

		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5C5C")).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")).
			Bold(true),

		Working: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3DDC97")),

		Status: lipgloss.NewStyle().
			Background(lipgloss.Color("#F2A0FF")).
			Foreground(lipgloss.Color("#1A1A1A")).
			Padding(0, 1),

		StatusRight: lipgloss.NewStyle().
			Inherit(lipgloss.NewStyle().
				Background(lipgloss.Color("#F2A0FF")).
				Foreground(lipgloss.Color("#1A1A1A")).
				Padding(0, 1)).Align(lipgloss.Right),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#F2A0FF")).Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")),

		Center: lipgloss.NewStyle().
			Align(lipgloss.Center),
	}
}
