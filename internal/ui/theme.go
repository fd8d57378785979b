package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the UI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	SelectionBg   string
	SelectionText string
	Border        string
}

// Styles are the Lipgloss styles derived from a theme.
type Styles struct {
	Title   lipgloss.Style
	Text    lipgloss.Style
	Muted   lipgloss.Style
	Faint   lipgloss.Style
	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Danger  lipgloss.Style

	Selected lipgloss.Style
	Badge    lipgloss.Style
	Featured lipgloss.Style
	Box      lipgloss.Style
}

// Styles returns the Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Bold(true),
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),
		Accent: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),
		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)),
		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),
		Badge: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),
		Featured: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Warning)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Padding(0, 1),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),
	}
}

var themes = []Theme{
	{
		Name:          "Dracula",
		Text:          "#F8F8F2",
		Muted:         "#BFBFBF",
		Faint:         "#6272A4",
		Accent:        "#BD93F9",
		Success:       "#50FA7B",
		Warning:       "#F1FA8C",
		Danger:        "#FF5555",
		SelectionBg:   "#44475A",
		SelectionText: "#F8F8F2",
		Border:        "#6272A4",
	},
	{
		Name:          "Light",
		Text:          "#2E3440",
		Muted:         "#4C566A",
		Faint:         "#9DA6B5",
		Accent:        "#5E81AC",
		Success:       "#A3BE8C",
		Warning:       "#D08770",
		Danger:        "#BF616A",
		SelectionBg:   "#D8DEE9",
		SelectionText: "#2E3440",
		Border:        "#9DA6B5",
	},
}

// GetTheme returns the theme by name, defaulting to the first theme.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme returns the name of the theme after the given one, wrapping.
func NextTheme(name string) string {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}
