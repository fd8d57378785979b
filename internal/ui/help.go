package ui

import (
	"fmt"
	"strings"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Properties",
			items: []helpItem{
				{"j/k", "Move up/down"},
				{"g/G", "Go to top/bottom"},
				{"n/p", "Next/previous page"},
				{"enter", "Open property"},
				{"r", "Refresh"},
			},
		},
		{
			title: "Property",
			items: []helpItem{
				{"f", "Add/remove favorite"},
				{"d", "Delete (owner only)"},
				{"esc", "Back to properties"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"T", "Cycle theme"},
				{"h/?", "Toggle help"},
				{"q/ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, section := range sections {
		b.WriteString(styles.Accent.Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(fmt.Sprintf("  %s  %s\n",
				styles.Text.Render(fmt.Sprintf("%-9s", item.key)),
				styles.Muted.Render(item.desc)))
		}
		b.WriteString("\n")
	}
	b.WriteString(styles.Faint.Render("press any key to close"))

	return m.centered(styles.Box.Render(b.String()))
}
