package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleBrowseKey processes keys for the listing collection.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.listings)

	switch msg.String() {
	case "j", "down":
		if m.selectedRow < count-1 {
			m.selectedRow++
		}
	case "k", "up":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "g", "home":
		m.selectedRow = 0
	case "G", "end":
		if count > 0 {
			m.selectedRow = count - 1
		}
	case "n", "right":
		if m.listHasNext {
			m.listPage++
			m.selectedRow = 0
			m.listLoading = true
			return m, m.loadListingsCmd(m.listPage)
		}
	case "p", "left":
		if m.listPage > 1 {
			m.listPage--
			m.selectedRow = 0
			m.listLoading = true
			return m, m.loadListingsCmd(m.listPage)
		}
	case "r":
		m.listLoading = true
		return m, m.loadListingsCmd(m.listPage)
	case "enter":
		if count > 0 && m.selectedRow < count {
			return m.openDetail(m.listings[m.selectedRow].ID)
		}
	}

	return m, nil
}

// renderBrowse renders the listing collection screen.
func (m Model) renderBrowse() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader("Properties"))
	b.WriteString("\n\n")

	switch {
	case m.listLoading && len(m.listings) == 0:
		b.WriteString("  " + m.spin.View() + styles.Muted.Render(" Loading..."))
	case m.listErr != "":
		b.WriteString("  " + styles.Danger.Render(m.listErr))
		b.WriteString("\n\n  " + styles.Muted.Render("r: retry"))
	case len(m.listings) == 0:
		b.WriteString("  " + styles.Muted.Render("No listings yet."))
	default:
		b.WriteString(m.renderListingRows())
	}

	b.WriteString("\n\n")
	b.WriteString(m.renderFooter("j/k: move  enter: open  n/p: page  r: refresh  h: help  q: quit"))
	return b.String()
}

func (m Model) renderListingRows() string {
	styles := m.theme.Styles()
	var b strings.Builder

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	titleWidth := width - 34

	for i, listing := range m.listings {
		line := fmt.Sprintf("%-*s  %10s  %-8s  %s",
			titleWidth,
			truncate(listing.Title, titleWidth),
			formatPrice(float64(listing.Price)),
			strings.ToUpper(listing.ListingType),
			favoriteGlyph(listing.IsFavorited),
		)
		if i == m.selectedRow {
			b.WriteString("  " + styles.Selected.Render(line))
		} else {
			b.WriteString("  " + styles.Text.Render(line))
		}
		b.WriteString("\n")
		location := truncate(listing.Location(), width-4)
		b.WriteString("    " + styles.Faint.Render(location))
		if i < len(m.listings)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n  " + styles.Muted.Render(formatCount(len(m.listings), m.listTotal)))
	if m.listPage > 1 || m.listHasNext {
		b.WriteString(styles.Faint.Render(fmt.Sprintf("  page %d", m.listPage)))
	}
	return b.String()
}

func favoriteGlyph(favorited bool) string {
	if favorited {
		return "♥"
	}
	return " "
}
