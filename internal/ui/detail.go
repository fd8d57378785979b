package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ereft/gojo/internal/detail"
	"github.com/ereft/gojo/internal/ereft"
)

// handleDetailKey processes keys for the detail screen.
func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b":
		return m.gotoBrowse()

	case "f":
		if m.detail.State != detail.StateLoaded || m.busy {
			return m, nil
		}
		m.busy = true
		m.notice = ""
		return m, m.toggleFavoriteCmd()

	case "d":
		if m.detail.State != detail.StateLoaded || m.busy {
			return m, nil
		}
		// Delete is offered to the owner only; the backend re-validates.
		if !detail.IsOwner(m.sess, m.detail.Property) {
			return m, nil
		}
		m.confirmDelete = true
		return m, nil
	}

	return m, nil
}

// handleConfirmKey processes the delete confirmation modal.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		m.confirmDelete = false
		m.busy = true
		return m, m.deleteListingCmd(true)
	case "n", "N", "esc":
		m.confirmDelete = false
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	}
	return m, nil
}

// handleSignInKey processes the sign-in notice screen.
func (m Model) handleSignInKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter", "b":
		if m.detail.ListingID != "" {
			m.currentView = ViewDetail
			return m, nil
		}
		return m.gotoBrowse()
	}
	return m, nil
}

// renderDetail renders one of the three mutually exclusive detail modes.
func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	var b strings.Builder

	b.WriteString(m.renderHeader("Property"))
	b.WriteString("\n\n")

	switch m.detail.State {
	case detail.StateLoading:
		b.WriteString("  " + m.spin.View() + styles.Muted.Render(" Loading..."))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter("esc: back to properties  q: quit"))
	case detail.StateError:
		b.WriteString("  " + styles.Danger.Render(m.detail.Message))
		b.WriteString("\n\n  " + styles.Muted.Render("Back to Properties: esc"))
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter("esc: back to properties  q: quit"))
	case detail.StateLoaded:
		b.WriteString(m.renderProperty())
		b.WriteString("\n\n")
		b.WriteString(m.renderFooter(m.detailHints()))
	}

	return b.String()
}

func (m Model) detailHints() string {
	hints := "f: favorite  esc: back  h: help  q: quit"
	if detail.IsOwner(m.sess, m.detail.Property) {
		hints = "f: favorite  d: delete  esc: back  h: help  q: quit"
	}
	if m.busy {
		hints = "working..."
	}
	return hints
}

// renderProperty renders the loaded record.
func (m Model) renderProperty() string {
	styles := m.theme.Styles()
	p := m.detail.Property
	var b strings.Builder

	b.WriteString("  " + styles.Title.Render(p.Title))
	b.WriteString("\n")
	if loc := p.Location(); loc != "" {
		b.WriteString("  " + styles.Muted.Render(loc))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Badges
	badges := []string{
		styles.Badge.Render(strings.ToUpper(p.ListingType)),
		styles.Badge.Render(strings.ToUpper(p.PropertyType)),
	}
	if p.IsFeatured {
		badges = append(badges, styles.Featured.Render("FEATURED"))
	}
	b.WriteString("  " + strings.Join(badges, " "))
	b.WriteString("\n\n")

	// Price
	b.WriteString("  " + styles.Accent.Bold(true).Render(formatPrice(float64(p.Price))))
	if p.PricePerSqm != nil {
		b.WriteString("  " + styles.Muted.Render(formatPrice(float64(*p.PricePerSqm))+" per m²"))
	}
	b.WriteString("\n")

	// Favorite indicator
	if m.detail.Favorite {
		b.WriteString("  " + styles.Danger.Render("♥ Favorited"))
	} else {
		b.WriteString("  " + styles.Faint.Render("♡ Not favorited"))
	}
	b.WriteString("\n\n")

	if attrs := renderAttributes(styles, p); attrs != "" {
		b.WriteString(attrs)
		b.WriteString("\n")
	}

	if features := p.Features(); len(features) != 0 {
		b.WriteString("  " + styles.Title.Render("Features"))
		b.WriteString("\n")
		b.WriteString("  " + styles.Text.Render(strings.Join(features, " · ")))
		b.WriteString("\n\n")
	}

	if desc := strings.TrimSpace(p.Description); desc != "" {
		b.WriteString("  " + styles.Title.Render("Description"))
		b.WriteString("\n")
		b.WriteString(indentBlock(styles.Text.Render(wrap(desc, m.width-4)), 2))
		b.WriteString("\n\n")
	}

	b.WriteString(renderContact(styles, p))

	return strings.TrimRight(b.String(), "\n")
}

func renderAttributes(styles Styles, p *ereft.Property) string {
	var parts []string
	if p.Bedrooms != nil {
		parts = append(parts, fmt.Sprintf("%d bd", *p.Bedrooms))
	}
	if p.Bathrooms != nil {
		parts = append(parts, trimFloat(float64(*p.Bathrooms))+" ba")
	}
	if p.AreaSqm != nil {
		parts = append(parts, fmt.Sprintf("%d m²", *p.AreaSqm))
	}
	if p.YearBuilt != nil {
		parts = append(parts, fmt.Sprintf("built %d", *p.YearBuilt))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  " + styles.Text.Render(strings.Join(parts, "  ·  ")) + "\n"
}

func renderContact(styles Styles, p *ereft.Property) string {
	if p.Owner == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("  " + styles.Title.Render("Contact"))
	b.WriteString("\n")
	b.WriteString("  " + styles.Text.Render(p.Owner.DisplayName()))
	b.WriteString("\n")
	if p.Owner.Email != "" {
		b.WriteString("  " + styles.Muted.Render(p.Owner.Email))
		b.WriteString("\n")
	}
	if p.Owner.PhoneNumber != "" {
		b.WriteString("  " + styles.Muted.Render(p.Owner.PhoneNumber))
		b.WriteString("\n")
	}
	return b.String()
}

// trimFloat drops a trailing ".0" so whole bathroom counts read naturally.
func trimFloat(f float64) string {
	s := fmt.Sprintf("%.1f", f)
	return strings.TrimSuffix(s, ".0")
}
