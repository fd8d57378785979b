package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ereft/gojo/internal/detail"
)

// renderDeleteConfirm renders the destructive-action confirmation modal.
func (m Model) renderDeleteConfirm() string {
	styles := m.theme.Styles()

	title := ""
	if m.detail.Property != nil {
		title = m.detail.Property.Title
	}

	var b strings.Builder
	b.WriteString(styles.Danger.Bold(true).Render("Delete property"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render(detail.DeleteConfirmMessage))
	if title != "" {
		b.WriteString("\n")
		b.WriteString(styles.Muted.Render(truncate(title, 48)))
	}
	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("y: delete    n/esc: keep"))

	return m.centered(styles.Box.Render(b.String()))
}

// renderSignIn renders the login-required screen both auth-gated actions
// route to.
func (m Model) renderSignIn() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Title.Render("Sign in required"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Render("This action needs an authenticated session."))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Sign in on ereft.com, then place your token in"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("~/.config/gojo/credentials.toml and restart gojo."))
	b.WriteString("\n\n")
	b.WriteString(styles.Faint.Render("esc: back    q: quit"))

	return m.centered(styles.Box.Render(b.String()))
}

// centered places a block in the middle of the screen.
func (m Model) centered(block string) string {
	if m.width <= 0 || m.height <= 0 {
		return block
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, block)
}
