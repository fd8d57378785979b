package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the top bar: app name, screen title, and who is
// signed in.
func (m Model) renderHeader(title string) string {
	styles := m.theme.Styles()

	left := styles.Accent.Bold(true).Render("gojo") + "  " + styles.Title.Render(title)

	who := "anonymous"
	if m.sess.Authenticated() {
		who = m.sess.Username
		if strings.TrimSpace(who) == "" {
			who = "signed in"
		}
	}
	right := styles.Faint.Render(who)

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 2 {
		gap = 2
	}
	return "  " + left + strings.Repeat(" ", gap) + right
}

// renderFooter renders the key hints plus the transient notice bar.
func (m Model) renderFooter(hints string) string {
	styles := m.theme.Styles()
	out := "  " + styles.Faint.Render(hints)
	if m.notice != "" {
		style := styles.Success
		if m.noticeIsError {
			style = styles.Danger
		}
		out = "  " + style.Render(m.notice) + "\n" + out
	}
	return out
}
