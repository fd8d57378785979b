package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Listings are denominated in Ethiopian birr.
const currencyCode = "ETB"

var pricePrinter = message.NewPrinter(language.English)

// formatPrice renders an amount with locale-aware digit grouping and zero
// fraction digits, e.g. "ETB 1,500,000".
func formatPrice(amount float64) string {
	grouped := pricePrinter.Sprint(number.Decimal(amount, number.MaxFractionDigits(0)))
	return currencyCode + " " + grouped
}

// formatCount renders "n of m" pagination hints.
func formatCount(shown, total int) string {
	return fmt.Sprintf("%d of %d listings", shown, total)
}

// truncate shortens s to at most width runes, appending an ellipsis when it
// was cut.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

// wrap reflows text to the given width.
func wrap(s string, width int) string {
	if width < 20 {
		width = 20
	}
	return lipgloss.NewStyle().Width(width).Render(s)
}

// indentBlock prefixes every line of a block with n spaces.
func indentBlock(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}
