package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Card is one rendered row in preview output.
type Card struct {
	Title   string // e.g., "Row 3 / 12"
	Phone   string // Sanitized; empty renders as "(empty)"
	Message string
	Width   int
}

// Render returns the styled card as a string
func (c Card) Render() string {
	width := c.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	phone := PhoneStyle.Render(c.Phone)
	border := PrimaryColor
	if c.Phone == "" {
		phone = ErrorMessageStyle.Render("(empty)")
		border = WarningColor
	}

	message := MessageStyle.Width(width - 6).Render(c.Message)
	content := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(c.Title),
		KeyStyle.Render("To:")+" "+phone,
		"",
		message,
	)
	return boxStyle(lipgloss.RoundedBorder(), border, width).Render(content)
}
