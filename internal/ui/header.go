package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field is an ordered key/value line inside a header or result box.
type Field struct {
	Key   string
	Value string
}

// Header represents a command header with title, command, and parameters.
type Header struct {
	Title   string  // e.g., "PREVIEW"
	Command string  // e.g., "csvtext preview contacts.csv"
	Params  []Field // Rendered in order
	Width   int
}

// NewHeader creates a new header with the given values
func NewHeader(title, command string, params []Field) *Header {
	return &Header{
		Title:   title,
		Command: command,
		Params:  params,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (h *Header) SetWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header as a string
func (h *Header) Render() string {
	width := h.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	top := lipgloss.JoinVertical(lipgloss.Left,
		HeaderTitleStyle.Render(strings.ToUpper(h.Title)),
		HeaderCommandStyle.Render(h.Command),
	)
	if len(h.Params) == 0 {
		return boxStyle(lipgloss.RoundedBorder(), PrimaryColor, width).Render(top)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		top,
		RenderHorizontalDivider(width-6),
		renderFields(h.Params),
	)
	return boxStyle(lipgloss.RoundedBorder(), PrimaryColor, width).Render(content)
}

// String implements fmt.Stringer
func (h *Header) String() string {
	return h.Render()
}

// renderFields aligns keys to the longest one
func renderFields(fields []Field) string {
	pad := 0
	for _, f := range fields {
		if len(f.Key) > pad {
			pad = len(f.Key)
		}
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		key := KeyStyle.Render(f.Key + ":" + strings.Repeat(" ", pad-len(f.Key)))
		lines = append(lines, key+" "+ValueStyle.Render(f.Value))
	}
	return strings.Join(lines, "\n")
}
