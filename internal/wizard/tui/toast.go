package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// toastTimeout is how long a status message stays visible.
const toastTimeout = 2 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastWarning
	toastError
)

type toast struct {
	text  string
	level toastLevel
	id    int
}

type toastMsg struct {
	text  string
	level toastLevel
}

type toastExpiredMsg struct {
	id int
}

// notify returns a command that shows text in the status line.
func notify(level toastLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return toastMsg{text: text, level: level}
	}
}

// expireToast clears toast id after toastTimeout unless a newer one replaced it.
func expireToast(id int) tea.Cmd {
	return tea.Tick(toastTimeout, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (t *toast) View() string {
	if t == nil {
		return ""
	}
	switch t.level {
	case toastError:
		return ToastErrorStyle.Render("✗ " + t.text)
	case toastWarning:
		return ToastWarningStyle.Render("⚠ " + t.text)
	default:
		return ToastInfoStyle.Render("✓ " + t.text)
	}
}
