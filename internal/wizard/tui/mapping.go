package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/csvtext/internal/session"
)

// phoneSlot labels the phone binding row at the bottom of the list
const phoneSlot = "phone number"

// MappingModel binds template variables and the phone to columns
type MappingModel struct {
	Cursor int // Selected row; len(variables) is the phone slot

	sess *session.Session

	Width  int
	Height int
	Help   help.Model
	Keys   mappingKeyMap
}

// NewMappingModel creates the mapping screen
func NewMappingModel(sess *session.Session) MappingModel {
	return MappingModel{
		sess: sess,
		Help: help.New(),
		Keys: newMappingKeys(),
	}
}

// Init initializes the mapping model
func (m MappingModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m MappingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	slots := len(m.sess.Variables()) + 1
	if m.Cursor >= slots {
		m.Cursor = slots - 1
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < slots-1 {
			m.Cursor++
		}
	case "right", "l":
		return m, m.cycle(1)
	case "left", "h":
		return m, m.cycle(-1)
	case "x", "backspace":
		return m, m.assign("")
	case "a":
		n := m.sess.AutoBind()
		if n == 0 {
			return m, notify(toastWarning, "No columns matched by name.")
		}
		return m, notify(toastInfo, fmt.Sprintf("Auto-mapped %d.", n))
	case "enter":
		if err := m.sess.Start(); err != nil {
			return m, notify(toastError, session.UserMessage(err))
		}
		return m, transition(ScreenSession)
	case "esc":
		return m, transition(ScreenTemplate)
	}
	return m, nil
}

// selected returns the variable under the cursor, or "" for the phone slot
func (m MappingModel) selected() (variable string, isPhone bool) {
	vars := m.sess.Variables()
	if m.Cursor < len(vars) {
		return vars[m.Cursor], false
	}
	return "", true
}

// current returns the column bound to the selected slot
func (m MappingModel) current() string {
	variable, isPhone := m.selected()
	if isPhone {
		col, _ := m.sess.Bindings().Phone()
		return col
	}
	col, _ := m.sess.Bindings().Lookup(variable)
	return col
}

// cycle moves the selected slot's binding by step through "" + columns
func (m MappingModel) cycle(step int) tea.Cmd {
	options := append([]string{""}, m.sess.Dataset().Columns...)
	cur, idx := m.current(), 0
	for i, c := range options {
		if c == cur {
			idx = i
			break
		}
	}
	idx = (idx + step + len(options)) % len(options)
	return m.assign(options[idx])
}

func (m MappingModel) assign(column string) tea.Cmd {
	variable, isPhone := m.selected()
	var err error
	if isPhone {
		err = m.sess.BindPhone(column)
	} else {
		err = m.sess.Bind(variable, column)
	}
	if err != nil {
		return notify(toastError, session.UserMessage(err))
	}
	return nil
}

// View renders the mapping screen content
func (m MappingModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Map variables to columns"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle("Every variable and the phone number need a column before you can start."))
	b.WriteString("\n\n")

	vars := m.sess.Variables()
	bindings := m.sess.Bindings()
	width := len(phoneSlot)
	for _, v := range vars {
		if len(v) > width {
			width = len(v)
		}
	}

	for i, v := range vars {
		col, ok := bindings.Lookup(v)
		b.WriteString(m.renderSlot(i, "{{"+v+"}}", width+4, col, ok))
		b.WriteString("\n")
	}
	if len(vars) > 0 {
		b.WriteString("\n")
	}
	col, ok := bindings.Phone()
	b.WriteString(m.renderSlot(len(vars), phoneSlot, width+4, col, ok))
	b.WriteString("\n")

	if err := m.sess.Ready(); err != nil {
		b.WriteString("\n")
		b.WriteString(UnsetStyle.Render(session.UserMessage(err)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m MappingModel) renderSlot(i int, label string, pad int, column string, bound bool) string {
	value := UnsetStyle.Render("(unset)")
	if bound {
		value = ValueStyle.Render(column)
	}
	line := fmt.Sprintf("%-*s ", pad, label) + "‹ " + value + " ›"
	return RenderMenuItem(line, i == m.Cursor)
}
