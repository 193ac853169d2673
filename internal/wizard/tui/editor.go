package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/csvtext/internal/session"
	"github.com/muurk/csvtext/internal/template"
)

// TemplateModel is the message template editor screen
type TemplateModel struct {
	Editor textarea.Model

	sess *session.Session

	Width  int
	Height int
	Help   help.Model
	Keys   templateKeyMap
}

// NewTemplateModel creates the editor seeded with the session's template
func NewTemplateModel(sess *session.Session) TemplateModel {
	ta := textarea.New()
	ta.Placeholder = "Hi {{first_name}}, your appointment is on {{date}}."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	ta.SetValue(sess.Template())
	ta.Focus()

	return TemplateModel{
		Editor: ta,
		sess:   sess,
		Help:   help.New(),
		Keys:   newTemplateKeys(),
	}
}

// Init initializes the template model
func (m TemplateModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages and updates the model
func (m TemplateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+n":
			if strings.TrimSpace(m.sess.Template()) == "" {
				return m, notify(toastWarning, "Write a message first.")
			}
			return m, transition(ScreenMapping)
		case "esc":
			return m, transition(ScreenLoad)
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Editor.SetWidth(contentWidth(msg.Width))
	}

	var cmd tea.Cmd
	m.Editor, cmd = m.Editor.Update(msg)
	if m.Editor.Value() != m.sess.Template() {
		m.sess.SetTemplate(m.Editor.Value())
	}
	return m, cmd
}

// View renders the template screen content
func (m TemplateModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Write your message"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle("Use {{variable}} placeholders. Each one is mapped to a column next."))
	b.WriteString("\n\n")

	b.WriteString(m.Editor.View())
	b.WriteString("\n\n")

	vars := m.sess.Variables()
	if len(vars) == 0 {
		b.WriteString(RenderField("Variables", UnsetStyle.Render("none detected")))
	} else {
		chips := make([]string, 0, len(vars))
		for _, v := range vars {
			chips = append(chips, ChipStyle.Render(v))
		}
		b.WriteString(RenderField("Variables", lipgloss.JoinHorizontal(lipgloss.Top, chips...)))
	}
	b.WriteString("\n")

	if tpl := m.sess.Template(); tpl != "" {
		b.WriteString("\n")
		b.WriteString(MessageBoxStyle.Width(contentWidth(m.Width)).Render(highlightPlaceholders(tpl)))
		b.WriteString("\n")
	}

	return b.String()
}

// highlightPlaceholders styles each {{var}} occurrence in tpl
func highlightPlaceholders(tpl string) string {
	var b strings.Builder
	last := 0
	for _, p := range template.Placeholders(tpl) {
		b.WriteString(tpl[last:p.Start])
		b.WriteString(PlaceholderStyle.Render(tpl[p.Start:p.End]))
		last = p.End
	}
	b.WriteString(tpl[last:])
	return b.String()
}
