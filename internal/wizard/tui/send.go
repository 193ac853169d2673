package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/csvtext/internal/compose"
	"github.com/muurk/csvtext/internal/logging"
	"github.com/muurk/csvtext/internal/session"
)

// clipboardResultMsg reports a finished clipboard write
type clipboardResultMsg struct {
	index int
	err   error
}

// copyToClipboard writes body off the update loop. It never touches the session.
func copyToClipboard(clip compose.Clipboard, index int, body string) tea.Cmd {
	return func() tea.Msg {
		err := session.WriteClipboard(context.Background(), clip, body)
		return clipboardResultMsg{index: index, err: err}
	}
}

// previewSink receives the session's row previews.
type previewSink struct {
	last  session.Preview
	ready bool
}

// Render implements session.Observer.
func (s *previewSink) Render(p session.Preview) {
	s.last = p
	s.ready = true
}

// SessionModel is the row-by-row send screen
type SessionModel struct {
	Raw      viewport.Model
	Progress progress.Model

	sess      *session.Session
	sink      *previewSink
	launcher  compose.Launcher
	clipboard compose.Clipboard

	Width  int
	Height int
	Help   help.Model
	Keys   sessionKeyMap
}

// NewSessionModel creates the send screen
func NewSessionModel(sess *session.Session, sink *previewSink, launcher compose.Launcher, clip compose.Clipboard) SessionModel {
	vp := viewport.New(60, 8)
	vp.Style = RawRowBoxStyle

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	m := SessionModel{
		Raw:       vp,
		Progress:  bar,
		sess:      sess,
		sink:      sink,
		launcher:  launcher,
		clipboard: clip,
		Help:      help.New(),
		Keys:      newSessionKeys(),
	}
	m.syncRaw()
	return m
}

// Init initializes the session model
func (m SessionModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.sess.Prev()
		case "right", "l":
			m.sess.Next()
		case "g", "home":
			m.sess.Jump(0)
		case "G", "end":
			m.sess.Jump(m.sess.Dataset().Len() - 1)
		case "o", "enter":
			return m, m.open()
		case "c":
			return m, m.copy()
		case "esc":
			return m, transition(ScreenMapping)
		default:
			var cmd tea.Cmd
			m.Raw, cmd = m.Raw.Update(msg)
			return m, cmd
		}
		m.syncRaw()
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Raw.Width = contentWidth(msg.Width)
		if h := msg.Height - 24; h > 4 {
			m.Raw.Height = h
		}
		m.Progress.Width = contentWidth(msg.Width) - 12
		return m, nil

	case clipboardResultMsg:
		logging.LogHandoff(m.sess.ID, "clipboard", msg.index, msg.err)
		if msg.err != nil {
			return m, notify(toastError, session.UserMessage(msg.err))
		}
		return m, notify(toastInfo, fmt.Sprintf("Row %d copied to clipboard.", msg.index+1))
	}
	return m, nil
}

func (m SessionModel) open() tea.Cmd {
	if err := m.sess.Open(context.Background(), m.launcher); err != nil {
		return notify(toastError, session.UserMessage(err))
	}
	return notify(toastInfo, fmt.Sprintf("Opened messages for row %d.", m.sess.Index()+1))
}

func (m SessionModel) copy() tea.Cmd {
	_, body, err := m.sess.Message()
	if err != nil {
		return notify(toastError, session.UserMessage(err))
	}
	return copyToClipboard(m.clipboard, m.sess.Index(), body)
}

// syncRaw refreshes the raw row viewport from the latest preview
func (m *SessionModel) syncRaw() {
	if m.sink.ready {
		m.Raw.SetContent(m.sink.last.RawRow)
		m.Raw.GotoTop()
	}
}

// View renders the send screen content
func (m SessionModel) View() string {
	if !m.sink.ready {
		return RenderSubtitle("Session not started.")
	}
	p := m.sink.last

	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("Row %s", p.Progress())))
	b.WriteString(m.Progress.ViewAs(p.Fraction()))
	b.WriteString(fmt.Sprintf("  %d%%", p.Percent()))
	b.WriteString("\n\n")

	phone := PhoneStyle.Render(p.PhoneDisplay())
	if p.Phone == "" {
		phone = UnsetStyle.Render(p.PhoneDisplay())
	}
	b.WriteString(RenderField("To", phone))
	b.WriteString("\n\n")

	b.WriteString(MessageBoxStyle.Width(contentWidth(m.Width)).Render(p.Message))
	b.WriteString("\n\n")

	b.WriteString(RenderSubtitle("Row data"))
	b.WriteString("\n")
	b.WriteString(m.Raw.View())
	b.WriteString("\n")

	var edges []string
	if p.AtFirst() {
		edges = append(edges, "first row")
	}
	if p.AtLast() {
		edges = append(edges, "last row")
	}
	if len(edges) > 0 {
		b.WriteString(RenderSubtitle(strings.Join(edges, " · ")))
		b.WriteString("\n")
	}

	return b.String()
}
