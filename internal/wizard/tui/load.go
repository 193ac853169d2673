package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/csvtext/internal/dataset"
	"github.com/muurk/csvtext/internal/session"
)

// datasetLoadedMsg carries the result of reading a contacts file
type datasetLoadedMsg struct {
	path string
	data *dataset.Dataset
	err  error
}

// loadFile reads path off the update loop
func loadFile(path string, opts dataset.Options) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataset.Load(path, opts)
		return datasetLoadedMsg{path: path, data: ds, err: err}
	}
}

// LoadModel is the file selection screen
type LoadModel struct {
	Input   textinput.Model
	Options dataset.Options
	Loading bool

	sess *session.Session

	Width  int
	Height int
	Help   help.Model
	Keys   loadKeyMap
}

// NewLoadModel creates the load screen, pre-filled with path
func NewLoadModel(sess *session.Session, path string, opts dataset.Options) LoadModel {
	input := textinput.New()
	input.Placeholder = "contacts.csv"
	input.Prompt = "File: "
	input.Width = 50
	input.SetValue(path)
	input.Focus()

	return LoadModel{
		Input:   input,
		Options: opts,
		sess:    sess,
		Help:    help.New(),
		Keys:    newLoadKeys(),
	}
}

// Init initializes the load model
func (m LoadModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m LoadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.Input.Value())
			if path == "" {
				return m, notify(toastWarning, "Enter the path of a CSV, TSV or XLSX file.")
			}
			if m.Loading {
				return m, nil
			}
			m.Loading = true
			return m, loadFile(path, m.Options)

		case "ctrl+t":
			m.Options.HasHeader = !m.Options.HasHeader
			return m, nil

		case "ctrl+n":
			if m.sess.Dataset().Len() == 0 {
				return m, notify(toastWarning, "Load a contacts file first.")
			}
			return m, transition(ScreenTemplate)
		}

	case datasetLoadedMsg:
		m.Loading = false
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// View renders the load screen content
func (m LoadModel) View() string {
	var b strings.Builder

	b.WriteString(RenderTitle("Load contacts"))
	b.WriteString("\n")
	b.WriteString(RenderSubtitle("CSV, TSV and XLSX files are supported. Nothing is uploaded."))
	b.WriteString("\n\n")

	b.WriteString(FocusedInputStyle.Render(m.Input.View()))
	b.WriteString("\n\n")

	header := "no (columns named col1, col2, ...)"
	if m.Options.HasHeader {
		header = "yes"
	}
	b.WriteString(RenderField("Header", header))
	b.WriteString("\n")

	if m.Loading {
		b.WriteString("\n")
		b.WriteString(RenderSubtitle("Loading..."))
		b.WriteString("\n")
	}

	if ds := m.sess.Dataset(); ds.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(RenderField("File", ds.Source))
		b.WriteString("\n")
		b.WriteString(ValueStyle.Render(ds.Summary()))
		b.WriteString("\n")
		for i, w := range ds.Warnings {
			if i == 5 {
				b.WriteString(UnsetStyle.Render(fmt.Sprintf("  ... %d more warnings", len(ds.Warnings)-i)))
				b.WriteString("\n")
				break
			}
			b.WriteString(UnsetStyle.Render("  " + w.String()))
			b.WriteString("\n")
		}
	}

	return b.String()
}
