package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/csvtext/internal/compose"
	"github.com/muurk/csvtext/internal/dataset"
	"github.com/muurk/csvtext/internal/logging"
	"github.com/muurk/csvtext/internal/session"
)

// Screen represents the current active screen in the application
type Screen string

const (
	ScreenLoad     Screen = "load"
	ScreenTemplate Screen = "template"
	ScreenMapping  Screen = "mapping"
	ScreenSession  Screen = "session"
)

// Messages for screen transitions
type screenTransitionMsg struct {
	screen Screen
}

// transition returns a command that switches screens
func transition(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return screenTransitionMsg{screen: screen}
	}
}

// Options configures a new wizard. Everything is optional; missing pieces
// are collected on the matching screen.
type Options struct {
	Path        string            // Pre-filled file path
	Data        *dataset.Dataset  // Already loaded contacts
	DataOptions dataset.Options   // Used when loading from the Load screen
	Template    string            // Initial message template
	Mappings    map[string]string // variable -> column
	PhoneColumn string
	AutoBind    bool

	Launcher  compose.Launcher
	Clipboard compose.Clipboard
}

// AppModel is the top-level coordinator model that manages screen transitions
type AppModel struct {
	CurrentScreen  Screen
	PreviousScreen Screen

	LoadModel     LoadModel
	TemplateModel TemplateModel
	MappingModel  MappingModel
	SessionModel  SessionModel

	Session *session.Session

	sink      *previewSink
	launcher  compose.Launcher
	clipboard compose.Clipboard
	autoBind  bool

	toast   *toast
	toastID int

	Width  int
	Height int
}

// NewAppModel builds the wizard and applies opts to a fresh session. It
// fails when a pre-set mapping names an unknown variable or column.
func NewAppModel(opts Options) (AppModel, error) {
	if opts.Launcher == nil {
		opts.Launcher = compose.NewSystemLauncher(compose.PlatformAuto)
	}
	if opts.Clipboard == nil {
		opts.Clipboard = compose.SystemClipboard{}
	}

	sink := &previewSink{}
	sess := session.New(session.WithObserver(sink))

	if opts.Data != nil {
		sess.Load(opts.Data)
	}
	sess.SetTemplate(opts.Template)
	for variable, column := range opts.Mappings {
		if err := sess.Bind(variable, column); err != nil {
			return AppModel{}, fmt.Errorf("--map %s=%s: %w", variable, column, err)
		}
	}
	if opts.PhoneColumn != "" {
		if err := sess.BindPhone(opts.PhoneColumn); err != nil {
			return AppModel{}, fmt.Errorf("--phone %s: %w", opts.PhoneColumn, err)
		}
	}
	if opts.AutoBind {
		sess.AutoBind()
	}

	m := AppModel{
		Session:   sess,
		sink:      sink,
		launcher:  opts.Launcher,
		clipboard: opts.Clipboard,
		autoBind:  opts.AutoBind,
	}
	m.LoadModel = NewLoadModel(sess, opts.Path, opts.DataOptions)
	m.CurrentScreen = m.initialScreen()
	m.initScreen(m.CurrentScreen)

	return m, nil
}

// initialScreen skips screens whose input was supplied up front
func (m AppModel) initialScreen() Screen {
	switch {
	case m.Session.Dataset().Len() == 0:
		return ScreenLoad
	case m.Session.Template() == "":
		return ScreenTemplate
	default:
		return ScreenMapping
	}
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	switch m.CurrentScreen {
	case ScreenLoad:
		return m.LoadModel.Init()
	case ScreenTemplate:
		return m.TemplateModel.Init()
	default:
		return nil
	}
}

// Update handles all messages and routes them to the appropriate screen
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.LoadModel.Width, m.LoadModel.Height = msg.Width, msg.Height
		m.MappingModel.Width, m.MappingModel.Height = msg.Width, msg.Height
		return m.updateCurrentScreen(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if msg.String() == "q" && (m.CurrentScreen == ScreenMapping || m.CurrentScreen == ScreenSession) {
			return m, tea.Quit
		}
		if msg.String() == "esc" && m.CurrentScreen == ScreenLoad {
			return m, tea.Quit
		}

	case screenTransitionMsg:
		return m.transitionTo(msg.screen)

	case datasetLoadedMsg:
		return m.datasetLoaded(msg)

	case toastMsg:
		m.toastID++
		m.toast = &toast{text: msg.text, level: msg.level, id: m.toastID}
		return m, expireToast(m.toastID)

	case toastExpiredMsg:
		if m.toast != nil && m.toast.id == msg.id {
			m.toast = nil
		}
		return m, nil
	}

	return m.updateCurrentScreen(msg)
}

// updateCurrentScreen routes updates to the currently active screen
func (m AppModel) updateCurrentScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.CurrentScreen {
	case ScreenLoad:
		updated, c := m.LoadModel.Update(msg)
		m.LoadModel = updated.(LoadModel)
		cmd = c

	case ScreenTemplate:
		updated, c := m.TemplateModel.Update(msg)
		m.TemplateModel = updated.(TemplateModel)
		cmd = c

	case ScreenMapping:
		updated, c := m.MappingModel.Update(msg)
		m.MappingModel = updated.(MappingModel)
		cmd = c

	case ScreenSession:
		updated, c := m.SessionModel.Update(msg)
		m.SessionModel = updated.(SessionModel)
		cmd = c
	}

	return m, cmd
}

// datasetLoadedMsg is handled here because it replaces session data
func (m AppModel) datasetLoaded(msg datasetLoadedMsg) (tea.Model, tea.Cmd) {
	updated, _ := m.LoadModel.Update(msg)
	m.LoadModel = updated.(LoadModel)

	if msg.err != nil {
		logging.LogLoadFailed(m.Session.ID, filepath.Base(msg.path), msg.err)
		return m, notify(toastError, fmt.Sprintf("Could not load %s: %v", msg.path, msg.err))
	}

	cleared := m.Session.Load(msg.data)
	if m.autoBind {
		m.Session.AutoBind()
	}
	m.sink.ready = false

	level, text := toastInfo, msg.data.Summary()
	switch {
	case msg.data.Len() == 0:
		level, text = toastWarning, "The file has no data rows."
	case len(msg.data.Warnings) > 0:
		level, text = toastWarning, fmt.Sprintf("Loaded %d rows with %d warnings.", msg.data.Len(), len(msg.data.Warnings))
	case len(cleared) > 0:
		level, text = toastWarning, fmt.Sprintf("Loaded %d rows; %d mappings cleared.", msg.data.Len(), len(cleared))
	}

	if msg.data.Len() == 0 {
		return m, notify(level, text)
	}
	next := ScreenTemplate
	if m.Session.Template() != "" {
		next = ScreenMapping
	}
	return m, tea.Batch(notify(level, text), transition(next))
}

// transitionTo transitions to a new screen
func (m AppModel) transitionTo(screen Screen) (tea.Model, tea.Cmd) {
	m.PreviousScreen = m.CurrentScreen
	m.CurrentScreen = screen
	return m, m.initScreen(screen)
}

// initScreen builds the target screen from current session state
func (m *AppModel) initScreen(screen Screen) tea.Cmd {
	var cmd tea.Cmd
	size := tea.WindowSizeMsg{Width: m.Width, Height: m.Height}

	switch screen {
	case ScreenLoad:
		m.LoadModel.Input.Focus()
		cmd = m.LoadModel.Init()

	case ScreenTemplate:
		m.TemplateModel = NewTemplateModel(m.Session)
		if m.Width > 0 {
			updated, _ := m.TemplateModel.Update(size)
			m.TemplateModel = updated.(TemplateModel)
		}
		cmd = m.TemplateModel.Init()

	case ScreenMapping:
		m.MappingModel = NewMappingModel(m.Session)
		m.MappingModel.Width, m.MappingModel.Height = m.Width, m.Height

	case ScreenSession:
		if m.Session.Started() {
			// Refresh the preview in case mappings changed
			m.Session.Jump(m.Session.Index())
		} else if err := m.Session.Start(); err != nil {
			m.CurrentScreen = ScreenMapping
			return notify(toastError, session.UserMessage(err))
		}
		m.SessionModel = NewSessionModel(m.Session, m.sink, m.launcher, m.clipboard)
		if m.Width > 0 {
			updated, _ := m.SessionModel.Update(size)
			m.SessionModel = updated.(SessionModel)
		}
	}
	return cmd
}

// View renders the current screen inside the application container
func (m AppModel) View() string {
	var step, content, helpText string

	switch m.CurrentScreen {
	case ScreenLoad:
		step, content = "1 · Load", m.LoadModel.View()
		helpText = m.LoadModel.Help.View(m.LoadModel.Keys)
	case ScreenTemplate:
		step, content = "2 · Template", m.TemplateModel.View()
		helpText = m.TemplateModel.Help.View(m.TemplateModel.Keys)
	case ScreenMapping:
		step, content = "3 · Mapping", m.MappingModel.View()
		helpText = m.MappingModel.Help.View(m.MappingModel.Keys)
	case ScreenSession:
		step, content = "4 · Send", m.SessionModel.View()
		helpText = m.SessionModel.Help.View(m.SessionModel.Keys)
	default:
		content = "Unknown screen"
	}

	return RenderApplicationContainer(step, content, m.toast.View(), helpText, m.Width, m.Height)
}
