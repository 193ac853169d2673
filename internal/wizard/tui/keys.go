package tui

import "github.com/charmbracelet/bubbles/key"

// loadKeyMap defines key bindings for the load screen
type loadKeyMap struct {
	Load   key.Binding
	Header key.Binding
	Next   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k loadKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Load, k.Header, k.Next, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k loadKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Load, k.Header}, {k.Next, k.Quit}}
}

// templateKeyMap defines key bindings for the template screen
type templateKeyMap struct {
	Next key.Binding
	Back key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k templateKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Back}
}

// FullHelp returns keybindings for the expanded help view
func (k templateKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Back}}
}

// mappingKeyMap defines key bindings for the mapping screen
type mappingKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PrevCol  key.Binding
	NextCol  key.Binding
	Clear    key.Binding
	AutoBind key.Binding
	Start    key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k mappingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextCol, k.AutoBind, k.Start, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k mappingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevCol, k.NextCol},
		{k.Clear, k.AutoBind, k.Start, k.Back, k.Quit},
	}
}

// sessionKeyMap defines key bindings for the send screen
type sessionKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Open   key.Binding
	Copy   key.Binding
	Scroll key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k sessionKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Open, k.Copy, k.First, k.Last, k.Back, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k sessionKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Open, k.Copy, k.Scroll, k.Back, k.Quit},
	}
}

func newLoadKeys() loadKeyMap {
	return loadKeyMap{
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "load file"),
		),
		Header: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "toggle header row"),
		),
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "template"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func newTemplateKeys() templateKeyMap {
	return templateKeyMap{
		Next: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "map columns"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

func newMappingKeys() mappingKeyMap {
	return mappingKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevCol: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous column"),
		),
		NextCol: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("←/→", "cycle column"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "unset"),
		),
		AutoBind: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "auto-map"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newSessionKeys() sessionKeyMap {
	return sessionKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Open: key.NewBinding(
			key.WithKeys("o", "enter"),
			key.WithHelp("o", "open sms"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j"),
			key.WithHelp("↑/↓", "scroll row"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "mapping"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
	}
}
