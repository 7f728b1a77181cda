package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings shared by all modes and the help line
type KeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Up        key.Binding
	Down      key.Binding
	Activate  key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// Keys is the application key map
var Keys = KeyMap{
	Open: key.NewBinding(
		key.WithKeys("ctrl+k", "/"),
		key.WithHelp("ctrl+k", "search"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "ctrl+p"),
		key.WithHelp("↑", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "ctrl+n"),
		key.WithHelp("↓", "next"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}

// NormalHelp returns the bindings shown on the home screen
func (k KeyMap) NormalHelp() []key.Binding {
	return []key.Binding{k.Open, k.Help, k.Quit}
}

// SearchHelp returns the bindings shown inside the overlay
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.Close}
}
