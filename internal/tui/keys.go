package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the path prompt.
type KeyMap struct {
	Complete key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// HelpText returns help text for the path prompt.
func (k KeyMap) HelpText() string {
	return "tab complete • enter confirm • esc cancel"
}
