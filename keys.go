package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Send     key.Binding
	Capture  key.Binding
	Clear    key.Binding
	OpenHelp key.Binding
	Quit     key.Binding
}

var Keys = Keymap{
	Send: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "send to clipboard"),
	),
	Capture: key.NewBinding(
		key.WithKeys("ctrl+g"),
		key.WithHelp("ctrl+g", "capture"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear text"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("f1"),
		key.WithHelp("f1", "help / keys"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("esc", "quit"),
	),
}

// ShortHelp feeds the footer legend.
func (k Keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Send, k.Capture, k.OpenHelp, k.Quit}
}

func (k Keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.Legend()}
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Send,
		k.Capture,
		k.Clear,
		k.OpenHelp,
		k.Quit,
	}
}
