package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Date   key.Binding
	Counts key.Binding
	Book   key.Binding
	Tab    key.Binding
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Date: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "change date"),
		),
		Counts: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "participants"),
		),
		Book: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "book"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch panel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/toggle"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
