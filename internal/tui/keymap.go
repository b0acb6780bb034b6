package tui

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	refresh key.Binding
	top     key.Binding
	quit    key.Binding
}

var DefaultKeyMap = keymap{
	refresh: key.NewBinding(
		key.WithKeys("r", "R"),
		key.WithHelp("r", "Refresh"),
	),
	top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "Top"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
}
