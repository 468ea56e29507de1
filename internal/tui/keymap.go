package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the browser key bindings. It implements help.KeyMap.
type KeyMap struct {
	NextSlice    key.Binding
	PrevSlice    key.Binding
	NextStrategy key.Binding
	PrevStrategy key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextSlice: key.NewBinding(
			key.WithKeys("right", "l", "pgdown"),
			key.WithHelp("→/l", "next slice"),
		),
		PrevSlice: key.NewBinding(
			key.WithKeys("left", "h", "pgup"),
			key.WithHelp("←/h", "prev slice"),
		),
		NextStrategy: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab", "next strategy"),
		),
		PrevStrategy: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab", "prev strategy"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSlice, k.PrevSlice, k.NextStrategy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSlice, k.PrevSlice},
		{k.NextStrategy, k.PrevStrategy},
		{k.Help, k.Quit},
	}
}
