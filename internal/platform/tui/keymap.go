package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings shared by every session screen.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevScreen key.Binding
	NextScreen key.Binding
	Select     key.Binding
	Announce   key.Binding
	NextWeek   key.Binding
	Save       key.Binding
	Clear      key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextScreen, k.Select, k.NextWeek, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevScreen, k.NextScreen},
		{k.Select, k.Announce, k.NextWeek},
		{k.Save, k.Clear, k.Quit},
	}
}

// DefaultKeyMap returns the default session bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "move down"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "prev screen"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "next screen"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Announce: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "announce release"),
		),
		NextWeek: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next week"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear notices"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
