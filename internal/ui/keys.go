package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the gallery.
type keyMap struct {
	Up            key.Binding
	Down          key.Binding
	Press         key.Binding
	FlipRemote    key.Binding
	CycleTheme    key.Binding
	ToggleJournal key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/↑", "previous switch"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/↓", "next switch"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		FlipRemote: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "flip remote value"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "cycle theme"),
		),
		ToggleJournal: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "toggle journal"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Press, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Press},
		{k.FlipRemote, k.CycleTheme, k.ToggleJournal},
		{k.Help, k.Quit},
	}
}
