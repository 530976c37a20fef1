package components

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the portfolio
type KeyMap struct {
	Home      key.Binding
	About     key.Binding
	Skills    key.Binding
	Projects  key.Binding
	Contact   key.Binding
	Next      key.Binding
	Prev      key.Binding
	Up        key.Binding
	Down      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home: key.NewBinding(
			key.WithKeys("1", "h"),
			key.WithHelp("1/h", "home"),
		),
		About: key.NewBinding(
			key.WithKeys("2", "a"),
			key.WithHelp("2/a", "about"),
		),
		Skills: key.NewBinding(
			key.WithKeys("3", "s"),
			key.WithHelp("3/s", "skills"),
		),
		Projects: key.NewBinding(
			key.WithKeys("4", "p"),
			key.WithHelp("4/p", "projects"),
		),
		Contact: key.NewBinding(
			key.WithKeys("5", "c"),
			key.WithHelp("5/c", "contact"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
	}
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Down, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Home, k.About, k.Skills, k.Projects, k.Contact},
		{k.Next, k.Prev, k.Up, k.Down},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
