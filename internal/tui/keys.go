package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all dashboard key bindings with built-in help text.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Escape    key.Binding

	// Navigation
	Select   key.Binding
	Left     key.Binding
	Right    key.Binding
	Menu     key.Binding
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Alerts
	ToggleAlerts key.Binding
	ToggleSMS    key.Binding
	ToggleEmail  key.Binding
	TogglePush   key.Binding

	// Regional
	NextRegion key.Binding
	PrevRegion key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "h"),
			key.WithHelp("?/h", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("escape", "esc"),
			key.WithHelp("esc", "close"),
		),

		Select: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "jump to section"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←", "previous section"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
			key.WithHelp("→", "next section"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle menu"),
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
			key.WithHelp("enter", "open menu item"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("home", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("end", "go to bottom"),
		),

		ToggleAlerts: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "alerts on/off"),
		),
		ToggleSMS: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sms alerts"),
		),
		ToggleEmail: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "email alerts"),
		),
		TogglePush: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "push notifications"),
		),

		NextRegion: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "next region"),
		),
		PrevRegion: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "previous region"),
		),
	}
}
