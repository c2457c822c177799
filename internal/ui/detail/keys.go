package detail

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is a menu action on the detail screen.
type Action int

const (
	ActionNone Action = iota
	ActionSettings
	ActionShare
	ActionReload
	ActionAccessible
)

// KeyMap binds keys to detail screen actions.
type KeyMap struct {
	Settings   key.Binding
	Share      key.Binding
	Reload     key.Binding
	Accessible key.Binding
}

// DefaultKeyMap returns the standard bindings. Share starts disabled and
// is enabled by the first successful load.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Settings: key.NewBinding(
			key.WithKeys("o", ","),
			key.WithHelp("o", "settings"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Accessible: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "read aloud text"),
		),
	}
	km.Share.SetEnabled(false)
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Share, k.Settings, k.Reload, k.Accessible}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// actionFor maps a key press to an action. Disabled bindings never match.
func (k KeyMap) actionFor(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Settings):
		return ActionSettings
	case key.Matches(msg, k.Share):
		return ActionShare
	case key.Matches(msg, k.Reload):
		return ActionReload
	case key.Matches(msg, k.Accessible):
		return ActionAccessible
	}
	return ActionNone
}
