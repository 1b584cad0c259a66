package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/paddleball/internal/core"
)

// KeyMap defines the key bindings of the terminal backend.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// ShortHelp returns bindings for the one-line help under the playfield.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Escape, k.Quit}
}

// FullHelp returns bindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a key message to a game key. quit is true for the quit
// binding, which closes the game like a window-close would.
func (k KeyMap) Translate(msg tea.KeyMsg) (gk core.Key, quit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.KeyOther, true
	case key.Matches(msg, k.Escape):
		return core.KeyEscape, false
	case key.Matches(msg, k.Left):
		return core.KeyLeft, false
	case key.Matches(msg, k.Right):
		return core.KeyRight, false
	}
	return core.KeyOther, false
}
