package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/simon-says/internal/core"
	"github.com/vovakirdan/simon-says/internal/simon"
)

// KeyMap defines the key bindings used while playing.
type KeyMap struct {
	Start  key.Binding
	Red    key.Binding
	Blue   key.Binding
	Green  key.Binding
	Yellow key.Binding
	Back   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Red, k.Blue, k.Green, k.Yellow, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Red, k.Blue, k.Green, k.Yellow},
		{k.Start, k.Back, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default play bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " ", "s"),
			key.WithHelp("enter/space", "start"),
		),
		Red: key.NewBinding(
			key.WithKeys("1", "r"),
			key.WithHelp("1/r", "red"),
		),
		Blue: key.NewBinding(
			key.WithKeys("2", "b"),
			key.WithHelp("2/b", "blue"),
		),
		Green: key.NewBinding(
			key.WithKeys("3", "g"),
			key.WithHelp("3/g", "green"),
		),
		Yellow: key.NewBinding(
			key.WithKeys("4", "y"),
			key.WithHelp("4/y", "yellow"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper uses.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Start):
		return core.ActionStart, false
	case key.Matches(msg, km.keys.Red):
		return core.ActionRed, false
	case key.Matches(msg, km.keys.Blue):
		return core.ActionBlue, false
	case key.Matches(msg, km.keys.Green):
		return core.ActionGreen, false
	case key.Matches(msg, km.keys.Yellow):
		return core.ActionYellow, false
	case key.Matches(msg, km.keys.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// PadColor returns the pad a pad action activates.
func PadColor(a core.Action) (simon.Color, bool) {
	switch a {
	case core.ActionRed:
		return simon.Red, true
	case core.ActionBlue:
		return simon.Blue, true
	case core.ActionGreen:
		return simon.Green, true
	case core.ActionYellow:
		return simon.Yellow, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
