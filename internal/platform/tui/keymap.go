package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pedal-arcade/internal/core"
)

// GameKeyMap holds the in-game key bindings.
type GameKeyMap struct {
	Pedal      key.Binding
	Left       key.Binding
	Right      key.Binding
	Jump       key.Binding
	Duck       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Share      key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pedal, k.Jump, k.Pause, k.Restart, k.Share, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pedal, k.Left, k.Right, k.Jump, k.Duck},
		{k.Pause, k.Restart, k.Share, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings. Space both pedals
// and jumps; each game only reads the action it understands.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Pedal: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space/enter", "pedal"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "run left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "run right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w", "jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "duck"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Share: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "share"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyEvent is what a single key message means to the game host.
type KeyEvent struct {
	// Discrete actions fire once per key message.
	Discrete []core.Action
	// Held actions stay set until the hold window lapses.
	Held       []core.Action
	Screenshot bool
	Quit       bool
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey classifies a key message.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyEvent {
	k := km.Keys
	var ev KeyEvent

	switch {
	case key.Matches(msg, k.Quit):
		ev.Quit = true
		return ev
	case key.Matches(msg, k.Back):
		ev.Discrete = append(ev.Discrete, core.ActionBack)
		return ev
	case key.Matches(msg, k.Screenshot):
		ev.Screenshot = true
		return ev
	}

	if key.Matches(msg, k.Pedal) {
		ev.Discrete = append(ev.Discrete, core.ActionPedal)
	}
	if key.Matches(msg, k.Pause) {
		ev.Discrete = append(ev.Discrete, core.ActionPause)
	}
	if key.Matches(msg, k.Restart) {
		ev.Discrete = append(ev.Discrete, core.ActionRestart)
	}
	if key.Matches(msg, k.Share) {
		ev.Discrete = append(ev.Discrete, core.ActionShare)
	}

	if key.Matches(msg, k.Left) {
		ev.Held = append(ev.Held, core.ActionLeft)
	}
	if key.Matches(msg, k.Right) {
		ev.Held = append(ev.Held, core.ActionRight)
	}
	if key.Matches(msg, k.Jump) {
		ev.Held = append(ev.Held, core.ActionJump)
	}
	if key.Matches(msg, k.Duck) {
		ev.Held = append(ev.Held, core.ActionDuck)
	}
	return ev
}

// MapMouse returns ActionPedal for a left-button press.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) core.Action {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.ActionPedal
	}
	return core.ActionNone
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
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
