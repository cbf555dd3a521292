package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Menu    key.Binding
	Confirm key.Binding
	Back    key.Binding
	Restart key.Binding
	Easy    key.Binding
	Medium  key.Binding
	Hard    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Menu, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.Fire},
		{k.Pause, k.Menu, k.Confirm, k.Back, k.Restart},
		{k.Easy, k.Medium, k.Hard, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Fire:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "fire")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Menu:    key.NewBinding(key.WithKeys("m", "esc"), key.WithHelp("m/esc", "menu")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "play")),
		Back:    key.NewBinding(key.WithKeys("b", "backspace"), key.WithHelp("b", "back")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Easy:    key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Medium:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Hard:    key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     GameKeyMap
	bindings []binding
}

type binding struct {
	key    *key.Binding
	action core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	km := &KeyMapper{keys: DefaultGameKeyMap()}
	k := &km.keys
	km.bindings = []binding{
		{&k.Left, core.ActionLeft},
		{&k.Right, core.ActionRight},
		{&k.Up, core.ActionUp},
		{&k.Down, core.ActionDown},
		{&k.Fire, core.ActionFire},
		{&k.Pause, core.ActionPause},
		{&k.Menu, core.ActionMenu},
		{&k.Confirm, core.ActionConfirm},
		{&k.Back, core.ActionBack},
		{&k.Restart, core.ActionRestart},
		{&k.Easy, core.ActionEasy},
		{&k.Medium, core.ActionMedium},
		{&k.Hard, core.ActionHard},
		{&k.Quit, core.ActionQuit},
	}
	return km
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, *b.key) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
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

// Terminals report held keys as a press followed by auto-repeats and never
// report the release. A held key is considered released once no repeat has
// arrived for a while; the first repeat comes later than the following ones.
const (
	firstRepeatTimeout = 550 * time.Millisecond
	repeatTimeout      = 120 * time.Millisecond
)

// HoldTracker synthesizes release events for movement keys.
type HoldTracker struct {
	held map[core.Action]hold
}

type hold struct {
	last     time.Time
	repeated bool
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{held: make(map[core.Action]hold)}
}

// Press records a press or auto-repeat of a movement action. It reports
// whether this is a fresh press. Pressing a direction drops the opposite
// one on the same axis.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	if opp, ok := opposite[a]; ok {
		delete(h.held, opp)
	}
	_, held := h.held[a]
	h.held[a] = hold{last: now, repeated: held}
	return !held
}

// Expire returns the actions whose key has not repeated in time and
// forgets them.
func (h *HoldTracker) Expire(now time.Time) []core.Action {
	var released []core.Action
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown} {
		st, ok := h.held[a]
		if !ok {
			continue
		}
		timeout := firstRepeatTimeout
		if st.repeated {
			timeout = repeatTimeout
		}
		if now.Sub(st.last) >= timeout {
			delete(h.held, a)
			released = append(released, a)
		}
	}
	return released
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.held)
}

var opposite = map[core.Action]core.Action{
	core.ActionLeft:  core.ActionRight,
	core.ActionRight: core.ActionLeft,
	core.ActionUp:    core.ActionDown,
	core.ActionDown:  core.ActionUp,
}
