package core

// Action represents a semantic game action, abstracted from physical key presses.
// The same set is produced by the terminal key mapper and by the SSH session.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionFire           // Space - fire a projectile
	ActionPause          // P - pause/resume
	ActionMenu           // M, Escape - open the menu
	ActionConfirm        // Enter - start a run or confirm selection
	ActionBack           // B - close a menu
	ActionRestart        // R - restart after a difficulty change or game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionEasy           // 1 - select Easy
	ActionMedium         // 2 - select Medium
	ActionHard           // 3 - select Hard
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionFire:    "Fire",
	ActionPause:   "Pause",
	ActionMenu:    "Menu",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionEasy:    "Easy",
	ActionMedium:  "Medium",
	ActionHard:    "Hard",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether the action is one of the four directional actions.
// Movement actions are level-triggered: they stay active from press to release.
func (a Action) IsMovement() bool {
	switch a {
	case ActionLeft, ActionRight, ActionUp, ActionDown:
		return true
	}
	return false
}

// InputFrame holds the input for one simulation tick.
// Pressed actions fire once; movement actions also appear in Released when
// the key is let go so the avatar can stop.
type InputFrame struct {
	Actions  map[Action]bool
	Releases map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Releases: make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Release marks a movement action as released for this frame.
func (f *InputFrame) Release(a Action) {
	if f.Releases == nil {
		f.Releases = make(map[Action]bool)
	}
	f.Releases[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Released returns true if the given action was released this frame.
func (f InputFrame) Released(a Action) bool {
	return f.Releases[a]
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Releases) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Releases {
		delete(f.Releases, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Releases {
		clone.Releases[k] = v
	}
	return clone
}
