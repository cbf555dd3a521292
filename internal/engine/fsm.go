package engine

import (
	"github.com/vovakirdan/shooter-arcade/internal/config"
	"github.com/vovakirdan/shooter-arcade/internal/core"
)

// State is the top-level phase of the game.
type State string

const (
	StateMenu             State = "menu"
	StateSubMenu          State = "submenu"
	StateDifficultySelect State = "difficulty"
	StatePlaying          State = "playing"
	StatePaused           State = "paused"
	StateGameOver         State = "gameover"
)

// Command tells the engine what a transition requires it to do.
type Command int

const (
	CmdNone Command = iota
	// CmdStartRun resets the score keeper, re-seeds the pools and applies
	// the selected profile.
	CmdStartRun
	// CmdSelectProfile makes Transition.Level the selected profile. During a
	// run it is also applied to the live profile immediately.
	CmdSelectProfile
	// CmdEndRun stops the simulation after the last life was lost.
	CmdEndRun
)

// Transition describes the outcome of one input to the machine.
type Transition struct {
	From    State
	To      State
	Command Command
	Level   config.DifficultyLevel
}

// Changed reports whether the active state changed.
func (t Transition) Changed() bool {
	return t.From != t.To
}

// Machine is the game state machine. It is total: any (state, action) pair
// without a rule leaves the state unchanged and issues no command.
type Machine struct {
	state State

	// inRun is set while a run exists that could be resumed.
	inRun bool
	// restartPending marks that difficulty selection was entered from Paused.
	restartPending bool
	// restartArmed is set once a level was picked mid-run; from then on the
	// run can only continue through a restart.
	restartArmed bool
}

// NewMachine returns a machine in the Menu state.
func NewMachine() *Machine {
	return &Machine{state: StateMenu}
}

// State returns the active state.
func (m *Machine) State() State {
	return m.state
}

// InRun reports whether a run is in progress, paused or not.
func (m *Machine) InRun() bool {
	return m.inRun
}

// RestartArmed reports whether a mid-run difficulty change is waiting for a
// restart.
func (m *Machine) RestartArmed() bool {
	return m.restartArmed
}

// Handle applies one input action.
func (m *Machine) Handle(a core.Action) Transition {
	from := m.state
	cmd := CmdNone
	var level config.DifficultyLevel

	switch m.state {
	case StateMenu:
		switch a {
		case core.ActionConfirm:
			cmd = m.start()
		case core.ActionMenu:
			m.state = StateSubMenu
		}

	case StateSubMenu:
		switch a {
		case core.ActionConfirm:
			m.state = StateDifficultySelect
		case core.ActionBack, core.ActionMenu:
			m.state = m.home()
		}

	case StateDifficultySelect:
		if lvl, ok := levelFor(a); ok {
			level = lvl
			cmd = CmdSelectProfile
			if m.restartPending {
				m.restartArmed = true
			}
			break
		}
		switch a {
		case core.ActionConfirm:
			if !m.restartPending || m.restartArmed {
				cmd = m.start()
			}
		case core.ActionRestart:
			if m.restartArmed {
				cmd = m.start()
			}
		case core.ActionBack, core.ActionMenu:
			m.state = m.home()
		}

	case StatePlaying:
		if a == core.ActionPause {
			m.state = StatePaused
		}

	case StatePaused:
		if lvl, ok := levelFor(a); ok {
			level = lvl
			cmd = CmdSelectProfile
			m.restartPending = true
			m.restartArmed = true
			break
		}
		switch a {
		case core.ActionPause:
			if !m.restartArmed {
				m.restartPending = false
				m.state = StatePlaying
			}
		case core.ActionMenu:
			m.restartPending = true
			m.state = StateSubMenu
		case core.ActionRestart:
			if m.restartArmed {
				cmd = m.start()
			}
		}

	case StateGameOver:
		switch a {
		case core.ActionConfirm, core.ActionRestart:
			cmd = m.start()
		case core.ActionMenu:
			m.state = StateSubMenu
		}
	}

	return Transition{From: from, To: m.state, Command: cmd, Level: level}
}

// LivesExhausted ends the run. It only applies while Playing.
func (m *Machine) LivesExhausted() Transition {
	from := m.state
	if m.state != StatePlaying {
		return Transition{From: from, To: from}
	}
	m.state = StateGameOver
	m.inRun = false
	m.restartPending = false
	m.restartArmed = false
	return Transition{From: from, To: m.state, Command: CmdEndRun}
}

func (m *Machine) start() Command {
	m.state = StatePlaying
	m.inRun = true
	m.restartPending = false
	m.restartArmed = false
	return CmdStartRun
}

// home is where closing a menu returns to.
func (m *Machine) home() State {
	if m.inRun {
		return StatePaused
	}
	return StateMenu
}

func levelFor(a core.Action) (config.DifficultyLevel, bool) {
	switch a {
	case core.ActionEasy:
		return config.DifficultyEasy, true
	case core.ActionMedium:
		return config.DifficultyMedium, true
	case core.ActionHard:
		return config.DifficultyHard, true
	}
	return "", false
}
