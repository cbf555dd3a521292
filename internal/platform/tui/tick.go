// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the duration of one tick at the given rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tickAfter(tickRate, 0)
}

// tickAfter schedules the next tick with an extra delay, used to hold the
// picture still for a moment after the player is hit.
func tickAfter(tickRate int, freeze time.Duration) tea.Cmd {
	return tea.Tick(tickInterval(tickRate)+freeze, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
