// Package tui provides the Bubble Tea integration for the snake engine.
// It handles the terminal UI loop, input mapping, rendering, and the SSH
// server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after
// the given interval. The interval comes from the latest snapshot, so
// leveling up shortens it.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
