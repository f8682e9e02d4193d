// Package tui provides the Bubble Tea integration for Simon Says.
// It handles the terminal UI loop, input mapping, the menu and score screens,
// and serving the game over SSH.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to advance the game clock. Each play screen tags its ticks
// so a loop left over from an earlier screen is dropped.
type TickMsg struct {
	loop uint64
	At   time.Time
}

var tickLoops atomic.Uint64

// newTickLoop returns a fresh loop identifier.
func newTickLoop() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(loop uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{loop: loop, At: t}
	})
}
