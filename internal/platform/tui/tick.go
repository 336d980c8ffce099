// Package tui runs Tetris sessions in the terminal with Bubble Tea. It owns
// the tick loop, key bindings, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// model that scheduled it, so a tick still in flight when a session swaps
// games does not start a second loop.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopSeq atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
