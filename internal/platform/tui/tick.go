// Package tui runs FreeCell in the terminal with Bubble Tea: the tick loop,
// key bindings, menus, the statistics screen and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/freecell/internal/core"
)

// TickMsg is sent to trigger a game tick. ID names the tick loop that sent
// it; a model ignores ticks from a loop it did not start.
type TickMsg struct {
	ID   uint64
	Time time.Time
}

var tickLoops atomic.Uint64

// nextTickID returns the ID for a new tick loop.
func nextTickID() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id uint64, tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}
