// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pedal-arcade/internal/loop"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg struct {
	Time time.Time
	gen  uint64
}

// tickGen numbers tick chains so a model ignores ticks left over from a
// game that was closed in the same program.
var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next frame. Quitting the program drops the pending
// tick, which is the loop's teardown.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	return tea.Tick(loop.Interval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, gen: gen}
	})
}
