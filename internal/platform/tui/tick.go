// Package tui provides the Bubble Tea integration for the finger-snake
// host. It owns the driving poll loop, maps terminal mouse motion into
// pointer samples, and renders engine snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// PollMsg is sent to trigger one engine poll.
type PollMsg time.Time

// pollCmd returns a Bubble Tea command that sends poll messages at the
// given rate. The engine's logical tick is decoupled from this rate; the
// engine replays as many fixed ticks as wall-clock time requires.
func pollCmd(pollRate int) tea.Cmd {
	if pollRate <= 0 {
		pollRate = 33
	}
	interval := time.Second / time.Duration(pollRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}
