// Package tui provides the Bubble Tea host for Pixel Blaster.
// It handles the terminal UI loop, input mapping, persistence and the SSH
// front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lastTickID hands out tick chain identifiers.
var lastTickID atomic.Int64

func nextTickID() int {
	return int(lastTickID.Add(1))
}

// TickMsg is sent to trigger a game simulation tick. ID tells the chain
// that scheduled it, so a chain left over from an earlier game is ignored.
type TickMsg struct {
	ID   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id, tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Time: t}
	})
}

// tickClock is the clock handed to the game. The host moves it once per
// tick, so every reading inside a step agrees and can be recorded.
type tickClock struct {
	now time.Time
}

// Now returns the time of the current tick.
func (c *tickClock) Now() time.Time {
	return c.now
}

func (c *tickClock) set(t time.Time) {
	c.now = t
}
