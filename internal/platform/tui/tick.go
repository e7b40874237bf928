// Package tui runs Lexicon in a terminal: the Bubble Tea model stepping the
// game, key mapping, color rendering, the scoreboard and the SSH front end.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Tick rate bounds. Rates above maxTickRate only burn CPU on a terminal.
const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval is the time between ticks. A non-positive rate means the
// default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(min(tickRate, maxTickRate))
}

// tickCmd schedules the next simulation tick.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
