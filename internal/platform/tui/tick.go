// Package tui provides the Bubble Tea integration for oddtile.
// It handles the terminal UI loop, input mapping, timers and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/oddtile/internal/oddtile"
)

// CountdownMsg is delivered once per countdown interval. The token ties it
// to the game that armed it; ticks for an older game are dropped.
type CountdownMsg struct {
	Token oddtile.Token
	At    time.Time // When the tick was due
}

// FeedbackClearMsg asks the game to hide the correct/wrong indicator.
type FeedbackClearMsg struct {
	Token oddtile.Token
}

// countdownCmd schedules a countdown tick due at the given time. A time
// already past fires immediately.
func countdownCmd(tok oddtile.Token, at time.Time) tea.Cmd {
	return tea.Tick(time.Until(at), func(time.Time) tea.Msg {
		return CountdownMsg{Token: tok, At: at}
	})
}

// nextTick returns when the tick after msg is due. Deadlines advance from
// the previous deadline, not from delivery, so handling delays do not add
// up over a game.
func nextTick(msg CountdownMsg, interval time.Duration, now time.Time) time.Time {
	if msg.At.IsZero() {
		return now.Add(interval)
	}
	return msg.At.Add(interval)
}

// feedbackCmd schedules the feedback indicator to clear.
func feedbackCmd(tok oddtile.Token, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return FeedbackClearMsg{Token: tok}
	})
}
