package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zachkp/portfolio/internal/clock"
)

// runMsg carries a timer callback onto the program's event loop.
type runMsg func()

// loopScheduler delivers callbacks as messages, so every timer-driven
// mutation happens inside Update and the model needs no locking of its own.
type loopScheduler struct {
	events chan tea.Msg
}

var _ clock.Scheduler = loopScheduler{}

func newLoopScheduler() loopScheduler {
	return loopScheduler{events: make(chan tea.Msg, 64)}
}

func (s loopScheduler) AfterFunc(d time.Duration, f func()) clock.Timer {
	return time.AfterFunc(d, func() { s.events <- runMsg(f) })
}

func (s loopScheduler) listen() tea.Cmd {
	return func() tea.Msg {
		return <-s.events
	}
}
