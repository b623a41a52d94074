package contact

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
)

const (
	SuccessText = "Message sent successfully! I'll get back to you soon."

	NotifyVisibleFor = 5000 * time.Millisecond
	NotifyHideFor    = 300 * time.Millisecond
)

type NotificationState int

const (
	Shown NotificationState = iota
	Hiding
	Removed
)

func (s NotificationState) String() string {
	switch s {
	case Shown:
		return "shown"
	case Hiding:
		return "hiding"
	case Removed:
		return "removed"
	}
	return "unknown"
}

// Notification is a toast that removes itself: visible, then a hide
// transition, then gone.
type Notification struct {
	Text string

	sched    clock.Scheduler
	onChange func(NotificationState)

	mu    sync.Mutex
	state NotificationState
	timer clock.Timer
}

// Notify shows text and schedules its dismissal.
func Notify(sched clock.Scheduler, text string, onChange func(NotificationState)) *Notification {
	n := &Notification{Text: text, sched: sched, onChange: onChange, state: Shown}

	n.mu.Lock()
	defer n.mu.Unlock()
	n.timer = sched.AfterFunc(NotifyVisibleFor, n.hide)
	return n
}

func (n *Notification) State() NotificationState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Dismiss starts the hide transition early.
func (n *Notification) Dismiss() {
	n.mu.Lock()
	if n.state != Shown {
		n.mu.Unlock()
		return
	}
	n.timer.Stop()
	n.mu.Unlock()

	n.hide()
}

func (n *Notification) hide() {
	n.mu.Lock()
	if n.state != Shown {
		n.mu.Unlock()
		return
	}
	n.state = Hiding
	n.timer = n.sched.AfterFunc(NotifyHideFor, n.remove)
	n.mu.Unlock()

	n.changed(Hiding)
}

func (n *Notification) remove() {
	n.mu.Lock()
	n.state = Removed
	n.timer = nil
	n.mu.Unlock()

	n.changed(Removed)
}

func (n *Notification) changed(s NotificationState) {
	if n.onChange != nil {
		n.onChange(s)
	}
}
