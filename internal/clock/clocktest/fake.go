// Package clocktest provides a deterministic Scheduler for tests.
package clocktest

import (
	"sort"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
)

// Fake is a manually advanced clock. Callbacks run synchronously on the
// goroutine calling Advance or FireNext, in deadline order.
type Fake struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*fakeTimer
}

type fakeTimer struct {
	f       *Fake
	at      time.Duration
	seq     uint64
	fn      func()
	stopped bool
}

var _ clock.Scheduler = (*Fake)(nil)

// NewFake returns a fake clock at elapsed time zero.
func NewFake() *Fake {
	return &Fake{}
}

func (f *Fake) AfterFunc(d time.Duration, fn func()) clock.Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	if d < 0 {
		d = 0
	}
	f.seq++
	t := &fakeTimer{f: f, at: f.now + d, seq: f.seq, fn: fn}
	f.timers = append(f.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()

	for i, p := range t.f.timers {
		if p == t {
			t.f.timers = append(t.f.timers[:i], t.f.timers[i+1:]...)
			t.stopped = true
			return true
		}
	}
	return false
}

// Now returns the elapsed fake time.
func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Pending returns the number of scheduled callbacks.
func (f *Fake) Pending() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.timers)
}

// Until returns the time remaining before the next callback is due.
func (f *Fake) Until() (time.Duration, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t := f.next()
	if t == nil {
		return 0, false
	}
	return t.at - f.now, true
}

// Advance moves the clock forward by d, firing every callback that falls
// due, including ones scheduled by callbacks fired along the way.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	target := f.now + d
	f.mu.Unlock()

	for {
		f.mu.Lock()
		t := f.next()
		if t == nil || t.at > target {
			f.now = target
			f.mu.Unlock()
			return
		}
		f.pop(t)
		f.now = t.at
		f.mu.Unlock()

		t.fn()
	}
}

// FireNext jumps to the next deadline and runs that single callback.
func (f *Fake) FireNext() bool {
	f.mu.Lock()
	t := f.next()
	if t == nil {
		f.mu.Unlock()
		return false
	}
	f.pop(t)
	f.now = t.at
	f.mu.Unlock()

	t.fn()
	return true
}

func (f *Fake) next() *fakeTimer {
	if len(f.timers) == 0 {
		return nil
	}
	sort.SliceStable(f.timers, func(i, j int) bool {
		if f.timers[i].at == f.timers[j].at {
			return f.timers[i].seq < f.timers[j].seq
		}
		return f.timers[i].at < f.timers[j].at
	})
	return f.timers[0]
}

func (f *Fake) pop(t *fakeTimer) {
	for i, p := range f.timers {
		if p == t {
			f.timers = append(f.timers[:i], f.timers[i+1:]...)
			return
		}
	}
}
