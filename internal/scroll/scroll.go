// Package scroll animates in-page jumps so the target lands just below the
// fixed navbar.
package scroll

import (
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
)

const (
	// NavbarOffset is the space left above a scrolled-to element.
	NavbarOffset = 80

	DefaultDuration = 500 * time.Millisecond
	DefaultFrame    = 16 * time.Millisecond
)

// Target returns the scroll offset that aligns an element's top edge
// offset units below the viewport top.
func Target(elementTop, offset float64) float64 {
	return max(elementTop-offset, 0)
}

// Scroller runs one animated scroll at a time. Each frame is delivered to
// the apply callback; a new ScrollTo cancels the animation in flight.
type Scroller struct {
	sched    clock.Scheduler
	apply    func(y float64)
	offset   float64
	duration time.Duration
	frame    time.Duration

	mu    sync.Mutex
	pos   float64
	gen   uint64
	timer clock.Timer
}

type Option func(*Scroller)

func WithOffset(offset float64) Option {
	return func(s *Scroller) { s.offset = offset }
}

func WithDuration(d time.Duration) Option {
	return func(s *Scroller) { s.duration = d }
}

func WithFrame(d time.Duration) Option {
	return func(s *Scroller) { s.frame = d }
}

func New(sched clock.Scheduler, apply func(y float64), opts ...Option) *Scroller {
	s := &Scroller{
		sched:    sched,
		apply:    apply,
		offset:   NavbarOffset,
		duration: DefaultDuration,
		frame:    DefaultFrame,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Position is the last offset applied.
func (s *Scroller) Position() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// Jump records an offset changed by other means (wheel, keys) and cancels
// any animation.
func (s *Scroller) Jump(y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.pos = y
}

// ScrollTo animates from the current position to Target(elementTop) and
// returns that destination.
func (s *Scroller) ScrollTo(elementTop float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	to := Target(elementTop, s.offset)
	from := s.pos
	if from == to || s.duration <= 0 {
		s.pos = to
		s.apply(to)
		return to
	}

	frames := max(int(s.duration/s.frame), 1)
	s.schedule(s.gen, from, to, 1, frames)
	return to
}

func (s *Scroller) cancel() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scroller) schedule(gen uint64, from, to float64, i, n int) {
	s.timer = s.sched.AfterFunc(s.frame, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			return
		}
		y := to
		if i < n {
			y = from + (to-from)*EaseInOut(float64(i)/float64(n))
		}
		s.pos = y
		s.apply(y)
		if i < n {
			s.schedule(gen, from, to, i+1, n)
		} else {
			s.timer = nil
		}
	})
}

// EaseInOut is a cubic ease over t in [0,1].
func EaseInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2
	return 1 + f*f*f/2
}
