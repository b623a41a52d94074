// Package typewriter animates a fixed list of strings into a text sink,
// typing each one a character at a time, pausing, deleting it, and moving
// on to the next, forever.
package typewriter

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/clock"
)

// ErrInvalidConfiguration is returned by Start for an empty command list,
// an empty command, or a negative delay.
var ErrInvalidConfiguration = errors.New("typewriter: invalid configuration")

// Sink receives the full text to display. Each call replaces the previous
// content.
type Sink interface {
	Render(text string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(text string)

func (f SinkFunc) Render(text string) { f(text) }

type Phase int

const (
	Typing Phase = iota
	Deleting
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Deleting:
		return "deleting"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Config holds the animation delays. Zero fields take the defaults.
type Config struct {
	TypeDelay      time.Duration `yaml:"type_delay"`
	DeleteDelay    time.Duration `yaml:"delete_delay"`
	PauseAfterType time.Duration `yaml:"pause_after_type"`
	InitialDelay   time.Duration `yaml:"initial_delay"`
}

func DefaultConfig() Config {
	return Config{
		TypeDelay:      100 * time.Millisecond,
		DeleteDelay:    50 * time.Millisecond,
		PauseAfterType: 2000 * time.Millisecond,
		InitialDelay:   1000 * time.Millisecond,
	}
}

func (c Config) withDefaults() (Config, error) {
	def := DefaultConfig()
	for _, f := range []struct {
		v   *time.Duration
		def time.Duration
	}{
		{&c.TypeDelay, def.TypeDelay},
		{&c.DeleteDelay, def.DeleteDelay},
		{&c.PauseAfterType, def.PauseAfterType},
		{&c.InitialDelay, def.InitialDelay},
	} {
		if *f.v < 0 {
			return c, fmt.Errorf("%w: negative delay %s", ErrInvalidConfiguration, *f.v)
		}
		if *f.v == 0 {
			*f.v = f.def
		}
	}
	return c, nil
}

// State is a snapshot of the animation position.
type State struct {
	Index  int
	Length int
	Phase  Phase
}

// Engine drives one animation. The zero value is not usable; call New.
type Engine struct {
	sched    clock.Scheduler
	onRender func()

	mu       sync.Mutex
	commands [][]rune
	sink     Sink
	cfg      Config
	state    State
	timer    clock.Timer
	gen      uint64
	running  bool
}

type Option func(*Engine)

// WithRenderHook registers f to be called after every render.
func WithRenderHook(f func()) Option {
	return func(e *Engine) {
		e.onRender = f
	}
}

func New(sched clock.Scheduler, opts ...Option) *Engine {
	e := &Engine{sched: sched}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start validates the input and schedules the first step after the initial
// delay. A running animation is cancelled and replaced.
func (e *Engine) Start(commands []string, sink Sink, cfg Config) error {
	if len(commands) == 0 {
		return fmt.Errorf("%w: empty command list", ErrInvalidConfiguration)
	}
	if sink == nil {
		return fmt.Errorf("%w: nil sink", ErrInvalidConfiguration)
	}
	runes := make([][]rune, len(commands))
	for i, c := range commands {
		if c == "" {
			return fmt.Errorf("%w: command %d is empty", ErrInvalidConfiguration, i)
		}
		runes[i] = []rune(c)
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.cancel()
	e.commands = runes
	e.sink = sink
	e.cfg = cfg
	e.state = State{Phase: Typing}
	e.running = true
	e.schedule(cfg.InitialDelay)

	logrus.WithField("commands", len(commands)).Debug("typewriter started")
	return nil
}

// Stop cancels the pending step. Once Stop returns the sink receives no
// further renders. Calling it more than once is harmless.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.running {
		return
	}
	e.cancel()
	e.running = false
	logrus.Debug("typewriter stopped")
}

// Running reports whether an animation is scheduled.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// cancel invalidates any in-flight step. Callers hold e.mu.
func (e *Engine) cancel() {
	e.gen++
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// schedule arms the single pending step. Callers hold e.mu.
func (e *Engine) schedule(d time.Duration) {
	gen := e.gen
	e.timer = e.sched.AfterFunc(d, func() { e.step(gen) })
}

func (e *Engine) step(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// A timer that already fired when Stop or Start ran carries an old
	// generation and must not touch state.
	if !e.running || gen != e.gen {
		return
	}

	cmd := e.commands[e.state.Index]
	var next time.Duration

	switch e.state.Phase {
	case Typing:
		e.state.Length++
		e.render(cmd)
		if e.state.Length == len(cmd) {
			e.state.Phase = Deleting
			next = e.cfg.PauseAfterType
		} else {
			next = e.cfg.TypeDelay
		}
	case Deleting:
		e.state.Length--
		e.render(cmd)
		if e.state.Length == 0 {
			e.state.Phase = Typing
			e.state.Index = (e.state.Index + 1) % len(e.commands)
		}
		next = e.cfg.DeleteDelay
	}

	e.schedule(next)
}

func (e *Engine) render(cmd []rune) {
	e.sink.Render(string(cmd[:e.state.Length]))
	if e.onRender != nil {
		e.onRender()
	}
}
