// Package clipboard implements the copy button attached to code samples.
package clipboard

import (
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/clock"
)

const (
	LabelCopy   = "Copy"
	LabelCopied = "Copied!"

	FeedbackDuration = 2000 * time.Millisecond
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteAll(text string) error
}

type system struct{}

// System returns the OS clipboard. It needs xclip, xsel or wl-copy on
// Linux; without them every write fails.
func System() Writer {
	return system{}
}

func (system) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Button copies one code block and shows transient feedback in its label.
type Button struct {
	w        Writer
	sched    clock.Scheduler
	code     string
	onChange func(label string)

	mu    sync.Mutex
	label string
	gen   uint64
	timer clock.Timer
}

type Option func(*Button)

// OnChange is called with the new label whenever it changes.
func OnChange(f func(label string)) Option {
	return func(b *Button) { b.onChange = f }
}

func NewButton(w Writer, sched clock.Scheduler, code string, opts ...Option) *Button {
	b := &Button{w: w, sched: sched, code: code, label: LabelCopy}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Button) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

// Click copies the code text verbatim. On failure the error is logged and
// the label is left as it was.
func (b *Button) Click() error {
	if err := b.w.WriteAll(b.code); err != nil {
		logrus.WithError(err).Warn("Failed to copy code")
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	if b.timer != nil {
		b.timer.Stop()
	}
	b.setLabel(LabelCopied)

	gen := b.gen
	b.timer = b.sched.AfterFunc(FeedbackDuration, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if gen != b.gen {
			return
		}
		b.timer = nil
		b.setLabel(LabelCopy)
	})
	return nil
}

func (b *Button) setLabel(l string) {
	if b.label == l {
		return
	}
	b.label = l
	if b.onChange != nil {
		b.onChange(l)
	}
}
