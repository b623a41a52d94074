package contact

import (
	"context"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/clock"
)

const (
	SubmitDelay = 2000 * time.Millisecond

	ButtonIdle    = "Send Message"
	ButtonSending = "Sending..."
)

// Submitter stands in for a mail backend: it only waits.
type Submitter struct {
	sched clock.Scheduler
	delay time.Duration
}

func NewSubmitter(sched clock.Scheduler) *Submitter {
	return &Submitter{sched: sched, delay: SubmitDelay}
}

// Go calls done once the simulated send completes.
func (s *Submitter) Go(done func()) clock.Timer {
	return s.sched.AfterFunc(s.delay, done)
}

// Wait blocks until the simulated send completes or ctx ends.
func (s *Submitter) Wait(ctx context.Context) error {
	sent := make(chan struct{})
	t := s.Go(func() { close(sent) })
	select {
	case <-sent:
		return nil
	case <-ctx.Done():
		t.Stop()
		return ctx.Err()
	}
}

// Form holds the state of an interactive form between submit and reset.
type Form struct {
	sub    *Submitter
	onSent func(Fields)

	mu      sync.Mutex
	fields  Fields
	errors  Errors
	sending bool
}

// NewForm wires a form to a submitter. onSent runs after the form has been
// cleared.
func NewForm(sub *Submitter, onSent func(Fields)) *Form {
	return &Form{sub: sub, onSent: onSent, errors: Errors{}}
}

func (f *Form) Set(fields Fields) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields = fields
}

func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(Errors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

func (f *Form) Sending() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sending
}

func (f *Form) ButtonLabel() string {
	if f.Sending() {
		return ButtonSending
	}
	return ButtonIdle
}

// Submit clears old errors and validates. Invalid input is returned as
// errors; valid input starts the simulated send. Submitting while a send
// is in flight is ignored.
func (f *Form) Submit() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sending {
		return Errors{}
	}
	f.errors = Validate(f.fields)
	if len(f.errors) > 0 {
		return f.errors
	}

	f.sending = true
	sent := f.fields
	f.sub.Go(func() {
		f.mu.Lock()
		f.fields = Fields{}
		f.sending = false
		f.mu.Unlock()

		if f.onSent != nil {
			f.onSent(sent)
		}
	})
	return f.errors
}
