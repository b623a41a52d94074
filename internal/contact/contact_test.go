package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/clock/clocktest"
)

var valid = Fields{
	Name:    "Ada",
	Email:   "ada@example.com",
	Subject: "Hello there",
	Message: "I would like to talk about a project.",
}

func TestValidateAccepts(t *testing.T) {
	assert.Empty(t, Validate(valid))
}

func TestValidateRequired(t *testing.T) {
	errs := Validate(Fields{Name: "  ", Email: "\t"})
	assert.Equal(t, Errors{
		Name:    "Name is required",
		Email:   "Email is required",
		Subject: "Subject is required",
		Message: "Message is required",
	}, errs)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Fields)
		field Field
		want  string
	}{
		{"short name", func(f *Fields) { f.Name = " A " }, Name, "Name must be at least 2 characters long"},
		{"no at", func(f *Fields) { f.Email = "ada.example.com" }, Email, "Please enter a valid email address"},
		{"no tld", func(f *Fields) { f.Email = "ada@example" }, Email, "Please enter a valid email address"},
		{"space", func(f *Fields) { f.Email = "a da@example.com" }, Email, "Please enter a valid email address"},
		{"short subject", func(f *Fields) { f.Subject = "Hi" }, Subject, "Subject must be at least 5 characters long"},
		{"short message", func(f *Fields) { f.Message = "too short" }, Message, "Message must be at least 10 characters long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := valid
			tt.edit(&f)
			assert.Equal(t, Errors{tt.field: tt.want}, Validate(f))
		})
	}
}

func TestValidateTrims(t *testing.T) {
	f := valid
	f.Email = "  ada@example.com  "
	f.Name = " Al "
	assert.Empty(t, Validate(f))
}

func TestSubmitterWait(t *testing.T) {
	require.NoError(t, (&Submitter{sched: clock.Real(), delay: time.Millisecond}).Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	clk := clocktest.NewFake()
	err := NewSubmitter(clk).Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, clk.Pending())
}

func TestFormSubmitInvalid(t *testing.T) {
	clk := clocktest.NewFake()
	form := NewForm(NewSubmitter(clk), nil)
	form.Set(Fields{Name: "A"})

	errs := form.Submit()
	assert.Len(t, errs, 4)
	assert.Equal(t, errs, form.Errors())
	assert.False(t, form.Sending())
	assert.Zero(t, clk.Pending())

	form.Set(valid)
	assert.Empty(t, form.Submit())
	assert.Empty(t, form.Errors())
}

func TestFormSubmitValid(t *testing.T) {
	clk := clocktest.NewFake()
	var sent []Fields
	form := NewForm(NewSubmitter(clk), func(f Fields) { sent = append(sent, f) })
	form.Set(valid)

	assert.Empty(t, form.Submit())
	assert.True(t, form.Sending())
	assert.Equal(t, ButtonSending, form.ButtonLabel())

	// a second submit while sending does nothing
	form.Submit()
	assert.Equal(t, 1, clk.Pending())

	clk.Advance(SubmitDelay - time.Millisecond)
	assert.Empty(t, sent)
	clk.Advance(time.Millisecond)

	assert.Equal(t, []Fields{valid}, sent)
	assert.Equal(t, Fields{}, form.Fields())
	assert.False(t, form.Sending())
	assert.Equal(t, ButtonIdle, form.ButtonLabel())
}

func TestNotificationLifecycle(t *testing.T) {
	clk := clocktest.NewFake()
	var states []NotificationState
	n := Notify(clk, SuccessText, func(s NotificationState) { states = append(states, s) })
	assert.Equal(t, Shown, n.State())

	clk.Advance(NotifyVisibleFor - time.Millisecond)
	assert.Equal(t, Shown, n.State())
	clk.Advance(time.Millisecond)
	assert.Equal(t, Hiding, n.State())
	clk.Advance(NotifyHideFor)
	assert.Equal(t, Removed, n.State())
	assert.Equal(t, []NotificationState{Hiding, Removed}, states)
}

func TestNotificationDismiss(t *testing.T) {
	clk := clocktest.NewFake()
	n := Notify(clk, SuccessText, nil)

	clk.Advance(time.Second)
	n.Dismiss()
	assert.Equal(t, Hiding, n.State())
	assert.Equal(t, 1, clk.Pending())
	n.Dismiss()

	clk.Advance(NotifyHideFor)
	assert.Equal(t, Removed, n.State())
	assert.Zero(t, clk.Pending())
	assert.Equal(t, "removed", n.State().String())
}
