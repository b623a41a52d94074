package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/clock/clocktest"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

type fakeClipboard struct {
	got []string
	err error
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.got = append(c.got, text)
	return nil
}

type fixture struct {
	m     *Model
	clk   *clocktest.Fake
	clip  *fakeClipboard
	store theme.Store
}

func setup(t *testing.T) *fixture {
	t.Helper()
	store, err := theme.OpenSqlite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clk := clocktest.NewFake()
	clip := &fakeClipboard{}
	m := New(context.Background(), Config{
		Site:      content.Default(),
		Store:     store,
		Owner:     "tester",
		Clipboard: clip,
	}, WithScheduler(clk))

	assert.Nil(t, m.Init())
	t.Cleanup(m.engine.Stop)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return &fixture{m: m, clk: clk, clip: clip, store: store}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func (f *fixture) press(keys ...string) {
	for _, k := range keys {
		f.m.Update(key(k))
	}
}

func (f *fixture) section(id string) span {
	for _, s := range f.m.geometry.sections {
		if s.id == id {
			return s
		}
	}
	panic("no section " + id)
}

func TestHeroTypesIntoView(t *testing.T) {
	f := setup(t)
	assert.Contains(t, f.m.View(), "$ _")

	f.clk.Advance(time.Second)
	assert.Equal(t, "w", f.m.hero)
	f.clk.Advance(500 * time.Millisecond)
	assert.Equal(t, "whoami", f.m.hero)
	assert.Contains(t, f.m.View(), "$ whoami_")
}

func TestJumpHighlightsAndReveals(t *testing.T) {
	f := setup(t)
	assert.Equal(t, "home", f.m.highlighter.Active())
	assert.False(t, f.m.observer.Revealed("project-site"))

	f.press("3")
	f.clk.Advance(time.Second)

	projects := f.section("projects")
	assert.Equal(t, projects.top-scrollGapLines, f.m.offset)
	assert.Equal(t, "projects", f.m.highlighter.Active())
	assert.True(t, f.m.observer.Revealed("project-mail"))

	f.press("g")
	assert.Equal(t, 0, f.m.offset)
	assert.Equal(t, "home", f.m.highlighter.Active())
	// revealed stays revealed
	assert.True(t, f.m.observer.Revealed("project-mail"))
}

func TestTabFocusesFirstLink(t *testing.T) {
	f := setup(t)
	f.press("tab")
	assert.Equal(t, focusNav, f.m.focus)
	assert.Equal(t, 0, f.m.navIndex)

	f.press("tab", "enter")
	f.clk.Advance(time.Second)
	assert.Equal(t, f.section("about").top-scrollGapLines, f.m.offset)

	f.press("shift+tab", "esc")
	assert.Equal(t, focusNone, f.m.focus)
}

func TestMenuClosesOnFollow(t *testing.T) {
	f := setup(t)
	f.m.Update(tea.WindowSizeMsg{Width: 50, Height: 20})
	assert.Contains(t, f.m.View(), "m: menu")

	f.press("m")
	assert.True(t, f.m.highlighter.MenuOpen())
	assert.Contains(t, f.m.View(), "2 About")

	f.press("2")
	assert.False(t, f.m.highlighter.MenuOpen())
}

func TestThemeTogglePersists(t *testing.T) {
	f := setup(t)
	assert.Equal(t, theme.Light, f.m.toggle.Current())

	f.press("t")
	assert.Equal(t, theme.Dark, f.m.toggle.Current())

	tg, err := theme.Load(context.Background(), f.store, "tester")
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, tg.Current())
	assert.Contains(t, f.m.View(), "t light mode")
}

func TestCopyVisibleProject(t *testing.T) {
	f := setup(t)
	f.press("3")
	f.clk.Advance(time.Second)

	f.press("c")
	require.Len(t, f.clip.got, 1)
	assert.Equal(t, f.m.site.Projects[0].Code.Source, f.clip.got[0])
	assert.Equal(t, clipboard.LabelCopied, f.m.copyButtons["mail"].Label())
	assert.Contains(t, f.m.View(), "Copied!")

	f.clk.Advance(clipboard.FeedbackDuration)
	assert.Equal(t, clipboard.LabelCopy, f.m.copyButtons["mail"].Label())
}

func TestCopyFailureKeepsLabel(t *testing.T) {
	f := setup(t)
	f.clip.err = errors.New("no clipboard")
	f.press("3")
	f.clk.Advance(time.Second)

	f.press("c")
	assert.Equal(t, clipboard.LabelCopy, f.m.copyButtons["mail"].Label())
}

func TestContactForm(t *testing.T) {
	f := setup(t)
	f.press("f")
	assert.Equal(t, focusForm, f.m.focus)
	f.clk.Advance(time.Second)

	// q types into the form instead of quitting
	f.press("q", "ctrl+s")
	view := f.m.View()
	assert.Contains(t, view, "Name must be at least 2 characters long")
	assert.Contains(t, view, "Email is required")
	assert.False(t, f.m.form.Sending())

	f.m.inputs[0].SetValue("Ada Lovelace")
	f.press("tab", "ada@example.com", "tab", "Engines", "tab", "About the analytical engine")
	assert.Equal(t, 3, f.m.field)
	f.press("enter")

	assert.True(t, f.m.form.Sending())
	assert.Contains(t, f.m.View(), "[ Sending... ]")
	assert.Empty(t, f.m.form.Errors())

	f.clk.Advance(contact.SubmitDelay)
	assert.False(t, f.m.form.Sending())
	for _, in := range f.m.inputs {
		assert.Empty(t, in.Value())
	}
	require.NotNil(t, f.m.notice)
	assert.Equal(t, contact.Shown, f.m.notice.State())
	assert.Contains(t, f.m.View(), "Message sent successfully!")

	f.clk.Advance(contact.NotifyVisibleFor + contact.NotifyHideFor)
	assert.Equal(t, contact.Removed, f.m.notice.State())
	assert.NotContains(t, f.m.View(), "Message sent successfully!")

	f.press("esc")
	assert.Equal(t, focusNone, f.m.focus)
}

func TestFormKeepsButtonInView(t *testing.T) {
	f := setup(t)
	f.press("f")
	f.clk.Advance(time.Second)

	form := f.m.geometry.form
	require.NotZero(t, form.height)
	assert.LessOrEqual(t, f.m.offset, form.top)
	assert.Less(t, form.top+form.height-1, f.m.offset+f.m.viewHeight())
	assert.Contains(t, f.m.View(), "[ Send Message ]")
	assert.Contains(t, f.m.View(), "esc: leave")

	// arrows move between fields without losing the button
	f.m.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.m.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.m.Update(tea.KeyMsg{Type: tea.KeyDown})
	f.clk.Advance(time.Second)
	assert.Equal(t, 3, f.m.field)
	assert.Contains(t, f.m.View(), "[ Send Message ]")

	f.m.Update(tea.KeyMsg{Type: tea.KeyUp})
	f.clk.Advance(time.Second)
	assert.Equal(t, 2, f.m.field)
	assert.Contains(t, f.m.View(), "[ Send Message ]")
}

func TestFormScrollsFromTheTop(t *testing.T) {
	f := setup(t)
	f.m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	f.press("f")
	f.clk.Advance(time.Second)

	// too short for the whole form: the first field stays in view
	assert.Equal(t, f.m.fieldTop(0), f.m.offset)

	f.press("enter", "enter", "enter")
	f.clk.Advance(time.Second)
	assert.Equal(t, 3, f.m.field)
	assert.Contains(t, f.m.View(), "[ Send Message ]")
}

func TestFollowPastEndKeepsScrollerInBounds(t *testing.T) {
	f := setup(t)
	f.m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	require.Greater(t, f.section("contact").top-scrollGapLines, f.m.maxOffset())

	f.press("5")
	f.clk.Advance(time.Second)
	assert.Equal(t, f.m.maxOffset(), f.m.offset)
	assert.Equal(t, float64(f.m.offset), f.m.scroller.Position())

	// the way back starts moving on the first frames
	f.press("1")
	f.clk.Advance(2 * scrollFrame)
	assert.Less(t, f.m.offset, f.m.maxOffset())

	f.clk.Advance(time.Second)
	assert.Equal(t, 0, f.m.offset)
}

func TestDismissNotification(t *testing.T) {
	f := setup(t)
	f.m.onSent(contact.Fields{})

	f.press("x")
	assert.Equal(t, contact.Hiding, f.m.notice.State())
	f.clk.Advance(contact.NotifyHideFor)
	assert.Equal(t, contact.Removed, f.m.notice.State())
}

func TestQuitStopsHero(t *testing.T) {
	f := setup(t)
	f.clk.Advance(time.Second)

	_, cmd := f.m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, f.m.engine.Running())

	hero := f.m.hero
	f.clk.Advance(time.Minute)
	assert.Equal(t, hero, f.m.hero)
}

func TestLoopSchedulerDeliversOnEventLoop(t *testing.T) {
	s := newLoopScheduler()
	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	msg := s.listen()()
	run, ok := msg.(runMsg)
	require.True(t, ok)
	assert.False(t, ran)
	run()
	assert.True(t, ran)

	stopped := s.AfterFunc(time.Hour, func() {})
	assert.True(t, stopped.Stop())
}
