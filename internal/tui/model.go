// Package tui is the terminal edition of the portfolio: the same content,
// scrolled with the keyboard instead of a mouse wheel.
package tui

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/clock"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/reveal"
	"github.com/Zachkp/portfolio/internal/scroll"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

// Distances are in lines here, where the browser measures pixels.
const (
	navProbeLines     = 2
	navScrolledLines  = 2
	scrollGapLines    = 1
	revealMarginLines = 1

	scrollDuration = 300 * time.Millisecond
	scrollFrame    = 30 * time.Millisecond

	// below this width the nav links collapse behind the menu key
	narrowWidth = 70
)

type focusArea int

const (
	focusNone focusArea = iota
	focusNav
	focusForm
)

type Config struct {
	Site      *content.Site
	Store     theme.Store
	Owner     string
	Clipboard clipboard.Writer
}

type Model struct {
	ctx   context.Context
	site  *content.Site
	sched clock.Scheduler
	loop  *loopScheduler

	engine      *typewriter.Engine
	highlighter *nav.Highlighter
	observer    *reveal.Observer
	scroller    *scroll.Scroller
	toggle      *theme.Toggle
	copyButtons map[string]*clipboard.Button
	form        *contact.Form
	inputs      []textinput.Model
	notice      *contact.Notification

	styles   styles
	width    int
	height   int
	offset   int
	geometry layout
	hero     string
	focus    focusArea
	navIndex int
	field    int
	err      error
}

type Option func(*Model)

// WithScheduler replaces the event-loop scheduler, for tests.
func WithScheduler(s clock.Scheduler) Option {
	return func(m *Model) {
		m.sched = s
		m.loop = nil
	}
}

// New builds the model. A theme store that cannot be read is logged and
// the light theme is used.
func New(ctx context.Context, cfg Config, opts ...Option) *Model {
	loop := newLoopScheduler()
	m := &Model{
		ctx:         ctx,
		site:        cfg.Site,
		sched:       loop,
		loop:        &loop,
		copyButtons: map[string]*clipboard.Button{},
	}
	for _, opt := range opts {
		opt(m)
	}

	tg, err := theme.Load(ctx, cfg.Store, cfg.Owner, theme.OnToggle(func(t theme.Theme) {
		m.styles = stylesFor(t)
	}))
	if err != nil {
		logrus.WithError(err).Warn("Using default theme")
	}
	m.toggle = tg
	m.styles = stylesFor(tg.Current())

	m.engine = typewriter.New(m.sched)
	m.highlighter = nav.NewHighlighter(m.site.SectionIDs(),
		nav.WithOffset(navProbeLines),
		nav.WithScrolledThreshold(navScrolledLines),
	)
	m.observer = reveal.NewObserver(reveal.Config{
		Threshold:    reveal.DefaultThreshold,
		BottomMargin: revealMarginLines,
	}, nil, nil)
	m.scroller = scroll.New(m.sched, m.applyScroll,
		scroll.WithOffset(scrollGapLines),
		scroll.WithDuration(scrollDuration),
		scroll.WithFrame(scrollFrame),
	)

	w := cfg.Clipboard
	if w == nil {
		w = clipboard.System()
	}
	for _, p := range m.site.Projects {
		if p.Code != nil {
			m.copyButtons[p.ID] = clipboard.NewButton(w, m.sched, p.Code.Source)
		}
	}

	m.form = contact.NewForm(contact.NewSubmitter(m.sched), m.onSent)
	for _, placeholder := range []string{"Your name", "you@example.com", "What is it about?", "Your message"} {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 500
		m.inputs = append(m.inputs, in)
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	sink := typewriter.SinkFunc(func(text string) { m.hero = text })
	if err := m.engine.Start(m.site.Hero.Commands, sink, m.site.Hero.Typewriter); err != nil {
		logrus.WithError(err).Error("Hero typewriter disabled")
		m.err = err
	}
	return m.listen()
}

func (m *Model) listen() tea.Cmd {
	if m.loop == nil {
		return nil
	}
	return m.loop.listen()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runMsg:
		msg()
		return m, m.listen()
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

// viewHeight is the number of document lines between navbar and status
// line.
func (m *Model) viewHeight() int {
	return max(m.height-2, 1)
}

func (m *Model) maxOffset() int {
	return max(len(m.geometry.lines)-m.viewHeight(), 0)
}

func (m *Model) relayout() {
	for i := range m.inputs {
		m.inputs[i].Width = m.contentWidth() - 4
	}
	m.geometry = m.document()

	sections := make([]nav.Section, len(m.geometry.sections))
	for i, s := range m.geometry.sections {
		sections[i] = nav.Section{ID: s.id, Top: float64(s.top), Height: float64(s.height)}
	}
	m.highlighter.SetSections(sections)

	elements := make([]reveal.Element, len(m.geometry.elements))
	for i, e := range m.geometry.elements {
		elements[i] = reveal.Element{ID: e.id, Top: float64(e.top), Height: float64(e.height)}
	}
	m.observer.SetElements(elements)

	m.setOffset(m.offset)
}

func (m *Model) setOffset(y int) {
	m.offset = min(max(y, 0), m.maxOffset())
	m.highlighter.Update(float64(m.offset))
	m.observer.Check(float64(m.offset), float64(m.viewHeight()))
}

func (m *Model) applyScroll(y float64) {
	m.setOffset(int(math.Round(y)))
}

func (m *Model) scrollBy(n int) {
	m.setOffset(m.offset + n)
	m.scroller.Jump(float64(m.offset))
}

// glide animates the viewport to offset y, clamped to the document. The
// scroller only ever holds reachable offsets.
func (m *Model) glide(y int) {
	y = min(max(y, 0), m.maxOffset())
	m.scroller.ScrollTo(float64(y + scrollGapLines))
}

// follow activates an in-page link: the menu closes and the section glides
// into place under the navbar.
func (m *Model) follow(id string) {
	m.highlighter.Follow(id)
	for _, s := range m.geometry.sections {
		if s.id == id {
			m.glide(s.top - scrollGapLines)
			return
		}
	}
}

// formOffset moves offset as little as needed to show the form from line
// from down to the submit button and key hint. When they cannot all fit,
// from wins.
func (m *Model) formOffset(from, offset int) int {
	end := m.geometry.form.top + m.geometry.form.height - 1
	return min(max(offset, end-m.viewHeight()+1), from)
}

func (m *Model) showForm(from int) {
	if y := m.formOffset(from, m.offset); y != m.offset {
		m.glide(y)
	}
}

func (m *Model) fieldTop(i int) int {
	return m.geometry.form.top + i*fieldLines
}

func (m *Model) quit() tea.Cmd {
	m.engine.Stop()
	return tea.Quit
}

func (m *Model) handleKey(k tea.KeyMsg) tea.Cmd {
	key := k.String()
	if key == "ctrl+c" {
		return m.quit()
	}

	switch m.focus {
	case focusForm:
		return m.formKey(k)
	case focusNav:
		if m.navKey(key) {
			return nil
		}
	}

	switch key {
	case "q":
		return m.quit()
	case "tab":
		// Tab with nothing focused lands on the first focusable element.
		if len(m.site.Sections) > 0 {
			m.focus = focusNav
			m.navIndex = 0
		}
	case "up", "k":
		m.scrollBy(-1)
	case "down", "j":
		m.scrollBy(1)
	case "pgup", "b":
		m.scrollBy(-m.viewHeight())
	case "pgdown", " ":
		m.scrollBy(m.viewHeight())
	case "home", "g":
		m.scrollBy(-m.offset)
	case "end", "G":
		m.scrollBy(m.maxOffset() - m.offset)
	case "t":
		m.toggle.Flip(m.ctx)
	case "m":
		m.highlighter.ToggleMenu()
	case "c":
		m.copyCurrent()
	case "f":
		return m.openForm()
	case "x":
		if m.notice != nil {
			m.notice.Dismiss()
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(m.site.Sections) {
				m.follow(m.site.Sections[i].ID)
			}
		}
	}
	return nil
}

// navKey handles keys while a nav link has focus and reports whether the
// key was consumed.
func (m *Model) navKey(key string) bool {
	n := len(m.site.Sections)
	switch key {
	case "tab", "right":
		m.navIndex = (m.navIndex + 1) % n
	case "shift+tab", "left":
		m.navIndex = (m.navIndex - 1 + n) % n
	case "enter":
		m.follow(m.site.Sections[m.navIndex].ID)
	case "esc":
		m.focus = focusNone
	default:
		return false
	}
	return true
}

// copyCurrent copies the code of the first project card in view.
func (m *Model) copyCurrent() {
	top, bottom := m.offset, m.offset+m.viewHeight()
	for _, e := range m.geometry.elements {
		id, ok := strings.CutPrefix(e.id, projectPrefix)
		if !ok || e.top+e.height <= top || e.top >= bottom {
			continue
		}
		if b := m.copyButtons[id]; b != nil {
			// Failures are logged by the button and leave its label alone.
			_ = b.Click()
			return
		}
	}
}

// openForm brings the contact section up with the whole form, button
// included, on screen.
func (m *Model) openForm() tea.Cmd {
	m.focus = focusForm
	m.highlighter.Follow(contactID)
	offset := m.offset
	for _, s := range m.geometry.sections {
		if s.id == contactID {
			offset = s.top - scrollGapLines
		}
	}
	m.glide(m.formOffset(m.fieldTop(0), offset))
	return m.focusField(0)
}

func (m *Model) focusField(i int) tea.Cmd {
	n := len(m.inputs)
	m.field = (i%n + n) % n
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	return m.inputs[m.field].Focus()
}

// moveField focuses field i and scrolls it into view along with the
// submit button.
func (m *Model) moveField(i int) tea.Cmd {
	cmd := m.focusField(i)
	m.showForm(m.fieldTop(m.field))
	return cmd
}

func (m *Model) formKey(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "esc":
		m.inputs[m.field].Blur()
		m.focus = focusNone
		return nil
	case "tab", "down":
		return m.moveField(m.field + 1)
	case "shift+tab", "up":
		return m.moveField(m.field - 1)
	case "ctrl+s":
		m.submit()
		return nil
	case "enter":
		if m.field < len(m.inputs)-1 {
			return m.moveField(m.field + 1)
		}
		m.submit()
		return nil
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(k)
	return cmd
}

func (m *Model) submit() {
	m.form.Set(contact.Fields{
		Name:    m.inputs[0].Value(),
		Email:   m.inputs[1].Value(),
		Subject: m.inputs[2].Value(),
		Message: m.inputs[3].Value(),
	})
	if errs := m.form.Submit(); len(errs) > 0 {
		logrus.WithField("errors", len(errs)).Debug("Contact form rejected")
	}
	m.showForm(m.fieldTop(m.field))
}

func (m *Model) onSent(contact.Fields) {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	if m.notice != nil {
		m.notice.Dismiss()
	}
	m.notice = contact.Notify(m.sched, contact.SuccessText, nil)
	logrus.Info("Contact form submitted")
}
