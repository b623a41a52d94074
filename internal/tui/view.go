package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Zachkp/portfolio/internal/clipboard"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/theme"
)

const (
	projectPrefix = "project-"
	contactID     = "contact"
)

type span struct {
	id     string
	top    int
	height int
}

// layout is the rendered document plus where each section and revealable
// element sits in it. Line counts never depend on state, only on width, so
// geometry from one render holds for the next.
type layout struct {
	lines    []string
	sections []span
	elements []span

	// form runs from the first field label through the key hint line.
	form span
}

type builder struct {
	m *Model
	layout
}

func (b *builder) add(lines ...string) {
	b.lines = append(b.lines, lines...)
}

func (b *builder) wrap(style lipgloss.Style, text string) {
	w := b.m.contentWidth()
	text = strings.Join(strings.Fields(text), " ")
	b.add(strings.Split(style.Width(w).Render(text), "\n")...)
}

func (b *builder) section(id string, build func()) {
	top := len(b.lines)
	build()
	b.sections = append(b.sections, span{id: id, top: top, height: len(b.lines) - top})
}

// element renders a revealable block, faint until it has been seen.
func (b *builder) element(id string, build func(s styles)) {
	s := b.m.styles
	if !b.m.observer.Revealed(id) {
		s = fadedStyles(s)
	}
	top := len(b.lines)
	build(s)
	b.elements = append(b.elements, span{id: id, top: top, height: len(b.lines) - top})
}

func fadedStyles(s styles) styles {
	f := s.faint
	return styles{
		base: f, nav: s.nav, navActive: s.navActive, navFocus: s.navFocus,
		heading: f, accent: f, faint: f, code: f, errorText: f,
		success: s.success, status: s.status,
	}
}

func (m *Model) contentWidth() int {
	return max(min(m.width-4, 100), 20)
}

func (m *Model) document() layout {
	b := &builder{m: m}
	s := m.styles
	for _, sec := range m.site.Sections {
		b.section(sec.ID, func() {
			b.add(s.heading.Render(strings.ToUpper(sec.Title)), "")
			switch sec.ID {
			case "home":
				m.homeSection(b)
			case "about":
				m.aboutSection(b)
			case "projects":
				m.projectsSection(b)
			case "skills":
				m.skillsSection(b)
			case contactID:
				m.contactSection(b)
			}
			b.add("")
		})
	}
	return b.layout
}

func (m *Model) homeSection(b *builder) {
	s := m.styles
	b.add(s.heading.Render(m.site.Name) + s.base.Render(" · "+m.site.Role))
	b.wrap(s.base, m.site.Tagline)
	b.add("")

	hero := m.hero
	if limit := m.contentWidth() - 3; len([]rune(hero)) > limit {
		hero = string([]rune(hero)[:limit])
	}
	b.add(s.accent.Render("$ ") + s.code.Render(hero) + s.accent.Render("_"))
}

func (m *Model) aboutSection(b *builder) {
	for i, p := range strings.Split(strings.TrimSpace(m.site.About), "\n\n") {
		if i > 0 {
			b.add("")
		}
		b.wrap(m.styles.base, p)
	}
	b.add("")
	for i, st := range m.site.Stats {
		b.element(fmt.Sprintf("stat-%d", i), func(s styles) {
			b.add(s.heading.Render(st.Value) + " " + s.base.Render(st.Label))
		})
	}
}

func (m *Model) projectsSection(b *builder) {
	for _, p := range m.site.Projects {
		b.element(projectPrefix+p.ID, func(s styles) {
			title := s.heading.Render(p.Name)
			if btn := m.copyButtons[p.ID]; btn != nil {
				label := "[c] " + btn.Label()
				if btn.Label() == clipboard.LabelCopied {
					label = btn.Label()
				}
				title += "  " + s.accent.Render(label)
			}
			b.add(title)
			b.wrap(s.base, p.Description)
			if len(p.Tags) > 0 {
				b.add(s.faint.Render("#" + strings.Join(p.Tags, " #")))
			}
			if p.Code != nil {
				codeLines(b, s, p.Code)
			}
			b.add("")
		})
	}
}

func codeLines(b *builder, s styles, code *content.Code) {
	for _, l := range strings.Split(strings.TrimRight(code.Source, "\n"), "\n") {
		b.add(s.faint.Render("  │ ") + s.code.Render(strings.ReplaceAll(l, "\t", "    ")))
	}
}

func (m *Model) skillsSection(b *builder) {
	for i, sk := range m.site.Skills {
		b.element(fmt.Sprintf("skill-%d", i), func(s styles) {
			b.add(s.accent.Render("• ") + s.base.Render(sk))
		})
	}
	if len(m.site.Certifications) > 0 {
		b.add("")
	}
	for i, c := range m.site.Certifications {
		b.element(fmt.Sprintf("cert-%d", i), func(s styles) {
			b.add(s.heading.Render(c.Name) + s.base.Render(", "+c.Issuer))
		})
	}
}

var fieldLabels = []struct {
	label string
	field contact.Field
}{
	{"Name", contact.Name},
	{"Email", contact.Email},
	{"Subject", contact.Subject},
	{"Message", contact.Message},
}

func (m *Model) contactSection(b *builder) {
	for i, cm := range m.site.ContactMethods {
		b.element(fmt.Sprintf("contact-method-%d", i), func(s styles) {
			b.add(s.heading.Render(cm.Label+": ") + s.base.Render(cm.Value))
		})
	}
	b.add("")

	s := m.styles
	errs := m.form.Errors()
	top := len(b.lines)
	for i, fl := range fieldLabels {
		b.add(s.base.Render(fl.label), m.inputs[i].View(), s.errorText.Render(errs[fl.field]))
	}
	b.add(s.accent.Render("[ " + m.form.ButtonLabel() + " ]"))
	b.add(s.faint.Render("f: write · tab: next field · enter on the last field or ctrl+s: send · esc: leave"))
	b.form = span{id: "form", top: top, height: len(b.lines) - top}
}

// fieldLines is the number of lines each form field takes: label, input and
// error message.
const fieldLines = 3

func (m *Model) navbar() string {
	s := m.styles
	name := s.heading.Render(m.site.Name)
	if m.highlighter.Scrolled(float64(m.offset)) {
		name = s.heading.Underline(true).Render(m.site.Name)
	}

	if m.width < narrowWidth && !m.highlighter.MenuOpen() {
		return name + s.nav.Render("  ≡ m: menu")
	}

	active := m.highlighter.Active()
	links := make([]string, len(m.site.Sections))
	for i, sec := range m.site.Sections {
		label := fmt.Sprintf("%d %s", i+1, sec.Title)
		switch {
		case m.focus == focusNav && i == m.navIndex:
			links[i] = s.navFocus.Render(label)
		case sec.ID == active:
			links[i] = s.navActive.Render(label)
		default:
			links[i] = s.nav.Render(label)
		}
	}
	return name + "  " + strings.Join(links, "  ") + "  " + s.nav.Render(m.toggle.Current().Icon())
}

func (m *Model) statusLine() string {
	s := m.styles
	if n := m.notice; n != nil {
		switch n.State() {
		case contact.Shown:
			return s.success.Render(n.Text) + s.status.Render("  x: dismiss")
		case contact.Hiding:
			return s.faint.Render(n.Text)
		}
	}
	if m.err != nil {
		return s.errorText.Render(m.err.Error())
	}
	mode := "dark"
	if m.toggle.Current() == theme.Dark {
		mode = "light"
	}
	return s.status.Render(fmt.Sprintf("↑↓ scroll · 1-%d jump · t %s mode · c copy · f contact · tab focus · q quit",
		len(m.site.Sections), mode))
}

func (m *Model) View() string {
	if m.width == 0 {
		return "loading..."
	}
	doc := m.document()

	end := min(m.offset+m.viewHeight(), len(doc.lines))
	body := doc.lines[min(m.offset, end):end]
	pad := m.viewHeight() - len(body)

	var sb strings.Builder
	sb.WriteString(m.navbar())
	sb.WriteString("\n")
	for _, l := range body {
		sb.WriteString("  ")
		sb.WriteString(l)
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("\n", pad))
	sb.WriteString(m.statusLine())
	return sb.String()
}
