// Package nav tracks which page section a reader is looking at and the
// state of the collapsible navigation menu.
package nav

import "sync"

const (
	// ProbeOffset is added to the scroll offset before testing section
	// bounds, so a section counts as current slightly before its top
	// reaches the viewport edge.
	ProbeOffset = 100
	// ScrolledThreshold is the offset past which the navbar is styled as
	// scrolled.
	ScrolledThreshold = 100
)

// Section is a named page region, measured in the host's scroll units.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

func (s Section) contains(y float64) bool {
	return y >= s.Top && y < s.Top+s.Height
}

// Highlighter marks exactly one link target active at a time.
type Highlighter struct {
	mu       sync.Mutex
	links    map[string]bool
	sections []Section
	active   string
	menuOpen bool
	offset   float64
	scrolled float64
}

type Option func(*Highlighter)

// WithOffset overrides ProbeOffset, for hosts whose scroll unit is not a
// pixel.
func WithOffset(offset float64) Option {
	return func(h *Highlighter) {
		h.offset = offset
	}
}

// WithScrolledThreshold overrides ScrolledThreshold.
func WithScrolledThreshold(y float64) Option {
	return func(h *Highlighter) {
		h.scrolled = y
	}
}

// NewHighlighter builds a highlighter for the given link targets. Sections
// without a matching link can still be current but never mark a link.
func NewHighlighter(links []string, opts ...Option) *Highlighter {
	h := &Highlighter{links: make(map[string]bool, len(links)), offset: ProbeOffset, scrolled: ScrolledThreshold}
	for _, l := range links {
		h.links[l] = true
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetSections replaces the measured section layout.
func (h *Highlighter) SetSections(sections []Section) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sections = append([]Section(nil), sections...)
}

// Update recomputes the active link for scroll offset y and returns it. If
// no section contains the probe point the previous link stays active.
func (h *Highlighter) Update(y float64) string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if id, ok := At(h.sections, y+h.offset); ok && h.links[id] {
		h.active = id
	}
	return h.active
}

// Active returns the currently marked link, or "" before the first match.
func (h *Highlighter) Active() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.active
}

// ToggleMenu flips the mobile menu and returns whether it is now open.
func (h *Highlighter) ToggleMenu() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.menuOpen = !h.menuOpen
	return h.menuOpen
}

// Follow records activation of a link: the menu closes.
func (h *Highlighter) Follow(string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.menuOpen = false
}

func (h *Highlighter) MenuOpen() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.menuOpen
}

// Current returns the section containing y+ProbeOffset. When sections
// overlap the last one in document order wins.
func Current(sections []Section, y float64) (string, bool) {
	return At(sections, y+ProbeOffset)
}

// At returns the section containing the absolute position probe.
func At(sections []Section, probe float64) (string, bool) {
	id, found := "", false
	for _, s := range sections {
		if s.contains(probe) {
			id, found = s.ID, true
		}
	}
	return id, found
}

// Scrolled reports whether the navbar should use its scrolled style at
// offset y.
func (h *Highlighter) Scrolled(y float64) bool {
	return y > h.scrolled
}
