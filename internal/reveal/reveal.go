// Package reveal marks page elements as revealed the first time enough of
// them scrolls into view.
package reveal

import "sync"

const (
	DefaultThreshold    = 0.1
	DefaultBottomMargin = 50
)

// Config tunes intersection. BottomMargin shrinks the viewport from below.
type Config struct {
	Threshold    float64
	BottomMargin float64
}

func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, BottomMargin: DefaultBottomMargin}
}

// Element is an observed box in document coordinates.
type Element struct {
	ID     string
	Top    float64
	Height float64
}

// Observer tracks a fixed set of elements against a moving viewport.
type Observer struct {
	cfg      Config
	onReveal func(id string)

	mu       sync.Mutex
	elements []Element
	revealed map[string]bool
}

// NewObserver watches elements; onReveal fires once per element, in
// element order within a single Check.
func NewObserver(cfg Config, elements []Element, onReveal func(id string)) *Observer {
	return &Observer{
		cfg:      cfg,
		onReveal: onReveal,
		elements: append([]Element(nil), elements...),
		revealed: make(map[string]bool, len(elements)),
	}
}

// Check evaluates every unrevealed element against the viewport starting at
// top with the given height, and returns the ids revealed by this call.
func (o *Observer) Check(top, height float64) []string {
	o.mu.Lock()
	var fresh []string
	for _, el := range o.elements {
		if o.revealed[el.ID] {
			continue
		}
		if Ratio(el, top, height-o.cfg.BottomMargin) >= o.cfg.Threshold {
			o.revealed[el.ID] = true
			fresh = append(fresh, el.ID)
		}
	}
	o.mu.Unlock()

	if o.onReveal != nil {
		for _, id := range fresh {
			o.onReveal(id)
		}
	}
	return fresh
}

// SetElements replaces the observed boxes after a re-layout. Elements
// already revealed stay revealed.
func (o *Observer) SetElements(elements []Element) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.elements = append([]Element(nil), elements...)
}

func (o *Observer) Revealed(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.revealed[id]
}

// Ratio is the fraction of el inside the viewport [top, top+height).
// Zero-height elements count as fully visible when their edge is inside.
func Ratio(el Element, top, height float64) float64 {
	if height <= 0 {
		return 0
	}
	bottom := top + height
	if el.Height <= 0 {
		if el.Top >= top && el.Top < bottom {
			return 1
		}
		return 0
	}
	lo := max(el.Top, top)
	hi := min(el.Top+el.Height, bottom)
	if hi <= lo {
		return 0
	}
	return (hi - lo) / el.Height
}
