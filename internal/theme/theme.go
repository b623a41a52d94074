// Package theme persists and flips the light/dark display preference.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// Key is the fixed storage name of the preference.
const Key = "theme"

type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Parse accepts "light" or "dark"; anything else falls back to Light.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// Icon is the font-awesome class shown on the toggle: the icon for the
// mode the button switches to.
func (t Theme) Icon() string {
	if t == Light {
		return "fas fa-moon"
	}
	return "fas fa-sun"
}

// ErrNotFound is returned by stores for a missing key.
var ErrNotFound = errors.New("preference not found")

// Store is a durable key-value store scoped by owner.
type Store interface {
	Get(ctx context.Context, owner, key string) (string, error)
	Set(ctx context.Context, owner, key, value string) error
	Close() error
}

// Toggle tracks one owner's theme and writes every change through to the
// store.
type Toggle struct {
	store    Store
	owner    string
	onToggle func(Theme)

	mu      sync.Mutex
	current Theme
}

type Option func(*Toggle)

// OnToggle registers a callback run after each flip.
func OnToggle(f func(Theme)) Option {
	return func(t *Toggle) { t.onToggle = f }
}

// Load reads the saved preference, defaulting to Light when none is
// stored. Only a store failure other than a missing key is returned.
func Load(ctx context.Context, store Store, owner string, opts ...Option) (*Toggle, error) {
	t := &Toggle{store: store, owner: owner, current: Light}
	for _, opt := range opts {
		opt(t)
	}

	v, err := store.Get(ctx, owner, Key)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return t, fmt.Errorf("load theme: %w", err)
	default:
		t.current = Parse(v)
	}
	return t, nil
}

func (t *Toggle) Current() Theme {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// Flip switches to the other theme and persists it. A failed write is
// logged; the new theme still applies for this session.
func (t *Toggle) Flip(ctx context.Context) Theme {
	t.mu.Lock()
	t.current = t.current.Other()
	next := t.current
	t.mu.Unlock()

	if err := t.store.Set(ctx, t.owner, Key, string(next)); err != nil {
		logrus.WithError(err).WithField("owner", t.owner).Warn("Failed to save theme preference")
	}
	if t.onToggle != nil {
		t.onToggle(next)
	}
	return next
}
