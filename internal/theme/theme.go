// Package theme holds the persisted light/dark display preference.
package theme

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/vilaca/devfinder/internal/domain"
	"github.com/vilaca/devfinder/internal/store"
)

// Mode is the display mode passed explicitly to renderers.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// ModeFor converts the dark flag to a Mode.
func ModeFor(dark bool) Mode {
	if dark {
		return ModeDark
	}
	return ModeLight
}

// Dark reports whether the mode is dark.
func (m Mode) Dark() bool {
	return m == ModeDark
}

// ToggleLabel is the label of the mode a toggle would switch to.
func (m Mode) ToggleLabel() string {
	if m.Dark() {
		return "LIGHT"
	}
	return "DARK"
}

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Controller owns the dark mode flag and its persistence.
type Controller struct {
	store  store.Store
	logger Logger
	mu     sync.RWMutex
	dark   bool
}

// NewController creates a controller and loads the persisted preference.
func NewController(ctx context.Context, s store.Store, logger Logger) *Controller {
	c := &Controller{store: s, logger: logger}
	c.dark = c.Initial(ctx)
	return c
}

// Initial reads the persisted preference.
// Missing keys, corrupt values and store errors all yield false.
func (c *Controller) Initial(ctx context.Context) bool {
	raw, err := c.store.Get(ctx, domain.ThemePreferenceKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			c.logger.Printf("[Theme] Failed to read preference, using light mode: %v", err)
		}
		return false
	}

	var dark bool
	if err := json.Unmarshal([]byte(raw), &dark); err != nil {
		c.logger.Printf("[Theme] Ignoring unparseable preference %q: %v", raw, err)
		return false
	}
	return dark
}

// Toggle flips the flag and persists the new value.
// The in-memory value changes even when persisting fails.
func (c *Controller) Toggle(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dark = !c.dark

	raw, _ := json.Marshal(c.dark)
	if err := c.store.Set(ctx, domain.ThemePreferenceKey, string(raw)); err != nil {
		c.logger.Printf("[Theme] Failed to persist preference: %v", err)
		return c.dark, fmt.Errorf("failed to persist theme: %w", err)
	}
	return c.dark, nil
}

// Dark reports the current flag.
func (c *Controller) Dark() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dark
}

// Mode returns the current display mode.
func (c *Controller) Mode() Mode {
	return ModeFor(c.Dark())
}
