// Package designsystem holds the process-wide active theme.
//
// The registry starts with the built-in Classic Mono theme and accepts exactly
// one explicit configuration. Later Configure calls are ignored. Readers get
// value copies of the theme, never references into registry state.
package designsystem

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/petal/internal/logging"
	"github.com/opencode-ai/petal/internal/theme"
)

// Applier receives the token bundle after the one successful configuration.
type Applier interface {
	Apply(tokens theme.DesignTokens)
}

// ApplierFunc adapts a function to Applier.
type ApplierFunc func(tokens theme.DesignTokens)

// Apply calls f(tokens).
func (f ApplierFunc) Apply(tokens theme.DesignTokens) {
	f(tokens)
}

// Option configures a Registry.
type Option func(*Registry)

// WithAppearance sets the collaborator invoked after the first successful
// Configure.
func WithAppearance(applier Applier) Option {
	return func(r *Registry) {
		r.applier = applier
	}
}

// WithLogger sets the registry logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = &logger
	}
}

// Registry holds one theme for its lifetime behind a single lock.
type Registry struct {
	mu         sync.RWMutex
	theme      theme.Theme
	configured bool

	applier Applier
	logger  *zerolog.Logger
}

// NewRegistry returns an unconfigured registry holding the built-in theme.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{theme: theme.ClassicMono()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configure installs t if the registry has not been configured yet and
// reports whether it did. The theme's contents are not a gate: a theme that
// fails Validate is still installed, with a warning. The appearance
// collaborator runs after the lock is released.
func (r *Registry) Configure(t theme.Theme) bool {
	r.mu.Lock()
	if r.configured {
		active := r.theme.Name
		r.mu.Unlock()
		r.log().Debug().
			Str("theme", t.Name).
			Str("active", active).
			Msg("configure called more than once, ignoring")
		return false
	}
	r.theme = t
	r.configured = true
	applier := r.applier
	r.mu.Unlock()

	r.log().Info().Str("theme", t.Name).Msg("design system configured")
	if err := t.Validate(); err != nil {
		r.log().Warn().Err(err).Str("theme", t.Name).Msg("configured theme has invalid tokens")
	}
	if applier != nil {
		applier.Apply(t.Tokens)
	}
	return true
}

// ConfigureWithDefaults configures the built-in theme explicitly.
func (r *Registry) ConfigureWithDefaults() bool {
	return r.Configure(theme.ClassicMono())
}

// ConfigurePreset configures a built-in preset.
func (r *Registry) ConfigurePreset(p theme.Preset) bool {
	return r.Configure(p.MakeTheme())
}

// IsConfigured reports whether Configure has succeeded.
func (r *Registry) IsConfigured() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.configured
}

// Theme returns the active theme.
func (r *Registry) Theme() theme.Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// Tokens returns the active token bundle.
func (r *Registry) Tokens() theme.DesignTokens {
	return r.Theme().Tokens
}

// Colors returns the active palette.
func (r *Registry) Colors() theme.ColorPalette {
	return r.Theme().Tokens.Colors
}

// Typography returns the active type scale.
func (r *Registry) Typography() theme.TypographyScale {
	return r.Theme().Tokens.Typography
}

// Spacing returns the active spacing scale.
func (r *Registry) Spacing() theme.SpacingScale {
	return r.Theme().Tokens.Spacing
}

// Layout returns the active layout scale.
func (r *Registry) Layout() theme.LayoutScale {
	return r.Theme().Tokens.Layout
}

func (r *Registry) log() *zerolog.Logger {
	if r.logger != nil {
		return r.logger
	}
	logger := logging.Component("designsystem")
	return &logger
}
