package designsystem

import (
	"github.com/opencode-ai/petal/internal/appearance"
	"github.com/opencode-ai/petal/internal/theme"
)

// std is the process-wide registry. It is created at package load and lives
// until the process exits.
var std = NewRegistry(WithAppearance(ApplierFunc(appearance.Apply)))

// Default returns the process-wide registry.
func Default() *Registry { return std }

// Configure configures the process-wide registry. Call it once at startup.
func Configure(t theme.Theme) bool { return std.Configure(t) }

// ConfigureWithDefaults configures the process-wide registry with the
// built-in theme.
func ConfigureWithDefaults() bool { return std.ConfigureWithDefaults() }

// ConfigurePreset configures the process-wide registry with a preset.
func ConfigurePreset(p theme.Preset) bool { return std.ConfigurePreset(p) }

// IsConfigured reports whether the process-wide registry has been configured.
func IsConfigured() bool { return std.IsConfigured() }

// Current returns the process-wide active theme.
func Current() theme.Theme { return std.Theme() }

// Tokens returns the active token bundle.
func Tokens() theme.DesignTokens { return std.Tokens() }

// Colors returns the active palette.
func Colors() theme.ColorPalette { return std.Colors() }

// Typography returns the active type scale.
func Typography() theme.TypographyScale { return std.Typography() }

// Spacing returns the active spacing scale.
func Spacing() theme.SpacingScale { return std.Spacing() }

// Layout returns the active layout scale.
func Layout() theme.LayoutScale { return std.Layout() }
