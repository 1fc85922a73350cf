// Package appearance turns a theme's token bundle into terminal styles and
// installs them process-wide.
package appearance

import (
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/petal/internal/theme"
)

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Tokens   theme.DesignTokens
	Title    lipgloss.Style
	Headline lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Primary  lipgloss.Style
	Accent   lipgloss.Style
	Panel    lipgloss.Style
	Border   lipgloss.Style
	Divider  lipgloss.Style
	Success  lipgloss.Style
	Warning  lipgloss.Style
	Error    lipgloss.Style
	Info     lipgloss.Style
	Badge    lipgloss.Style
	Pill     lipgloss.Style
}

// BuildStyles converts theme tokens into lipgloss styles.
func BuildStyles(tokens theme.DesignTokens) Styles {
	colors := tokens.Colors
	pad := cells(tokens.Spacing.SM)

	return Styles{
		Tokens:   tokens,
		Title:    lipgloss.NewStyle().Foreground(colors.TextPrimary).Bold(true),
		Headline: lipgloss.NewStyle().Foreground(colors.TextPrimary).Bold(tokens.Typography.HeadlineMedium.Weight != theme.WeightRegular),
		Text:     lipgloss.NewStyle().Foreground(colors.TextPrimary),
		Muted:    lipgloss.NewStyle().Foreground(colors.TextSecondary),
		Subtle:   lipgloss.NewStyle().Foreground(colors.TextTertiary),
		Primary:  lipgloss.NewStyle().Foreground(colors.Primary).Bold(true),
		Accent:   lipgloss.NewStyle().Foreground(colors.Accent),
		Panel: lipgloss.NewStyle().
			Foreground(colors.TextPrimary).
			Background(colors.Surface).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colors.Border).
			Padding(0, pad),
		Border:  lipgloss.NewStyle().Foreground(colors.Border),
		Divider: lipgloss.NewStyle().Foreground(colors.Divider),
		Success: lipgloss.NewStyle().Foreground(colors.Success),
		Warning: lipgloss.NewStyle().Foreground(colors.Warning),
		Error:   lipgloss.NewStyle().Foreground(colors.Error),
		Info:    lipgloss.NewStyle().Foreground(colors.Info),
		Badge: lipgloss.NewStyle().
			Foreground(colors.Primary).
			Background(colors.SurfaceVariant).
			Padding(0, 1),
		Pill: lipgloss.NewStyle().
			Foreground(colors.TextOnPrimary).
			Background(colors.Primary).
			Bold(true).
			Padding(0, pad),
	}
}

// Swatch renders a block in the given color, used for previews.
func Swatch(color lipgloss.TerminalColor, width int) string {
	if width <= 0 {
		width = 2
	}
	return lipgloss.NewStyle().Background(color).Width(width).Render("")
}

// cells converts points to terminal cells, one cell per eight points, minimum one.
func cells(points int) int {
	if n := points / 8; n > 0 {
		return n
	}
	return 1
}

var current atomic.Pointer[Styles]

// Apply installs styles built from tokens as the process-wide appearance.
func Apply(tokens theme.DesignTokens) {
	styles := BuildStyles(tokens)
	current.Store(&styles)
}

// Current returns the installed styles, or styles built from the built-in
// theme when nothing has been applied yet.
func Current() Styles {
	if styles := current.Load(); styles != nil {
		return *styles
	}
	return BuildStyles(theme.ClassicMono().Tokens)
}

// Applied reports whether Apply has installed styles.
func Applied() bool {
	return current.Load() != nil
}
