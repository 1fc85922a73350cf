// Package theme defines the design token bundle and the built-in presets.
package theme

import "github.com/charmbracelet/lipgloss"

// ColorPalette defines the semantic color roles. Every role carries a light
// and a dark variant.
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor
	Accent    lipgloss.AdaptiveColor

	Success lipgloss.AdaptiveColor
	Warning lipgloss.AdaptiveColor
	Error   lipgloss.AdaptiveColor
	Info    lipgloss.AdaptiveColor

	BackgroundPrimary   lipgloss.AdaptiveColor
	BackgroundSecondary lipgloss.AdaptiveColor
	BackgroundTertiary  lipgloss.AdaptiveColor

	TextPrimary   lipgloss.AdaptiveColor
	TextSecondary lipgloss.AdaptiveColor
	TextTertiary  lipgloss.AdaptiveColor
	TextOnPrimary lipgloss.AdaptiveColor

	Surface        lipgloss.AdaptiveColor
	SurfaceVariant lipgloss.AdaptiveColor
	Border         lipgloss.AdaptiveColor
	Divider        lipgloss.AdaptiveColor
}

// NamedColor pairs a palette role with its value.
type NamedColor struct {
	Role  string
	Color lipgloss.AdaptiveColor
}

// Roles lists the palette in declaration order.
func (p ColorPalette) Roles() []NamedColor {
	return []NamedColor{
		{"primary", p.Primary},
		{"secondary", p.Secondary},
		{"accent", p.Accent},
		{"success", p.Success},
		{"warning", p.Warning},
		{"error", p.Error},
		{"info", p.Info},
		{"background-primary", p.BackgroundPrimary},
		{"background-secondary", p.BackgroundSecondary},
		{"background-tertiary", p.BackgroundTertiary},
		{"text-primary", p.TextPrimary},
		{"text-secondary", p.TextSecondary},
		{"text-tertiary", p.TextTertiary},
		{"text-on-primary", p.TextOnPrimary},
		{"surface", p.Surface},
		{"surface-variant", p.SurfaceVariant},
		{"border", p.Border},
		{"divider", p.Divider},
	}
}

// FontWeight names a font weight.
type FontWeight string

// Font weights used by the typography scales.
const (
	WeightRegular  FontWeight = "regular"
	WeightMedium   FontWeight = "medium"
	WeightSemibold FontWeight = "semibold"
	WeightBold     FontWeight = "bold"
)

// FontDesign names a font family design.
type FontDesign string

// Font designs.
const (
	DesignDefault    FontDesign = "default"
	DesignRounded    FontDesign = "rounded"
	DesignSerif      FontDesign = "serif"
	DesignMonospaced FontDesign = "monospaced"
)

// TextStyle is a single entry of the type scale.
type TextStyle struct {
	Size   float64
	Weight FontWeight
	Design FontDesign
}

// TypographyScale holds the full type ramp.
type TypographyScale struct {
	TitleLarge  TextStyle
	TitleMedium TextStyle
	TitleSmall  TextStyle

	HeadlineLarge  TextStyle
	HeadlineMedium TextStyle
	HeadlineSmall  TextStyle

	BodyLarge  TextStyle
	BodyMedium TextStyle
	BodySmall  TextStyle

	CaptionLarge TextStyle
	CaptionSmall TextStyle

	ButtonLarge  TextStyle
	ButtonMedium TextStyle
	ButtonSmall  TextStyle
}

// SpacingScale holds spacing steps in points.
type SpacingScale struct {
	XS   int
	SM   int
	SMD  int
	MD   int
	MLG  int
	LG   int
	XL   int
	XXLG int
	XXL  int
}

// Steps returns the scale in ascending order.
func (s SpacingScale) Steps() []int {
	return []int{s.XS, s.SM, s.SMD, s.MD, s.MLG, s.LG, s.XL, s.XXLG, s.XXL}
}

// RadiiScale holds corner radii in points.
type RadiiScale struct {
	XS   int
	SM   int
	MD   int
	LG   int
	XL   int
	Pill int
}

// ShadowToken describes a drop shadow.
type ShadowToken struct {
	Color   string
	Opacity float64
	Radius  int
	Y       int
}

// ShadowScale holds the elevation steps.
type ShadowScale struct {
	Soft   ShadowToken
	Card   ShadowToken
	Lifted ShadowToken
}

// Tint is a palette color at reduced opacity.
type Tint struct {
	Color   lipgloss.AdaptiveColor
	Opacity float64
}

// GlassTokens configure translucent surfaces.
type GlassTokens struct {
	Tint       Tint
	StrongTint Tint
	Border     Tint
	Shadow     ShadowToken
}

// LayoutScale holds structural sizes shared by components.
type LayoutScale struct {
	MinTouchTarget  int
	IconSmall       int
	IconMedium      int
	IconLarge       int
	CardPadding     int
	RowHeight       int
	MaxContentWidth int
}

// DesignTokens is the full token bundle of a theme.
type DesignTokens struct {
	Colors     ColorPalette
	Typography TypographyScale
	Spacing    SpacingScale
	Radii      RadiiScale
	Shadows    ShadowScale
	Glass      GlassTokens
	Layout     LayoutScale
}

// Theme bundles a token set with a name. Theme holds no references, so a
// copy never aliases another theme's state.
type Theme struct {
	Name   string
	Tokens DesignTokens
}
