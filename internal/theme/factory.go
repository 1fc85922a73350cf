package theme

import "github.com/charmbracelet/lipgloss"

// Spacing returns the shared spacing scale.
func Spacing() SpacingScale {
	return SpacingScale{
		XS:   4,
		SM:   8,
		SMD:  12,
		MD:   16,
		MLG:  20,
		LG:   24,
		XL:   32,
		XXLG: 40,
		XXL:  48,
	}
}

// Layout returns the shared layout scale.
func Layout() LayoutScale {
	return LayoutScale{
		MinTouchTarget:  44,
		IconSmall:       16,
		IconMedium:      20,
		IconLarge:       28,
		CardPadding:     16,
		RowHeight:       52,
		MaxContentWidth: 640,
	}
}

// Radii returns the radii used by themes that do not define their own.
func Radii() RadiiScale {
	return RadiiScale{
		XS:   8,
		SM:   12,
		MD:   16,
		LG:   20,
		XL:   28,
		Pill: 999,
	}
}

// Shadows returns a neutral black shadow scale.
func Shadows() ShadowScale {
	return ShadowScale{
		Soft:   ShadowToken{Color: "#000000", Opacity: 0.05, Radius: 8, Y: 3},
		Card:   ShadowToken{Color: "#000000", Opacity: 0.08, Radius: 14, Y: 6},
		Lifted: ShadowToken{Color: "#000000", Opacity: 0.12, Radius: 20, Y: 10},
	}
}

// Glass derives glass tokens from a palette.
func Glass(colors ColorPalette, tint, strongTint, border float64, shadow ShadowToken) GlassTokens {
	return GlassTokens{
		Tint:       Tint{Color: colors.SurfaceVariant, Opacity: tint},
		StrongTint: Tint{Color: colors.SurfaceVariant, Opacity: strongTint},
		Border:     Tint{Color: colors.Border, Opacity: border},
		Shadow:     shadow,
	}
}

// HybridTypography builds the standard ramp with separate designs for titles,
// headlines and body text. Buttons follow the headline design; captions follow
// the body design and weight.
func HybridTypography(title, headline, body FontDesign, bodyWeight FontWeight) TypographyScale {
	if bodyWeight == "" {
		bodyWeight = WeightRegular
	}
	style := func(size float64, weight FontWeight, design FontDesign) TextStyle {
		return TextStyle{Size: size, Weight: weight, Design: design}
	}

	return TypographyScale{
		TitleLarge:  style(34, WeightSemibold, title),
		TitleMedium: style(28, WeightSemibold, title),
		TitleSmall:  style(22, WeightSemibold, title),

		HeadlineLarge:  style(20, WeightSemibold, headline),
		HeadlineMedium: style(17, WeightSemibold, headline),
		HeadlineSmall:  style(15, WeightSemibold, headline),

		BodyLarge:  style(17, bodyWeight, body),
		BodyMedium: style(15, bodyWeight, body),
		BodySmall:  style(13, bodyWeight, body),

		CaptionLarge: style(12, bodyWeight, body),
		CaptionSmall: style(11, bodyWeight, body),

		ButtonLarge:  style(17, WeightSemibold, headline),
		ButtonMedium: style(15, WeightSemibold, headline),
		ButtonSmall:  style(13, WeightSemibold, headline),
	}
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
