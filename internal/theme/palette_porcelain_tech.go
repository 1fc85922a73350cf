package theme

// PorcelainTech is a porcelain neutral base with indigo and mineral-teal accents.
func PorcelainTech() Theme {
	colors := ColorPalette{
		Primary:   adaptive("#3A3FD4", softWhite),
		Secondary: adaptive("#2A324C", coolGray),
		Accent:    adaptive("#2B8A8B", "#5AB5B8"),

		Success: adaptive("#2F8A67", lightSage),
		Warning: adaptive("#B9873D", lightGold),
		Error:   adaptive("#B55353", lightCoral),
		Info:    adaptive("#2F72D8", lightPowderBlue),

		BackgroundPrimary:   adaptive("#F2F5F8", midnight),
		BackgroundSecondary: adaptive("#F7FAFC", midnightSecondary),
		BackgroundTertiary:  adaptive("#E7EDF5", deepSlate),

		TextPrimary:   adaptive("#18202C", textPrimaryD),
		TextSecondary: adaptive("#4D5C6F", textSecondD),
		TextTertiary:  adaptive("#78879A", textTertiaryD),
		TextOnPrimary: adaptive(cloudWhite, textPrimaryL),

		Surface:        adaptive("#F9FBFE", surfaceDark),
		SurfaceVariant: adaptive("#EAF0F7", surfaceVariantDark),
		Border:         adaptive("#CDD9E7", borderDark),
		Divider:        adaptive("#C3D0E0", dividerDark),
	}

	return Theme{
		Name: string(PresetPorcelainTech),
		Tokens: DesignTokens{
			Colors:     colors,
			Typography: HybridTypography(DesignRounded, DesignRounded, DesignDefault, WeightMedium),
			Spacing:    Spacing(),
			Radii:      RadiiScale{XS: 6, SM: 10, MD: 14, LG: 18, XL: 26, Pill: 999},
			Shadows: ShadowScale{
				Soft:   ShadowToken{Color: "#000000", Opacity: 0.05, Radius: 7, Y: 3},
				Card:   ShadowToken{Color: "#000000", Opacity: 0.09, Radius: 12, Y: 5},
				Lifted: ShadowToken{Color: "#000000", Opacity: 0.13, Radius: 18, Y: 9},
			},
			Glass:  Glass(colors, 0.10, 0.16, 0.5, ShadowToken{Color: "#000000", Opacity: 0.08, Radius: 10, Y: 4}),
			Layout: Layout(),
		},
	}
}
