package theme

// EditorialGarden is a warm paper palette with ink-blue accents.
func EditorialGarden() Theme {
	colors := ColorPalette{
		Primary:   adaptive("#243B6B", softWhite),
		Secondary: adaptive("#33405A", coolGray),
		Accent:    adaptive("#B56A5D", "#C7897D"),

		Success: adaptive("#3F7A56", lightSage),
		Warning: adaptive("#A97831", lightGold),
		Error:   adaptive("#AD4D4A", lightCoral),
		Info:    adaptive("#365E99", lightPowderBlue),

		BackgroundPrimary:   adaptive("#F4EEE2", midnight),
		BackgroundSecondary: adaptive("#F9F4EA", midnightSecondary),
		BackgroundTertiary:  adaptive("#EEE4D4", deepSlate),

		TextPrimary:   adaptive("#1F1C18", textPrimaryD),
		TextSecondary: adaptive("#5C5247", textSecondD),
		TextTertiary:  adaptive("#87796A", textTertiaryD),
		TextOnPrimary: adaptive(cloudWhite, textPrimaryL),

		Surface:        adaptive("#F9F3E8", surfaceDark),
		SurfaceVariant: adaptive("#EDE2CF", surfaceVariantDark),
		Border:         adaptive("#D6C8B1", borderDark),
		Divider:        adaptive("#CCBCA3", dividerDark),
	}

	return Theme{
		Name: string(PresetEditorialGarden),
		Tokens: DesignTokens{
			Colors:     colors,
			Typography: HybridTypography(DesignSerif, DesignSerif, DesignDefault, WeightRegular),
			Spacing:    Spacing(),
			Radii:      RadiiScale{XS: 7, SM: 11, MD: 16, LG: 22, XL: 32, Pill: 999},
			Shadows: ShadowScale{
				Soft:   ShadowToken{Color: "#000000", Opacity: 0.05, Radius: 8, Y: 3},
				Card:   ShadowToken{Color: "#000000", Opacity: 0.09, Radius: 14, Y: 6},
				Lifted: ShadowToken{Color: "#000000", Opacity: 0.14, Radius: 20, Y: 10},
			},
			Glass:  Glass(colors, 0.12, 0.18, 0.45, ShadowToken{Color: "#000000", Opacity: 0.08, Radius: 10, Y: 4}),
			Layout: Layout(),
		},
	}
}
