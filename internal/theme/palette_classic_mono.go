package theme

// ClassicMono is the minimal neutral theme installed before any configuration.
func ClassicMono() Theme {
	colors := ColorPalette{
		Primary:   adaptive(nearBlack, softWhite),
		Secondary: adaptive(deepCharcoal, coolGray),
		Accent:    adaptive(charcoal, lightCharcoal),

		Success: adaptive(sageGreen, lightSage),
		Warning: adaptive(goldenrod, lightGold),
		Error:   adaptive(coralRed, lightCoral),
		Info:    adaptive(mistBlue, lightPowderBlue),

		BackgroundPrimary:   adaptive(canvasWhite, midnight),
		BackgroundSecondary: adaptive(cloudWhite, midnightSecondary),
		BackgroundTertiary:  adaptive(softMist, deepSlate),

		TextPrimary:   adaptive(textPrimaryL, textPrimaryD),
		TextSecondary: adaptive(textSecondL, textSecondD),
		TextTertiary:  adaptive(textTertiaryL, textTertiaryD),
		TextOnPrimary: adaptive(cloudWhite, textPrimaryL),

		Surface:        adaptive(cloudWhite, surfaceDark),
		SurfaceVariant: adaptive(surfaceTint, surfaceVariantDark),
		Border:         adaptive(borderLight, borderDark),
		Divider:        adaptive(dividerLight, dividerDark),
	}

	return Theme{
		Name: string(PresetClassicMono),
		Tokens: DesignTokens{
			Colors:     colors,
			Typography: HybridTypography(DesignDefault, DesignDefault, DesignDefault, WeightRegular),
			Spacing:    Spacing(),
			Radii:      Radii(),
			Shadows:    Shadows(),
			Glass:      Glass(colors, 0.12, 0.18, 0.5, ShadowToken{Color: "#000000", Opacity: 0.08, Radius: 10, Y: 4}),
			Layout:     Layout(),
		},
	}
}
