package theme

// BotanicalLuxe pairs stone and fog-green neutrals with deep botanical accents.
func BotanicalLuxe() Theme {
	colors := ColorPalette{
		Primary:   adaptive("#1F4C57", "#7CB4C0"),
		Secondary: adaptive("#273E43", "#BFD0CC"),
		Accent:    adaptive("#B8743E", "#D09B6D"),

		Success: adaptive("#3E7F5B", lightSage),
		Warning: adaptive("#A9772F", lightGold),
		Error:   adaptive("#A84C4C", lightCoral),
		Info:    adaptive("#2D6E8A", lightPowderBlue),

		BackgroundPrimary:   adaptive("#ECEBE4", midnight),
		BackgroundSecondary: adaptive("#F4F3ED", midnightSecondary),
		BackgroundTertiary:  adaptive("#DFE5DD", deepSlate),

		TextPrimary:   adaptive("#1A2322", textPrimaryD),
		TextSecondary: adaptive("#4A5754", textSecondD),
		TextTertiary:  adaptive("#74817B", textTertiaryD),
		TextOnPrimary: adaptive(cloudWhite, textPrimaryL),

		Surface:        adaptive("#F5F4EF", surfaceDark),
		SurfaceVariant: adaptive("#E5E8DE", surfaceVariantDark),
		Border:         adaptive("#C9CFBF", borderDark),
		Divider:        adaptive("#BCC4B2", dividerDark),
	}

	return Theme{
		Name: string(PresetBotanicalLuxe),
		Tokens: DesignTokens{
			Colors:     colors,
			Typography: HybridTypography(DesignDefault, DesignRounded, DesignDefault, WeightRegular),
			Spacing:    Spacing(),
			Radii:      RadiiScale{XS: 8, SM: 14, MD: 20, LG: 28, XL: 36, Pill: 999},
			Shadows: ShadowScale{
				Soft:   ShadowToken{Color: "#000000", Opacity: 0.045, Radius: 8, Y: 3},
				Card:   ShadowToken{Color: "#000000", Opacity: 0.085, Radius: 15, Y: 6},
				Lifted: ShadowToken{Color: "#000000", Opacity: 0.12, Radius: 22, Y: 11},
			},
			Glass:  Glass(colors, 0.10, 0.16, 0.45, ShadowToken{Color: "#000000", Opacity: 0.08, Radius: 10, Y: 4}),
			Layout: Layout(),
		},
	}
}
