package theme

// CloudPetal is a soft pastel palette with periwinkle accents.
func CloudPetal() Theme {
	colors := ColorPalette{
		Primary:   adaptive("#7B8CDE", "#A8B4F0"),
		Secondary: adaptive("#6A7BC8", "#95A3E5"),
		Accent:    adaptive("#C890B5", "#E0AACD"),

		Success: adaptive("#6BAF7D", "#8ED4A0"),
		Warning: adaptive("#C9A84E", "#E5CA7A"),
		Error:   adaptive("#D07070", "#EFA0A0"),
		Info:    adaptive("#72A0CE", "#A0C5E5"),

		BackgroundPrimary:   adaptive("#F7F6FB", "#121318"),
		BackgroundSecondary: adaptive("#FCFBFE", "#181924"),
		BackgroundTertiary:  adaptive("#EEEAF5", "#1F2033"),

		TextPrimary:   adaptive("#1C1B2A", "#EEEDF8"),
		TextSecondary: adaptive("#5D5B72", "#B5B2CC"),
		TextTertiary:  adaptive("#8C89A5", "#8582A0"),
		TextOnPrimary: adaptive(cloudWhite, "#1C1B2A"),

		Surface:        adaptive("#FDFCFF", "#1C1D2C"),
		SurfaceVariant: adaptive("#F0EDF8", "#262840"),
		Border:         adaptive("#D8D3E8", "#33354F"),
		Divider:        adaptive("#CEC8E0", "#3C3E58"),
	}

	return Theme{
		Name: string(PresetDefault),
		Tokens: DesignTokens{
			Colors:     colors,
			Typography: HybridTypography(DesignDefault, DesignDefault, DesignDefault, WeightRegular),
			Spacing:    Spacing(),
			Radii:      RadiiScale{XS: 10, SM: 14, MD: 18, LG: 24, XL: 32, Pill: 999},
			Shadows: ShadowScale{
				Soft:   ShadowToken{Color: "#7B8CDE", Opacity: 0.06, Radius: 8, Y: 3},
				Card:   ShadowToken{Color: "#7B8CDE", Opacity: 0.10, Radius: 14, Y: 6},
				Lifted: ShadowToken{Color: "#7B8CDE", Opacity: 0.14, Radius: 20, Y: 10},
			},
			Glass:  Glass(colors, 0.14, 0.20, 0.5, ShadowToken{Color: "#7B8CDE", Opacity: 0.08, Radius: 10, Y: 4}),
			Layout: Layout(),
		},
	}
}
