package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/petal/internal/appearance"
	"github.com/opencode-ai/petal/internal/designsystem"
	"github.com/opencode-ai/petal/internal/theme"
)

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
}

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Inspect theme presets",
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List theme presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		active := GetConfig().Preset()

		rows := make([][]string, 0, len(theme.AllPresets()))
		for _, p := range theme.AllPresets() {
			marker := ""
			if p == active {
				marker = "*"
			}
			rows = append(rows, []string{marker, string(p), p.DisplayName()})
		}
		return writeTable(cmd.OutOrStdout(), []string{"", "PRESET", "NAME"}, rows)
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show [preset]",
	Short: "Show the tokens of a preset",
	Long:  "Configure the design system with a preset (the configured one by default) and print its token bundle.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		preset := GetConfig().Preset()
		if len(args) == 1 {
			p, err := theme.ParsePreset(args[0])
			if err != nil {
				return err
			}
			preset = p
		}

		designsystem.ConfigurePreset(preset)
		return renderTheme(cmd.OutOrStdout(), designsystem.Current(), appearance.Current())
	},
}

func renderTheme(out io.Writer, th theme.Theme, styles appearance.Styles) error {
	tokens := th.Tokens

	fmt.Fprintln(out, styles.Title.Render(theme.Preset(th.Name).DisplayName()))
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Headline.Render("Colors"))
	colorRows := make([][]string, 0, len(tokens.Colors.Roles()))
	for _, role := range tokens.Colors.Roles() {
		colorRows = append(colorRows, []string{
			role.Role,
			role.Color.Light,
			role.Color.Dark,
			appearance.Swatch(role.Color, 4),
		})
	}
	if err := writeTable(out, []string{"ROLE", "LIGHT", "DARK", ""}, colorRows); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Headline.Render("Typography"))
	typography := tokens.Typography
	typeRows := [][]string{
		textRow("title-large", typography.TitleLarge),
		textRow("title-medium", typography.TitleMedium),
		textRow("title-small", typography.TitleSmall),
		textRow("headline-large", typography.HeadlineLarge),
		textRow("headline-medium", typography.HeadlineMedium),
		textRow("headline-small", typography.HeadlineSmall),
		textRow("body-large", typography.BodyLarge),
		textRow("body-medium", typography.BodyMedium),
		textRow("body-small", typography.BodySmall),
		textRow("caption-large", typography.CaptionLarge),
		textRow("caption-small", typography.CaptionSmall),
		textRow("button-large", typography.ButtonLarge),
		textRow("button-medium", typography.ButtonMedium),
		textRow("button-small", typography.ButtonSmall),
	}
	if err := writeTable(out, []string{"STYLE", "SIZE", "WEIGHT", "DESIGN"}, typeRows); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Headline.Render("Scales"))
	spacing := tokens.Spacing
	radii := tokens.Radii
	layout := tokens.Layout
	scaleRows := [][]string{
		{"spacing", joinInts(spacing.Steps())},
		{"radii", joinInts([]int{radii.XS, radii.SM, radii.MD, radii.LG, radii.XL, radii.Pill})},
		{"shadows", fmt.Sprintf("soft %s, card %s, lifted %s",
			shadowString(tokens.Shadows.Soft), shadowString(tokens.Shadows.Card), shadowString(tokens.Shadows.Lifted))},
		{"glass", fmt.Sprintf("tint %.2f, strong %.2f, border %.2f",
			tokens.Glass.Tint.Opacity, tokens.Glass.StrongTint.Opacity, tokens.Glass.Border.Opacity)},
		{"layout", fmt.Sprintf("touch %d, icons %d/%d/%d, card padding %d, row %d, max width %d",
			layout.MinTouchTarget, layout.IconSmall, layout.IconMedium, layout.IconLarge,
			layout.CardPadding, layout.RowHeight, layout.MaxContentWidth)},
	}
	if err := writeTable(out, []string{"SCALE", "VALUES"}, scaleRows); err != nil {
		return err
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, styles.Pill.Render("Primary"), styles.Badge.Render("Badge"), styles.Muted.Render("secondary text"))
	return nil
}

func textRow(name string, style theme.TextStyle) []string {
	return []string{name, strconv.FormatFloat(style.Size, 'f', -1, 64), string(style.Weight), string(style.Design)}
}

func shadowString(s theme.ShadowToken) string {
	return fmt.Sprintf("%s@%.3g r%d y%d", s.Color, s.Opacity, s.Radius, s.Y)
}

func joinInts(values []int) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += " "
		}
		out += strconv.Itoa(v)
	}
	return out
}
