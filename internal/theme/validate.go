package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ErrInvalidTheme wraps every validation failure.
var ErrInvalidTheme = errors.New("invalid theme")

var hexColor = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidColor reports whether c is a color terminals understand: #RGB,
// #RRGGBB or an ANSI palette index from 0 to 255.
func ValidColor(c string) bool {
	if hexColor.MatchString(c) {
		return true
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255 && strconv.Itoa(n) == c
}

// Validate checks that the theme is named, every color role has a valid
// light and dark color, and the scales are positive.
func (t Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidTheme)
	}

	for _, role := range t.Tokens.Colors.Roles() {
		if !ValidColor(role.Color.Light) || !ValidColor(role.Color.Dark) {
			return fmt.Errorf("%w: color %s must be hex or ANSI for light and dark, got %q/%q",
				ErrInvalidTheme, role.Role, role.Color.Light, role.Color.Dark)
		}
	}

	prev := 0
	for _, step := range t.Tokens.Spacing.Steps() {
		if step <= prev {
			return fmt.Errorf("%w: spacing scale must be strictly ascending", ErrInvalidTheme)
		}
		prev = step
	}

	typography := t.Tokens.Typography
	for _, style := range []TextStyle{
		typography.TitleLarge, typography.TitleMedium, typography.TitleSmall,
		typography.HeadlineLarge, typography.HeadlineMedium, typography.HeadlineSmall,
		typography.BodyLarge, typography.BodyMedium, typography.BodySmall,
		typography.CaptionLarge, typography.CaptionSmall,
		typography.ButtonLarge, typography.ButtonMedium, typography.ButtonSmall,
	} {
		if style.Size <= 0 {
			return fmt.Errorf("%w: text sizes must be positive", ErrInvalidTheme)
		}
	}

	return nil
}
