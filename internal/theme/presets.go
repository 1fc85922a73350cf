package theme

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned by ParsePreset for names outside AllPresets.
var ErrUnknownPreset = errors.New("unknown theme preset")

// Preset names a built-in theme.
type Preset string

// Built-in presets. PresetDefault builds Cloud Petal; the minimal theme used
// before configuration is PresetClassicMono.
const (
	PresetDefault         Preset = "default"
	PresetClassicMono     Preset = "classic-mono"
	PresetEditorialGarden Preset = "editorial-garden"
	PresetPorcelainTech   Preset = "porcelain-tech"
	PresetBotanicalLuxe   Preset = "botanical-luxe"
)

// AllPresets returns every preset in display order.
func AllPresets() []Preset {
	return []Preset{
		PresetDefault,
		PresetClassicMono,
		PresetEditorialGarden,
		PresetPorcelainTech,
		PresetBotanicalLuxe,
	}
}

// ParsePreset resolves a preset name. Matching ignores case, surrounding
// whitespace and the separator style ("Botanical Luxe", "botanical_luxe").
func ParsePreset(s string) (Preset, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "-", "_", "-").Replace(normalized)
	for _, p := range AllPresets() {
		if string(p) == normalized {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

// DisplayName returns the human-readable preset name.
func (p Preset) DisplayName() string {
	switch p {
	case PresetDefault:
		return "Default"
	case PresetClassicMono:
		return "Classic Mono"
	case PresetEditorialGarden:
		return "Editorial Garden"
	case PresetPorcelainTech:
		return "Porcelain Tech"
	case PresetBotanicalLuxe:
		return "Botanical Luxe"
	default:
		return string(p)
	}
}

// MakeTheme builds a fresh theme for the preset. Unknown presets fall back to
// Classic Mono.
func (p Preset) MakeTheme() Theme {
	switch p {
	case PresetDefault:
		return CloudPetal()
	case PresetEditorialGarden:
		return EditorialGarden()
	case PresetPorcelainTech:
		return PorcelainTech()
	case PresetBotanicalLuxe:
		return BotanicalLuxe()
	default:
		return ClassicMono()
	}
}

// String returns the preset name.
func (p Preset) String() string {
	return string(p)
}
