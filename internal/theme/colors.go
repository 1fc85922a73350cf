package theme

// Named neutrals shared by several palettes.
const (
	nearBlack     = "#111111"
	deepCharcoal  = "#1F2937"
	charcoal      = "#2B2B2B"
	mistBlue      = "#2563EB"
	softMist      = "#F2F2F4"
	cloudWhite    = "#FFFFFF"
	canvasWhite   = "#F7F7F7"
	surfaceTint   = "#F2F3F5"
	borderLight   = "#E5E7EB"
	dividerLight  = "#E2E4E8"
	textPrimaryL  = "#111111"
	textSecondL   = "#6B7280"
	textTertiaryL = "#9CA3AF"
	sageGreen     = "#16A34A"
	goldenrod     = "#F59E0B"
	coralRed      = "#EF4444"

	softWhite          = "#EDEDED"
	coolGray           = "#C4CAD3"
	lightCharcoal      = "#DADADA"
	lightPowderBlue    = "#60A5FA"
	deepSlate          = "#141419"
	midnight           = "#0B0C0E"
	midnightSecondary  = "#111317"
	surfaceDark        = "#121418"
	surfaceVariantDark = "#1A1C21"
	borderDark         = "#242730"
	dividerDark        = "#1E2128"
	textPrimaryD       = "#F5F5F7"
	textSecondD        = "#C7CBD1"
	textTertiaryD      = "#8A9099"
	lightSage          = "#4ADE80"
	lightGold          = "#FBBF24"
	lightCoral         = "#F87171"
)
