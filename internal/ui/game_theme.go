package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// GameTheme defines a theme tuned for the quiz screen: larger text and
// generous padding for comfortable touch targets
type GameTheme struct{}

// NewGameTheme creates a new game theme
func NewGameTheme() fyne.Theme {
	return &GameTheme{}
}

// Color returns theme colors
func (t *GameTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for correct answers
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for wrong answers
	case theme.ColorNameWarning:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber for the countdown running low
	case theme.ColorNamePrimary:
		return color.RGBA{R: 63, G: 81, B: 181, A: 255} // Indigo for the answer buttons
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *GameTheme) Font(style fyne.TextStyle) fyne.Resource {
	// Use default theme fonts
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *GameTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	// Use default theme icons
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with game adjustments
func (t *GameTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameInnerPadding:
		return 10 // Increased from default 8
	case theme.SizeNameText:
		return 16 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 24 // Increased from default 18
	case theme.SizeNameSubHeadingText:
		return 18 // Increased from default 16
	case theme.SizeNameCaptionText:
		return 12 // Increased from default 11
	case theme.SizeNameInputRadius:
		return 8 // Rounder inputs for the touch UI
	case theme.SizeNameSelectionRadius:
		return 6
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
