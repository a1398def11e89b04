package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Custom color names used by the profile header
const (
	ColorNameHeader fyne.ThemeColorName = "profileHeader"
	ColorNameAvatar fyne.ThemeColorName = "profileAvatar"
	ColorNameTile   fyne.ThemeColorName = "profileTile"
)

// CompactTheme defines a compact theme with the profile header palette
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case ColorNameHeader:
		if variant == theme.VariantDark {
			return color.RGBA{R: 21, G: 67, B: 120, A: 255}
		}
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case ColorNameAvatar:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255}
	case ColorNameTile:
		if variant == theme.VariantDark {
			return color.RGBA{R: 48, G: 48, B: 48, A: 255}
		}
		return color.RGBA{R: 227, G: 235, B: 245, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}

// headerColor resolves a profile color against the current theme
func headerColor(name fyne.ThemeColorName) color.Color {
	return theme.Color(name)
}

// withOpacity scales the alpha of c by opacity in [0, 1]
func withOpacity(c color.Color, opacity float64) color.Color {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	nrgba.A = uint8(float64(nrgba.A)*opacity + 0.5)
	return nrgba
}
