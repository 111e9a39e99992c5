package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/piwi3910/myfdtd/internal/model"
)

// FrameTheme wraps the default Fyne theme with compact sizing and an
// optional fixed light/dark variant.
type FrameTheme struct {
	base         fyne.Theme
	variant      fyne.ThemeVariant
	followSystem bool
}

// NewFrameTheme creates a FrameTheme that follows the OS variant.
func NewFrameTheme() *FrameTheme {
	return &FrameTheme{
		base:         theme.DefaultTheme(),
		followSystem: true,
	}
}

// NewFrameThemeFromConfig builds a theme from the user's Theme preference.
func NewFrameThemeFromConfig(cfg model.AppConfig) *FrameTheme {
	t := NewFrameTheme()
	if variant, ok := cfg.ThemeVariant(); ok {
		t.SetVariant(variant)
	}
	return t
}

// SetVariant pins the theme to a light or dark variant.
func (t *FrameTheme) SetVariant(variant fyne.ThemeVariant) {
	t.variant = variant
	t.followSystem = false
}

func (t *FrameTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.followSystem {
		return t.base.Color(name, variant)
	}
	return t.base.Color(name, t.variant)
}

func (t *FrameTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *FrameTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides.
func (t *FrameTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	default:
		return t.base.Size(name)
	}
}
