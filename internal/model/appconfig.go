package model

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	DefaultWindowTitle  = "My FDTD"
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// AppConfig holds application-wide preferences for the main frame.
type AppConfig struct {
	WindowTitle  string  `json:"window_title"`
	WindowWidth  float32 `json:"window_width"`
	WindowHeight float32 `json:"window_height"`

	// Application preferences
	Theme    string `json:"theme"`     // "light", "dark", "system"
	LogLevel string `json:"log_level"` // zerolog level name
	MenuBar  bool   `json:"menu_bar"`  // false shows an About button instead
	Toolbar  bool   `json:"toolbar"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		WindowTitle:  DefaultWindowTitle,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		Theme:        "system",
		LogLevel:     "info",
		MenuBar:      true,
		Toolbar:      false,
	}
}

// Normalize replaces empty or out-of-range values with their defaults.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	if c.WindowTitle == "" {
		c.WindowTitle = defaults.WindowTitle
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = defaults.WindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = defaults.WindowHeight
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
}

// ThemeVariant maps the Theme preference onto a Fyne variant.
// ok is false for "system", meaning the OS preference should be followed.
func (c AppConfig) ThemeVariant() (variant fyne.ThemeVariant, ok bool) {
	switch c.Theme {
	case "light":
		return theme.VariantLight, true
	case "dark":
		return theme.VariantDark, true
	default:
		return 0, false
	}
}
