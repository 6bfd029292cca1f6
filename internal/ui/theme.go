// Package ui provides terminal presentation helpers for the nebula CLI:
// headless detection, a colour theme and the spinner shown while
// dependencies install.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors is the palette used by styled output.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
}

// ThemeConfig selects a theme variant.
type ThemeConfig struct {
	NoColor bool
	Mode    string // "dark" or "light"
}

// Theme renders text with the palette, or verbatim when NoColor is set.
type Theme struct {
	Colors  Colors
	NoColor bool
}

var darkColors = Colors{
	Primary:   "#7C3AED",
	Secondary: "#06B6D4",
	Success:   "#22C55E",
	Warning:   "#F59E0B",
	Error:     "#EF4444",
	Muted:     "#9CA3AF",
}

var lightColors = Colors{
	Primary:   "#6D28D9",
	Secondary: "#0E7490",
	Success:   "#15803D",
	Warning:   "#B45309",
	Error:     "#B91C1C",
	Muted:     "#4B5563",
}

// NewTheme builds a Theme. Unknown modes use the dark palette.
func NewTheme(cfg ThemeConfig) *Theme {
	colors := darkColors
	if cfg.Mode == "light" {
		colors = lightColors
	}
	return &Theme{Colors: colors, NoColor: cfg.NoColor}
}

func (t *Theme) render(color string, bold bool, s string) string {
	if t.NoColor {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(bold).Render(s)
}

// Title renders a heading.
func (t *Theme) Title(s string) string { return t.render(t.Colors.Primary, true, s) }

// Success renders a success message.
func (t *Theme) Success(s string) string { return t.render(t.Colors.Success, true, s) }

// Warning renders a warning message.
func (t *Theme) Warning(s string) string { return t.render(t.Colors.Warning, true, s) }

// Error renders an error message.
func (t *Theme) Error(s string) string { return t.render(t.Colors.Error, true, s) }

// Muted renders secondary text.
func (t *Theme) Muted(s string) string { return t.render(t.Colors.Muted, false, s) }

// Path renders a file system path.
func (t *Theme) Path(s string) string { return t.render(t.Colors.Secondary, false, s) }

// Card draws a rounded box around body. With NoColor the body is returned
// unchanged.
func (t *Theme) Card(body string) string {
	if t.NoColor {
		return body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Primary)).
		Padding(0, 2).
		Render(body)
}
