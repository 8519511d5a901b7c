// Package theme defines the light/dark display preference passed to every
// rendered page.
package theme

import "strings"

// Theme is a display color scheme.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Default is the theme of a new session.
const Default = Light

// Parse returns the theme named by s, or Default for anything else.
func Parse(s string) Theme {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Dark:
		return Dark
	case Light:
		return Light
	}
	return Default
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t == Dark
}

// ToggleLabel names the theme a toggle would switch to.
func (t Theme) ToggleLabel() string {
	if t == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}
