package prefs

import (
	"fmt"
	"strings"
)

// Theme is the colour scheme of the terminal UI.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"

	// DefaultTheme is used when nothing valid is persisted.
	DefaultTheme = ThemeDark
)

// ParseTheme accepts "dark" or "light" in any case.
func ParseTheme(raw string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(raw))); t {
	case ThemeDark, ThemeLight:
		return t, nil
	default:
		return "", fmt.Errorf("unknown theme %q (expected dark or light)", raw)
	}
}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

func (t Theme) String() string { return string(t) }
