package model

import "errors"

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

var ErrInvalidThemeMode = errors.New("invalid theme mode")

// Toggled returns the opposite mode.
func (m ThemeMode) Toggled() ThemeMode {
	if m == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

func (m ThemeMode) Valid() bool {
	return m == ThemeLight || m == ThemeDark
}

func ParseThemeMode(s string) (ThemeMode, error) {
	m := ThemeMode(s)
	if !m.Valid() {
		return "", ErrInvalidThemeMode
	}
	return m, nil
}
