package domain

import "fmt"

// Locale identifies one of the two supported display languages.
type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

// Locales is the fixed set of supported locales.
var Locales = []Locale{LocaleZH, LocaleEN}

// ParseLocale validates a locale string.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleZH, LocaleEN:
		return Locale(s), nil
	}
	return "", fmt.Errorf("unsupported locale %q (want zh or en)", s)
}

// Other returns the secondary locale used for bilingual card bodies.
func (l Locale) Other() Locale {
	if l == LocaleZH {
		return LocaleEN
	}
	return LocaleZH
}
