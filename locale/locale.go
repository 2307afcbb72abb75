// Package locale provides helpers for multilingual text fields.
// Content is stored as opaque maps from locale code to text; nothing
// enforces which locales are present, so every read goes through a
// fallback chain.
package locale

import "sort"

// Localized is a mapping from locale code (e.g. "en", "pt") to text.
type Localized map[string]string

// Resolve returns the text for the requested locale, falling back to
// the default locale and then to the first available value in locale
// code order, so repeated calls always pick the same one.
func Resolve(field Localized, requested string, fallback string) string {
	if len(field) == 0 {
		return ""
	}
	if v, ok := field[requested]; ok && v != "" {
		return v
	}
	if v, ok := field[fallback]; ok && v != "" {
		return v
	}

	codes := make([]string, 0, len(field))
	for code := range field {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		if field[code] != "" {
			return field[code]
		}
	}
	return ""
}

// Has reports whether the field carries a non-empty value for the
// given locale, without any fallback.
func Has(field Localized, code string) bool {
	v, ok := field[code]
	return ok && v != ""
}
