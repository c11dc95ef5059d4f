package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// strips spaces, uppercase first letter, remove trailing period
func CleanupString(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Title(language.English).String(s)
	s = strings.TrimSuffix(s, ".")
	return s
}

// Slugify turns a title into a filesystem-safe folder name part: lowercase
// ASCII, dashes between words, diacritics stripped, "&" spelled out. Falls
// back to "event" when nothing usable remains.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", " and ")

	// decompose and drop combining marks so "café" becomes "cafe"
	folded, _, err := transform.String(
		transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), s)
	if err == nil {
		s = folded
	}

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	s = b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")
	if s == "" {
		return "event"
	}
	return s
}
