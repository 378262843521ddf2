package util

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reSpaces     = regexp.MustCompile(`\s+`)
	reFileUnsafe = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
)

// NormalizeSpaces collapses whitespace runs (including NBSP) into one space.
func NormalizeSpaces(input string) string {
	input = strings.ReplaceAll(input, "\u00A0", " ")
	return strings.TrimSpace(reSpaces.ReplaceAllString(input, " "))
}

// StripSpaces removes every whitespace rune, so "12 : 15" becomes "12:15".
func StripSpaces(input string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, input)
}

func SanitizeFilename(input, fallback string) string {
	out := reFileUnsafe.ReplaceAllString(strings.TrimSpace(input), "_")
	out = strings.Trim(out, ". ")
	if out == "" {
		return fallback
	}
	if len(out) > 120 {
		out = out[:120]
	}
	return out
}
