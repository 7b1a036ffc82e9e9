package service

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks,
// so "é" and "e" compare equal after normalization.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lower-cases text, strips diacritics, and replaces every
// non-alphanumeric character with a space. It is deterministic, never fails,
// and is idempotent.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// Malformed input falls through unfolded; the mapping below still
		// keeps the result total and idempotent.
		folded = lowered
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			return r
		}
		return ' '
	}, folded)
}

// normalizedTokens splits normalized text on whitespace.
func normalizedTokens(text string) []string {
	return strings.Fields(Normalize(text))
}
