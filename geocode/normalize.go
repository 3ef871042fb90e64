package geocode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName canonicalizes a station name for override lookups:
// lower-cased, diacritics stripped, non-alphanumeric runs collapsed to
// single spaces.
func NormalizeName(name string) string {
	if out, _, err := transform.String(stripMarks, name); err == nil {
		name = out
	}
	name = strings.ToLower(name)
	var b strings.Builder
	space := false
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if space && b.Len() > 0 {
				b.WriteByte(' ')
			}
			space = false
			b.WriteRune(r)
		} else {
			space = true
		}
	}
	return b.String()
}
