package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases the title, folds accented characters to their ASCII
// base ("développeur" -> "developpeur"), replaces every character outside
// [a-z0-9 ] with a space and collapses whitespace runs. Total and idempotent:
// any input yields a string, and normalizing twice changes nothing.
func Normalize(title string) string {
	lowered := strings.ToLower(title)

	folded, _, err := transform.String(stripAccents, lowered)
	if err != nil {
		folded = lowered
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
