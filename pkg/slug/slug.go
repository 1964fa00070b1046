package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugRegexp = regexp.MustCompile(`[^a-z0-9]+`)

// foldings covers letters that do not decompose into base + mark.
var foldings = strings.NewReplacer(
	"ı", "i", "ø", "o", "ß", "ss", "æ", "ae", "œ", "oe", "ł", "l", "đ", "d",
)

// Generate creates a URL-friendly slug from the given name. Accented letters
// lose their marks and every run of other characters becomes one hyphen.
//
// Examples:
//   - "Minimalist Watch" → "minimalist-watch"
//   - "Émeraude Çanta" → "emeraude-canta"
//   - "18k  Gold-Plated!" → "18k-gold-plated"
func Generate(name string) string {
	s := foldings.Replace(strings.ToLower(strings.TrimSpace(name)))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}

	s = slugRegexp.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
