package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugPattern = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug converts free text into a lowercase URL slug. Accented
// characters are folded to their base form so Portuguese titles produce
// clean slugs ("Saúde e Segurança" -> "saude-e-seguranca").
func GenerateSlug(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	text, _, _ = transform.String(t, text)

	text = strings.ToLower(text)
	text = slugPattern.ReplaceAllString(text, "-")

	return strings.Trim(text, "-")
}

// IsValidSlug reports whether a value is already a well-formed slug.
func IsValidSlug(slug string) bool {
	if slug == "" {
		return false
	}
	return GenerateSlug(slug) == slug
}
