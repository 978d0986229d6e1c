package tools

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugPattern    = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9]+`)
	stripDiacritic = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// ToSlug normaliza um texto qualquer para um identificador de URL:
// minúsculas, sem acentos, runs de caracteres inválidos viram um hífen,
// hífens das pontas são removidos. Determinística e total (vazio -> vazio).
func ToSlug(s string) string {
	s = strings.ToLower(s)
	if out, _, err := transform.String(stripDiacritic, s); err == nil {
		s = out
	}
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// IsValidSlug aceita só minúsculas, números e hífens simples, com pelo
// menos 3 caracteres.
func IsValidSlug(slug string) bool {
	return slugPattern.MatchString(slug) && len(slug) >= 3
}
