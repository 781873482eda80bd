package report

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeSearch lowercases and strips diacritics so that "Pérez" matches
// "perez". Decomposes to NFD, drops combining marks, recomposes.
func NormalizeSearch(value string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, value)
	if err != nil {
		return strings.ToLower(value)
	}
	return strings.ToLower(out)
}

// MatchesSearch reports whether any of the candidates contains the already
// normalized needle.
func MatchesSearch(normalized string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.Contains(NormalizeSearch(c), normalized) {
			return true
		}
	}
	return false
}
