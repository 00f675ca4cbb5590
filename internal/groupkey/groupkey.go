// Package groupkey canonicalizes entry titles into grouping keys.
//
// The key is what clusters near-duplicate recordings of the same programme:
// two titles that differ only in case, punctuation, or diacritics map to the
// same key. Keys also back the prefix search in the CLI, so the same
// canonicalization must be applied to user search input.
package groupkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// digraphs maps locale characters to their ASCII digraph before the generic
// diacritic fold runs, so "ä" becomes "ae" rather than "a".
var digraphs = strings.NewReplacer(
	"ä", "ae",
	"ö", "oe",
	"ü", "ue",
	"ß", "ss",
)

// foldMarks strips combining marks after NFD decomposition ("é" -> "e").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize returns the grouping key for a title. It lowercases the input,
// expands German umlauts to digraphs, folds remaining diacritics to ASCII,
// and drops every byte that is not an ASCII letter or digit. The function is
// total and idempotent; any input yields a (possibly empty) key.
func Normalize(title string) string {
	lowered := digraphs.Replace(strings.ToLower(title))
	if folded, _, err := transform.String(foldMarks, lowered); err == nil {
		lowered = folded
	}

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
