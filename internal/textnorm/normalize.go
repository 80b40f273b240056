// Package textnorm strips diacritical marks from Unicode text.
package textnorm

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacritics is the Combining Diacritical Marks block.
var combiningDiacritics = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize removes diacritical marks from s: "Crème Brûlée" becomes
// "Creme Brulee".
//
// s is decomposed (NFD), marks in U+0300..U+036F are dropped, and the rest
// is recomposed (NFC) so that scripts relying on composition, such as
// Hangul, come back unchanged.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacritics)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		// The chain only fails on invalid UTF-8 input; fall back to the
		// NFC form, which replaces nothing.
		return norm.NFC.String(s)
	}
	return out
}
