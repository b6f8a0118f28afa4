// Package hangul decomposes precomposed Hangul syllables into their initial,
// medial and final jamo indices and composes them back.
//
// The medial (vowel) index carries the direction of an instruction in the
// edited language, which is why mirroring and rotating a region of code has
// to rewrite it. The tables in glyph.go describe those rewrites.
package hangul

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	syllableFirst = 0xAC00
	syllableLast  = 0xD7A3

	choBase  = 0x1100
	jungBase = 0x1161
	// Final index 0 means "no final", so index n maps to jongBase+n.
	jongBase = 0x11A7

	ChoCount  = 19
	JungCount = 21
	JongCount = 28
)

// None is the index reported for every component of a non-syllable.
const None = -1

// IsSyllable reports whether ch is exactly one precomposed Hangul syllable.
func IsSyllable(ch string) bool {
	r, size := utf8.DecodeRuneInString(ch)
	return size > 0 && size == len(ch) && r >= syllableFirst && r <= syllableLast
}

// Decompose splits a syllable into its component indices. Anything else,
// including multi-character strings, yields None for every index.
func Decompose(ch string) (cho, jung, jong int, ok bool) {
	if !IsSyllable(ch) {
		return None, None, None, false
	}
	jamo := []rune(norm.NFD.String(ch))
	if len(jamo) < 2 {
		return None, None, None, false
	}
	cho = int(jamo[0] - choBase)
	jung = int(jamo[1] - jungBase)
	if len(jamo) == 3 {
		jong = int(jamo[2] - jongBase)
	}
	return cho, jung, jong, true
}

// Compose builds the syllable for the given indices.
func Compose(cho, jung, jong int) (string, bool) {
	if cho < 0 || cho >= ChoCount ||
		jung < 0 || jung >= JungCount ||
		jong < 0 || jong >= JongCount {
		return "", false
	}
	jamo := []rune{rune(choBase + cho), rune(jungBase + jung)}
	if jong > 0 {
		jamo = append(jamo, rune(jongBase+jong))
	}
	out := norm.NFC.String(string(jamo))
	if !IsSyllable(out) {
		return "", false
	}
	return out, true
}

// IsSignificant reports whether either index names a real component. The
// significant set is every valid initial and every valid medial, so only
// non-syllables (both indices None) are insignificant.
func IsSignificant(cho, jung int) bool {
	return (cho >= 0 && cho < ChoCount) || (jung >= 0 && jung < JungCount)
}
