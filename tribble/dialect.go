package tribble

import "strings"

// Dialect normalization. Streams arrive from humans and LED photographs
// in several equivalent notations; Normalize folds them all onto the
// default alphabet before parsing. This is tied to the default alphabet
// on purpose: dialects are an input-side convenience, not part of the
// configurable wire format.
var dialects = map[rune]rune{
	'🔴': '+',
	'⚫': '=',
	'🟢': '-',
	'>': '+',
	'<': '-',
	'1': '+',
	'0': '=',
	'2': '-',
}

// Normalize maps dialect glyphs onto the default alphabet and drops every
// other rune, including whitespace. The result contains only '-', '=', '+'.
func Normalize(s string) string {
	def := DefaultAlphabet()
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mapped, ok := dialects[r]; ok {
			r = mapped
		}
		if def.Contains(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LED glyphs for visualization, one per trit symbol.
var ledGlyphs = map[rune]rune{
	'+': '🔴',
	'=': '⚫',
	'-': '🟢',
}

// ToLED renders a default-alphabet symbol string as LED glyphs.
// Runes outside the alphabet pass through unchanged.
func ToLED(symbols string) string {
	var b strings.Builder
	for _, r := range symbols {
		if led, ok := ledGlyphs[r]; ok {
			r = led
		}
		b.WriteRune(r)
	}
	return b.String()
}
