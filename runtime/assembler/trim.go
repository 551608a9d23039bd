package assembler

import "unicode/utf8"

// Trim returns s unchanged if it is at most n bytes; otherwise it backs up
// from the n-byte cut point to the nearest valid UTF-8 character boundary and
// appends an ellipsis (spec.md §4.7's trimming rule, verified by §8 invariant
// #4: the result's prefix, minus the ellipsis, is always a prefix of s).
func Trim(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
