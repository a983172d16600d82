// Package symbol splits strings into the symbols used by the rune-keyed
// string structures. Valid UTF-8 decodes to its code points; each byte of an
// invalid sequence becomes its own symbol above utf8.MaxRune, so distinct
// inputs never decode to the same symbols and String restores the original bytes.
package symbol

import (
	"iter"
	"unicode/utf8"
)

// rawBase is the symbol of invalid byte 0x00; byte b maps to rawBase+b.
const rawBase = utf8.MaxRune + 1

// Decode returns the first symbol of s and its width in bytes. It returns
// (utf8.RuneError, 0) for an empty string.
func Decode(s string) (rune, int) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size == 1 {
		return rawBase + rune(s[0]), 1
	}

	return r, size
}

// All yields the symbols of s in order.
func All(s string) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for len(s) > 0 {
			r, size := Decode(s)
			if !yield(r) {
				return
			}
			s = s[size:]
		}
	}
}

// Slice returns the symbols of s.
func Slice(s string) []rune {
	out := make([]rune, 0, len(s))
	for r := range All(s) {
		out = append(out, r)
	}

	return out
}

// Count returns the number of symbols in s.
func Count(s string) int {
	n := 0
	for range All(s) {
		n++
	}

	return n
}

// String returns the bytes that r was decoded from.
func String(r rune) string {
	if r >= rawBase {
		return string([]byte{byte(r - rawBase)})
	}

	return string(r)
}
