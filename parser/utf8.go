package parser

import "unicode/utf8"

// Mask of the value bits of a continuation byte.
const contMask = 0x3f

// decodeRune decodes one codepoint from the front of s and returns it with
// its width in bytes. Empty input returns width 0. An invalid sequence
// (bad lead byte, truncated or overlong sequence, surrogate, out of range)
// decodes to utf8.RuneError with width 1 so scanning always advances.
func decodeRune(s []byte) (rune, int) {
	n := len(s)
	if n == 0 {
		return utf8.RuneError, 0
	}
	x := s[0]
	if x < 0x80 {
		return rune(x), 1
	}

	var need int
	var r, min rune
	switch {
	case x&0xe0 == 0xc0:
		need, r, min = 2, rune(x&0x1f), 0x80
	case x&0xf0 == 0xe0:
		need, r, min = 3, rune(x&0x0f), 0x800
	case x&0xf8 == 0xf0:
		need, r, min = 4, rune(x&0x07), 0x10000
	default:
		return utf8.RuneError, 1
	}
	if n < need {
		return utf8.RuneError, 1
	}
	for i := 1; i < need; i++ {
		c := s[i]
		if c&0xc0 != 0x80 {
			return utf8.RuneError, 1
		}
		r = r<<6 | rune(c&contMask)
	}
	if r < min || !utf8.ValidRune(r) {
		return utf8.RuneError, 1
	}
	return r, need
}
