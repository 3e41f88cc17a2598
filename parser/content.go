package parser

import (
	"strings"
	"unicode/utf8"
)

// parseText reads character data up to the next '<' and trims trailing
// whitespace. Leading whitespace was already stripped by the children loop.
func parseText(s []byte) ([]byte, string) {
	var b strings.Builder
	for len(s) > 0 {
		c, size := decodeRune(s)
		if c == '<' {
			break
		}
		b.WriteRune(c)
		s = s[size:]
	}
	return s, strings.TrimRight(b.String(), " \t\r\n")
}

// parseComment reads a comment body, positioned after "<!--", through the
// closing "-->".
func parseComment(s []byte) ([]byte, string, error) {
	b := make([]byte, 0, 32)
	i := 0
	for i < len(s) {
		c, size := decodeRune(s[i:])
		i += size
		if c == '>' && i >= 3 && s[i-2] == '-' && s[i-3] == '-' {
			// Drop the "--" already copied.
			return s[i:], string(b[:len(b)-2]), nil
		}
		b = utf8.AppendRune(b, c)
	}
	return nil, "", errAt("Unterminated comment", s)
}

// parseQuotableContent captures a script or style body. It stops at a '<'
// that starts a closing tag, unless that '<' sits inside a quoted string.
// Quoted strings honor backslash escapes. The returned cursor is positioned
// at the '<' of the closing tag.
func parseQuotableContent(s []byte) ([]byte, string) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c, size := decodeRune(s[i:])
		switch c {
		case '<':
			// Could be a less-than operator. "</" ends the body, "<//" does not.
			if r, ok := matchByteSkipSpace(s[i+size:], '/'); ok && len(r) > 0 && r[0] != '/' {
				return s[i:], b.String()
			}
			b.WriteByte('<')
			i += size
		case '"', '\'', '`':
			b.WriteRune(c)
			i += size
			i = copyQuoted(&b, s, i, c)
		default:
			b.WriteRune(c)
			i += size
		}
	}
	return s[i:], b.String()
}

// copyQuoted copies s[i:] through the closing quote and returns the index
// after it. The byte after a backslash is copied without inspection.
func copyQuoted(b *strings.Builder, s []byte, i int, quote rune) int {
	for i < len(s) {
		c, size := decodeRune(s[i:])
		b.WriteRune(c)
		i += size
		switch c {
		case quote:
			return i
		case '\\':
			if i < len(s) {
				c, size := decodeRune(s[i:])
				b.WriteRune(c)
				i += size
			}
		}
	}
	return i
}
