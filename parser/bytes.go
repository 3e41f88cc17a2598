package parser

// Cursor primitives. Every function takes the unconsumed input and, on a
// match, returns the input after the match. A failed match returns ok=false
// and the caller keeps its own cursor. None of them allocate.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isAlphaNum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isAlphaNum(c) || c == '-'
}

// stripSpace consumes zero or more whitespace bytes.
func stripSpace(s []byte) []byte {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

func matchByte(s []byte, c byte) ([]byte, bool) {
	if len(s) > 0 && s[0] == c {
		return s[1:], true
	}
	return nil, false
}

// matchByteSkipSpace matches c, and when the first byte is not c strips one
// run of whitespace and tries once more.
func matchByteSkipSpace(s []byte, c byte) ([]byte, bool) {
	if len(s) > 0 && s[0] == c {
		return s[1:], true
	}
	s = stripSpace(s)
	if len(s) > 0 && s[0] == c {
		return s[1:], true
	}
	return nil, false
}

// matchLiteral is a case-sensitive byte-for-byte match.
func matchLiteral(s []byte, lit string) ([]byte, bool) {
	if len(s) < len(lit) {
		return nil, false
	}
	for i := 0; i < len(lit); i++ {
		if s[i] != lit[i] {
			return nil, false
		}
	}
	return s[len(lit):], true
}

// matchLiteralSkipSpace is matchLiteral with the same skip-once whitespace
// allowance as matchByteSkipSpace.
func matchLiteralSkipSpace(s []byte, lit string) ([]byte, bool) {
	if rest, ok := matchLiteral(s, lit); ok {
		return rest, true
	}
	if len(s) > 0 && isSpace(s[0]) {
		return matchLiteral(stripSpace(s[1:]), lit)
	}
	return nil, false
}

// The matchIdentN helpers match N literal bytes that must be followed by a
// byte that cannot continue an identifier. They need at least N+1 bytes.

func matchIdent1(s []byte, a byte) ([]byte, bool) {
	if len(s) < 2 {
		return nil, false
	}
	if s[0] == a && !isIdentChar(s[1]) {
		return s[1:], true
	}
	return nil, false
}

func matchIdent2(s []byte, a, b byte) ([]byte, bool) {
	if len(s) < 3 {
		return nil, false
	}
	if s[0] == a && s[1] == b && !isIdentChar(s[2]) {
		return s[2:], true
	}
	return nil, false
}

func matchIdent3(s []byte, a, b, c byte) ([]byte, bool) {
	if len(s) < 4 {
		return nil, false
	}
	if s[0] == a && s[1] == b && s[2] == c && !isIdentChar(s[3]) {
		return s[3:], true
	}
	return nil, false
}

func matchIdent4(s []byte, a, b, c, d byte) ([]byte, bool) {
	if len(s) < 5 {
		return nil, false
	}
	if s[0] == a && s[1] == b && s[2] == c && s[3] == d && !isIdentChar(s[4]) {
		return s[4:], true
	}
	return nil, false
}

func matchIdent5(s []byte, a, b, c, d, e byte) ([]byte, bool) {
	if len(s) < 6 {
		return nil, false
	}
	if s[0] == a && s[1] == b && s[2] == c && s[3] == d && s[4] == e && !isIdentChar(s[5]) {
		return s[5:], true
	}
	return nil, false
}

func matchIdent6(s []byte, a, b, c, d, e, f byte) ([]byte, bool) {
	if len(s) < 7 {
		return nil, false
	}
	if s[0] == a && s[1] == b && s[2] == c && s[3] == d && s[4] == e && s[5] == f &&
		!isIdentChar(s[6]) {
		return s[6:], true
	}
	return nil, false
}

// The closeTagN helpers run after "</" and match a known name of N bytes
// followed by '>'. Whitespace is allowed before the name and before '>'.

func closeTag1(s []byte, a byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok {
		return nil, false
	}
	return matchByteSkipSpace(s, '>')
}

func closeTag2(s []byte, a, b byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 2 || s[0] != b {
		return nil, false
	}
	return matchByteSkipSpace(s[1:], '>')
}

func closeTag3(s []byte, a, b, c byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 3 || s[0] != b || s[1] != c {
		return nil, false
	}
	return matchByteSkipSpace(s[2:], '>')
}

func closeTag4(s []byte, a, b, c, d byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 4 || s[0] != b || s[1] != c || s[2] != d {
		return nil, false
	}
	return matchByteSkipSpace(s[3:], '>')
}

func closeTag5(s []byte, a, b, c, d, e byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 5 || s[0] != b || s[1] != c || s[2] != d || s[3] != e {
		return nil, false
	}
	return matchByteSkipSpace(s[4:], '>')
}

func closeTag6(s []byte, a, b, c, d, e, f byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 6 || s[0] != b || s[1] != c || s[2] != d || s[3] != e || s[4] != f {
		return nil, false
	}
	return matchByteSkipSpace(s[5:], '>')
}

func closeTag7(s []byte, a, b, c, d, e, f, g byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, a)
	if !ok || len(s) < 7 || s[0] != b || s[1] != c || s[2] != d || s[3] != e || s[4] != f ||
		s[5] != g {
		return nil, false
	}
	return matchByteSkipSpace(s[6:], '>')
}

// pushIdentRest appends identifier bytes from s to prefix.
func pushIdentRest(s []byte, prefix byte) ([]byte, string) {
	i := 0
	for i < len(s) && isIdentChar(s[i]) {
		i++
	}
	b := make([]byte, 0, i+1)
	b = append(b, prefix)
	b = append(b, s[:i]...)
	return s[i:], string(b)
}
