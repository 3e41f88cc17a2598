package parser

import (
	"strings"

	"github.com/heathj/htmlast/parser/ast"
)

// parseAttributes consumes attributes up to and including the end of the
// opening tag. It reports whether the tag was self-closed with "/>".
func parseAttributes(s []byte) ([]byte, bool, []ast.Attr, error) {
	var attrs []ast.Attr
	for {
		s = stripSpace(s)
		if err := lenGt(s, 0); err != nil {
			return nil, false, nil, err
		}
		next := s[0]
		s = s[1:]
		switch next {
		case '>':
			return s, false, attrs, nil
		case '/':
			if r, ok := matchByteSkipSpace(s, '>'); ok {
				return r, true, attrs, nil
			}
			return nil, false, nil, errAt("Expected '>' after '/'", s)
		case 'i':
			if r, ok := matchIdent1(s, 'd'); ok {
				r, v, err := parseAttrValue(r)
				if err != nil {
					return nil, false, nil, err
				}
				if v == nil {
					return nil, false, nil, errAt("Id attribute requires value", s)
				}
				attrs = append(attrs, ast.ID(*v))
				s = r
				continue
			}
		case 'c':
			if r, ok := matchIdent4(s, 'l', 'a', 's', 's'); ok {
				r, v, err := parseAttrValue(r)
				if err != nil {
					return nil, false, nil, err
				}
				if v == nil {
					return nil, false, nil, errAt("Class attribute requires value", s)
				}
				attrs = append(attrs, ast.Class(*v))
				s = r
				continue
			}
		case 'o':
			if r, ok := matchIdent6(s, 'n', 'c', 'l', 'i', 'c', 'k'); ok {
				r, v, err := parseAttrValue(r)
				if err != nil {
					return nil, false, nil, err
				}
				if v == nil {
					return nil, false, nil, errAt("Onclick attribute requires value", s)
				}
				attrs = append(attrs, ast.OnClick(*v))
				s = r
				continue
			}
		case 'h':
			if r, ok := matchIdent3(s, 'r', 'e', 'f'); ok {
				r, v, err := parseAttrValue(r)
				if err != nil {
					return nil, false, nil, err
				}
				if v == nil {
					return nil, false, nil, errAt("Href attribute requires value", s)
				}
				attrs = append(attrs, ast.Href(*v))
				s = r
				continue
			}
		}

		// Generic attribute.
		r, name := pushIdentRest(s, next)
		r, v, err := parseAttrValue(r)
		if err != nil {
			return nil, false, nil, err
		}
		attrs = append(attrs, ast.OtherAttr{Name: name, Value: v})
		s = r
	}
}

// parseAttrValue parses an optional ="value" after an attribute name. A nil
// value means there was no '='. Trailing whitespace is left in place.
func parseAttrValue(s []byte) ([]byte, *string, error) {
	if len(s) == 0 {
		return s, nil, nil
	}
	r, ok := matchByteSkipSpace(s, '=')
	if !ok {
		return s, nil, nil
	}
	s = r
	if err := lenGt(s, 0); err != nil {
		return nil, nil, err
	}
	for {
		switch s[0] {
		case '"', '\'':
			return parseQuoted(s)
		case ' ', '\t', '\n', '\r':
			s = stripSpace(s[1:])
			if len(s) == 0 {
				// '=' followed by nothing but space reads as an empty value.
				empty := ""
				return s, &empty, nil
			}
		default:
			return parseUnquoted(s)
		}
	}
}

// parseQuoted reads a value up to the quote byte s[0]. There are no escapes;
// the first matching quote ends the value.
func parseQuoted(s []byte) ([]byte, *string, error) {
	quote := rune(s[0])
	var b strings.Builder
	i := 1
	for i < len(s) {
		c, size := decodeRune(s[i:])
		i += size
		if c == quote {
			v := b.String()
			return s[i:], &v, nil
		}
		b.WriteRune(c)
	}
	if quote == '"' {
		return nil, nil, errAt("Expected ending double quote", s)
	}
	return nil, nil, errAt("Expected ending single quote", s)
}

// parseUnquoted reads a value up to whitespace, '>' or '/'. The terminator
// is left for the attribute loop.
func parseUnquoted(s []byte) ([]byte, *string, error) {
	var b strings.Builder
	i := 0
	for i < len(s) {
		c, size := decodeRune(s[i:])
		switch c {
		case ' ', '>', '/', '\t', '\n', '\r':
			v := b.String()
			return s[i:], &v, nil
		}
		b.WriteRune(c)
		i += size
	}
	return nil, nil, errAt("Expected end of unquoted attribute", s)
}
