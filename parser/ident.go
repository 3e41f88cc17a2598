package parser

import "github.com/heathj/htmlast/parser/ast"

type tagKind uint8

const (
	kindEl tagKind = iota
	kindVoid
	kindOther
)

// parsedTag is the identity resolved from a tag name.
type parsedTag struct {
	kind  tagKind
	el    ast.ElementName
	void  ast.VoidName
	other string
}

func elTag(e ast.ElementName) parsedTag { return parsedTag{kind: kindEl, el: e} }
func voidTag(v ast.VoidName) parsedTag  { return parsedTag{kind: kindVoid, void: v} }

// otherRest collects the rest of an unrecognized name.
func otherRest(s []byte, first byte) ([]byte, parsedTag) {
	s, name := pushIdentRest(s, first)
	return s, parsedTag{kind: kindOther, other: name}
}

// parseTagIdent resolves the tag name at the front of s, which has had
// whitespace stripped and starts with a lowercase or non-letter byte.
// Uppercase names are routed to components before this is called. Each
// branch tries the known names for its first letter, longest literal first
// where they share a prefix, and falls back to a generic name.
func parseTagIdent(s []byte) ([]byte, parsedTag) {
	first := s[0]
	s = s[1:]
	// Whether the name continues past the first byte.
	more := len(s) > 0 && isIdentChar(s[0])

	switch first {
	case 'd':
		if r, ok := matchIdent2(s, 'i', 'v'); ok {
			return r, elTag(ast.Div)
		}
		return otherRest(s, first)
	case 'i':
		if r, ok := matchIdent2(s, 'm', 'g'); ok {
			return r, voidTag(ast.Img)
		}
		if r, ok := matchIdent4(s, 'n', 'p', 'u', 't'); ok {
			return r, voidTag(ast.Input)
		}
		if more {
			return otherRest(s, first)
		}
		return s, elTag(ast.I)
	case 'a':
		if !more {
			return s, elTag(ast.A)
		}
		if r, ok := matchIdent3(s, 'r', 'e', 'a'); ok {
			return r, voidTag(ast.Area)
		}
		if r, ok := matchIdent6(s, 'r', 't', 'i', 'c', 'l', 'e'); ok {
			return r, elTag(ast.Article)
		}
		if r, ok := matchIdent4(s, 's', 'i', 'd', 'e'); ok {
			return r, elTag(ast.Aside)
		}
		return otherRest(s, first)
	case 'b':
		if !more {
			return s, elTag(ast.B)
		}
		if r, ok := matchIdent1(s, 'r'); ok {
			return r, voidTag(ast.Br)
		}
		if r, ok := matchIdent3(s, 'o', 'd', 'y'); ok {
			return r, elTag(ast.Body)
		}
		if r, ok := matchIdent3(s, 'a', 's', 'e'); ok {
			return r, voidTag(ast.Base)
		}
		return otherRest(s, first)
	case 'h':
		// Two byte names: h1-h6 and hr.
		if more && len(s) > 1 && !isIdentChar(s[1]) {
			switch s[0] {
			case '1':
				return s[1:], elTag(ast.H1)
			case '2':
				return s[1:], elTag(ast.H2)
			case '3':
				return s[1:], elTag(ast.H3)
			case '4':
				return s[1:], elTag(ast.H4)
			case '5':
				return s[1:], elTag(ast.H5)
			case '6':
				return s[1:], elTag(ast.H6)
			case 'r':
				return s[1:], voidTag(ast.Hr)
			}
			return otherRest(s, first)
		}
		if r, ok := matchIdent3(s, 't', 'm', 'l'); ok {
			return r, elTag(ast.Html)
		}
		if r, ok := matchIdent3(s, 'e', 'a', 'd'); ok {
			return r, elTag(ast.Head)
		}
		if r, ok := matchIdent5(s, 'e', 'a', 'd', 'e', 'r'); ok {
			return r, elTag(ast.Header)
		}
		return otherRest(s, first)
	case 's':
		if r, ok := matchIdent5(s, 'e', 'l', 'e', 'c', 't'); ok {
			return r, elTag(ast.Select)
		}
		if r, ok := matchIdent4(s, 'm', 'a', 'l', 'l'); ok {
			return r, elTag(ast.Small)
		}
		if r, ok := matchIdent5(s, 'o', 'u', 'r', 'c', 'e'); ok {
			return r, voidTag(ast.Source)
		}
		return otherRest(s, first)
	case 't':
		if r, ok := matchIdent1(s, 'd'); ok {
			return r, elTag(ast.Td)
		}
		if r, ok := matchIdent1(s, 'r'); ok {
			return r, elTag(ast.Tr)
		}
		if r, ok := matchIdent1(s, 'h'); ok {
			return r, elTag(ast.Th)
		}
		if r, ok := matchIdent4(s, 'a', 'b', 'l', 'e'); ok {
			return r, elTag(ast.Table)
		}
		if r, ok := matchIdent4(s, 'i', 't', 'l', 'e'); ok {
			return r, elTag(ast.Title)
		}
		if r, ok := matchIdent4(s, 'r', 'a', 'c', 'k'); ok {
			return r, voidTag(ast.Track)
		}
		return otherRest(s, first)
	case 'o':
		if r, ok := matchIdent5(s, 'p', 't', 'i', 'o', 'n'); ok {
			return r, elTag(ast.Option)
		}
		if r, ok := matchIdent1(s, 'l'); ok {
			return r, elTag(ast.Ol)
		}
		return otherRest(s, first)
	case 'p':
		if !more {
			return s, elTag(ast.P)
		}
		if r, ok := matchIdent4(s, 'a', 'r', 'a', 'm'); ok {
			return r, voidTag(ast.Param)
		}
		return otherRest(s, first)
	case 'l':
		if r, ok := matchIdent1(s, 'i'); ok {
			return r, elTag(ast.Li)
		}
		if r, ok := matchIdent3(s, 'i', 'n', 'k'); ok {
			return r, voidTag(ast.Link)
		}
		return otherRest(s, first)
	case 'f':
		if r, ok := matchIdent3(s, 'o', 'r', 'm'); ok {
			return r, elTag(ast.Form)
		}
		if r, ok := matchIdent5(s, 'o', 'o', 't', 'e', 'r'); ok {
			return r, elTag(ast.Footer)
		}
		return otherRest(s, first)
	case 'm':
		if r, ok := matchIdent3(s, 'e', 't', 'a'); ok {
			return r, voidTag(ast.Meta)
		}
		if r, ok := matchIdent3(s, 'a', 'i', 'n'); ok {
			return r, elTag(ast.Main)
		}
		return otherRest(s, first)
	case 'u':
		if r, ok := matchIdent1(s, 'l'); ok {
			return r, elTag(ast.Ul)
		}
		if more {
			return otherRest(s, first)
		}
		return s, elTag(ast.U)
	case 'n':
		if r, ok := matchIdent2(s, 'a', 'v'); ok {
			return r, elTag(ast.Nav)
		}
		return otherRest(s, first)
	case 'e':
		if r, ok := matchIdent1(s, 'm'); ok {
			return r, elTag(ast.Em)
		}
		if r, ok := matchIdent4(s, 'm', 'b', 'e', 'd'); ok {
			return r, voidTag(ast.Embed)
		}
		return otherRest(s, first)
	case 'c':
		if r, ok := matchIdent6(s, 'o', 'm', 'm', 'a', 'n', 'd'); ok {
			return r, voidTag(ast.Command)
		}
		if r, ok := matchIdent2(s, 'o', 'l'); ok {
			return r, voidTag(ast.Col)
		}
		return otherRest(s, first)
	case 'k':
		if r, ok := matchIdent5(s, 'e', 'y', 'g', 'e', 'n'); ok {
			return r, voidTag(ast.Keygen)
		}
		return otherRest(s, first)
	case 'w':
		if r, ok := matchIdent2(s, 'b', 'r'); ok {
			return r, voidTag(ast.Wbr)
		}
		return otherRest(s, first)
	}
	return otherRest(s, first)
}

// closeElement matches the rest of the closing tag of e, positioned after "</".
func closeElement(s []byte, e ast.ElementName) ([]byte, bool) {
	switch e {
	case ast.Div:
		return closeTag3(s, 'd', 'i', 'v')
	case ast.A:
		return closeTag1(s, 'a')
	case ast.H1:
		return closeTag2(s, 'h', '1')
	case ast.H2:
		return closeTag2(s, 'h', '2')
	case ast.P:
		return closeTag1(s, 'p')
	case ast.H3:
		return closeTag2(s, 'h', '3')
	case ast.H4:
		return closeTag2(s, 'h', '4')
	case ast.Html:
		return closeTag4(s, 'h', 't', 'm', 'l')
	case ast.Head:
		return closeTag4(s, 'h', 'e', 'a', 'd')
	case ast.Title:
		return closeTag5(s, 't', 'i', 't', 'l', 'e')
	case ast.Body:
		return closeTag4(s, 'b', 'o', 'd', 'y')
	case ast.Form:
		return closeTag4(s, 'f', 'o', 'r', 'm')
	case ast.Select:
		return closeTag6(s, 's', 'e', 'l', 'e', 'c', 't')
	case ast.Option:
		return closeTag6(s, 'o', 'p', 't', 'i', 'o', 'n')
	case ast.Ul:
		return closeTag2(s, 'u', 'l')
	case ast.Ol:
		return closeTag2(s, 'o', 'l')
	case ast.Li:
		return closeTag2(s, 'l', 'i')
	case ast.Table:
		return closeTag5(s, 't', 'a', 'b', 'l', 'e')
	case ast.Tr:
		return closeTag2(s, 't', 'r')
	case ast.Td:
		return closeTag2(s, 't', 'd')
	case ast.Th:
		return closeTag2(s, 't', 'h')
	case ast.Em:
		return closeTag2(s, 'e', 'm')
	case ast.B:
		return closeTag1(s, 'b')
	case ast.I:
		return closeTag1(s, 'i')
	case ast.Header:
		return closeTag6(s, 'h', 'e', 'a', 'd', 'e', 'r')
	case ast.Footer:
		return closeTag6(s, 'f', 'o', 'o', 't', 'e', 'r')
	case ast.Article:
		return closeTag7(s, 'a', 'r', 't', 'i', 'c', 'l', 'e')
	case ast.Aside:
		return closeTag5(s, 'a', 's', 'i', 'd', 'e')
	case ast.Main:
		return closeTag4(s, 'm', 'a', 'i', 'n')
	case ast.Small:
		return closeTag5(s, 's', 'm', 'a', 'l', 'l')
	case ast.U:
		return closeTag1(s, 'u')
	case ast.H5:
		return closeTag2(s, 'h', '5')
	case ast.H6:
		return closeTag2(s, 'h', '6')
	case ast.Nav:
		return closeTag3(s, 'n', 'a', 'v')
	}
	return nil, false
}
