package parser

import (
	"github.com/heathj/htmlast/parser/ast"
)

// parseTag parses a tag positioned after '<'. Void tags and self-closed tags
// return at once; other tags collect children and then require the matching
// closing tag. Known elements are closed by identity, other names by a
// literal comparison.
func parseTag(s []byte) ([]byte, ast.Node, error) {
	s, ident := parseTagIdent(s)
	switch ident.kind {
	case kindVoid:
		s, _, attrs, err := parseAttributes(s)
		if err != nil {
			return nil, nil, err
		}
		return s, &ast.Void{Name: ident.void, Attrs: attrs}, nil

	case kindEl:
		s, selfClosed, attrs, err := parseAttributes(s)
		if err != nil {
			return nil, nil, err
		}
		if selfClosed {
			return s, &ast.El{Name: ident.el, Attrs: attrs}, nil
		}
		s, children, err := parseChildren(s)
		if err != nil {
			return nil, nil, err
		}
		if len(s) == 0 {
			return nil, nil, errAtf(s, "Eof, expecting close tag for: %s", ident.el)
		}
		r, ok := closeElement(s, ident.el)
		if !ok {
			return nil, nil, errAtf(s, "Expecting close tag for: %s", ident.el)
		}
		return r, &ast.El{Name: ident.el, Attrs: attrs, Children: children}, nil
	}

	s, selfClosed, attrs, err := parseAttributes(s)
	if err != nil {
		return nil, nil, err
	}
	if selfClosed {
		return s, &ast.Other{Name: ident.other, Attrs: attrs}, nil
	}
	s, children, err := parseChildren(s)
	if err != nil {
		return nil, nil, err
	}
	r, err := closeNamed(s, ident.other)
	if err != nil {
		return nil, nil, err
	}
	return r, &ast.Other{Name: ident.other, Attrs: attrs, Children: children}, nil
}

// closeNamed matches the rest of a closing tag by literal name, positioned
// after "</".
func closeNamed(s []byte, name string) ([]byte, error) {
	if len(s) == 0 {
		return nil, errAtf(s, "Expected closing tag: %s", name)
	}
	r, ok := matchLiteralSkipSpace(s, name)
	if !ok {
		return nil, errAtf(s, "Expected closing tag: %s", name)
	}
	r, ok = matchByteSkipSpace(r, '>')
	if !ok {
		return nil, errAt("Closing tag not complete", s)
	}
	return r, nil
}

// parseComponent parses a tag whose name starts with an uppercase letter.
// Props are plain name[=value] pairs with no special names.
func parseComponent(s []byte) ([]byte, ast.Node, error) {
	s, name := pushIdentRest(s[1:], s[0])
	var props []ast.Prop
	for {
		s = stripSpace(s)
		if err := lenGt(s, 0); err != nil {
			return nil, nil, err
		}
		next := s[0]
		s = s[1:]
		switch next {
		case '>':
			s, children, err := parseChildren(s)
			if err != nil {
				return nil, nil, err
			}
			if len(s) == 0 {
				return nil, nil, errAtf(s, "Eof, expecting close tag for: %s", name)
			}
			r, err := closeNamed(s, name)
			if err != nil {
				return nil, nil, err
			}
			return r, &ast.Component{Name: name, Props: props, Children: children}, nil
		case '/':
			if r, ok := matchByteSkipSpace(s, '>'); ok {
				return r, &ast.Component{Name: name, Props: props}, nil
			}
			return nil, nil, errAt("Expecting '>'", s)
		default:
			if !isAlpha(next) {
				return nil, nil, errAt("Expected alpha char as first in prop", s)
			}
			r, key := pushIdentRest(s, next)
			r, v, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			props = append(props, ast.Prop{Key: key, Value: v})
			s = r
		}
	}
}

// closeScript matches "</script>" with whitespace allowed around each part.
func closeScript(s []byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, '<')
	if !ok {
		return nil, false
	}
	s, ok = matchByteSkipSpace(s, '/')
	if !ok {
		return nil, false
	}
	return closeTag6(s, 's', 'c', 'r', 'i', 'p', 't')
}

// closeStyle matches "</style>" with whitespace allowed around each part.
func closeStyle(s []byte) ([]byte, bool) {
	s, ok := matchByteSkipSpace(s, '<')
	if !ok {
		return nil, false
	}
	s, ok = matchByteSkipSpace(s, '/')
	if !ok {
		return nil, false
	}
	return closeTag5(s, 's', 't', 'y', 'l', 'e')
}

// parseScriptTag parses a script element positioned after "<script". Only
// src, defer, async and type are accepted. A script whose opening tag is
// directly followed by its closing tag references an external source.
func parseScriptTag(s []byte) ([]byte, ast.Node, error) {
	if r, ok := matchByteSkipSpace(s, '>'); ok {
		r, body := parseQuotableContent(r)
		if r, ok := closeScript(r); ok {
			return r, &ast.Script{Body: body}, nil
		}
		return nil, nil, errAt("Expecting end tag", r)
	}

	var (
		src      *string
		deferred bool
		async    bool
		typ      *string
	)
	for {
		s = stripSpace(s)
		if err := lenGt(s, 0); err != nil {
			return nil, nil, err
		}
		next := s[0]
		s = s[1:]
		switch next {
		case 's':
			r, ok := matchIdent2(s, 'r', 'c')
			if !ok {
				return nil, nil, errAt("Unrecognized script attribute", s)
			}
			r, v, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			src, s = v, r
		case 'd':
			r, ok := matchIdent4(s, 'e', 'f', 'e', 'r')
			if !ok {
				return nil, nil, errAt("Unrecognized script attribute", s)
			}
			r, _, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			deferred, s = true, r
		case 'a':
			r, ok := matchIdent4(s, 's', 'y', 'n', 'c')
			if !ok {
				return nil, nil, errAt("Unrecognized script attribute", s)
			}
			r, _, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			async, s = true, r
		case 't':
			r, ok := matchIdent3(s, 'y', 'p', 'e')
			if !ok {
				return nil, nil, errAt("Unrecognized script attribute", s)
			}
			r, v, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			typ, s = v, r
		case '>':
			if r, ok := closeScript(s); ok {
				if src == nil {
					return nil, nil, errAt("Src attribute expected", s)
				}
				return r, &ast.ScriptSrc{Src: *src, Defer: deferred, Async: async, Type: typ}, nil
			}
			r, body := parseQuotableContent(stripSpace(s))
			if r, ok := closeScript(r); ok {
				return r, &ast.Script{Body: body, Type: typ}, nil
			}
			return nil, nil, errAt("Expecting end tag", r)
		case '/':
			r, ok := matchByteSkipSpace(s, '>')
			if !ok {
				return nil, nil, errAt("Expecting closing tag", s)
			}
			if src == nil {
				return nil, nil, errAt("Script src required", s)
			}
			return r, &ast.ScriptSrc{Src: *src, Defer: deferred, Async: async, Type: typ}, nil
		default:
			return nil, nil, errAt("Unrecognized script attribute", s)
		}
	}
}

// parseStyleTag parses a style element positioned after "<style". Only a type
// attribute is accepted. Leading whitespace of the body is stripped.
func parseStyleTag(s []byte) ([]byte, ast.Node, error) {
	if r, ok := matchByteSkipSpace(s, '>'); ok {
		r, body := parseQuotableContent(stripSpace(r))
		if r, ok := closeStyle(r); ok {
			return r, &ast.Style{Body: body}, nil
		}
		return nil, nil, errAt("Expecting style end tag", r)
	}

	for {
		s = stripSpace(s)
		if err := lenGt(s, 0); err != nil {
			return nil, nil, err
		}
		next := s[0]
		s = s[1:]
		switch next {
		case 't':
			r, ok := matchIdent3(s, 'y', 'p', 'e')
			if !ok {
				return nil, nil, errAt("Unrecognized style attribute", s)
			}
			// The type is accepted but not kept.
			r, _, err := parseAttrValue(r)
			if err != nil {
				return nil, nil, err
			}
			s = r
		case '>':
			r, body := parseQuotableContent(stripSpace(s))
			if r, ok := closeStyle(r); ok {
				return r, &ast.Style{Body: body}, nil
			}
			return nil, nil, errAt("Expecting style end tag", r)
		case '/':
			return nil, nil, errAt("Unexpected / in style tag", s)
		default:
			return nil, nil, errAt("Unrecognized attribute in style tag", s)
		}
	}
}

// parseDoctype consumes a declaration through '>', positioned after "<!".
func parseDoctype(s []byte) ([]byte, ast.Node, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '>' {
			return s[i+1:], &ast.Void{Name: ast.Doctype}, nil
		}
	}
	return nil, nil, errAt("Failed to parse doctype", s)
}
