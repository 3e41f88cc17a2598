// Package parser turns a restricted, well-formed dialect of HTML into an
// ast.Node tree. The input is consumed through a byte cursor and the first
// error ends the parse.
package parser

import (
	"io"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlast/parser/ast"
)

// ErrTooLarge is returned by Parse when the input exceeds the configured
// maximum size.
var ErrTooLarge = errors.New("input too large")

type Parser struct {
	log      logrus.FieldLogger
	maxBytes int64
}

type Option func(*Parser)

func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Parser) {
		if l != nil {
			p.log = l
		}
	}
}

// WithMaxBytes bounds the input accepted by Parse. Zero means no limit.
func WithMaxBytes(n int64) Option {
	return func(p *Parser) {
		p.maxBytes = n
	}
}

func NewParser(opts ...Option) *Parser {
	l := logrus.New()
	l.SetOutput(io.Discard)
	p := &Parser{log: l}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Parse reads all of r and parses it as a document.
func (p *Parser) Parse(r io.Reader) ([]ast.Node, error) {
	if p.maxBytes > 0 {
		r = io.LimitReader(r, p.maxBytes+1)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	if p.maxBytes > 0 && int64(len(b)) > p.maxBytes {
		return nil, errors.Wrapf(ErrTooLarge, "limit is %d bytes", p.maxBytes)
	}
	return p.ParseBytes(b)
}

// ParseBytes parses b as a document. Errors are always *ParseError.
func (p *Parser) ParseBytes(b []byte) ([]ast.Node, error) {
	start := time.Now()
	nodes, err := ParseDoc(b)
	fields := logrus.Fields{
		"bytes":   len(b),
		"elapsed": time.Since(start),
	}
	if err != nil {
		p.log.WithFields(fields).WithError(err).Debug("parse failed")
		return nil, err
	}
	fields["nodes"] = ast.Count(nodes)
	p.log.WithFields(fields).Debug("parsed document")
	return nodes, nil
}

// ParseDoc parses a whole document: an optional leading doctype followed by
// a sequence of nodes. Input left over after the top level, which can only
// be a stray closing tag, is an error. Empty input yields an empty list.
func ParseDoc(b []byte) ([]ast.Node, error) {
	s := stripSpace(b)
	nodes := []ast.Node{}
	if len(s) == 0 {
		return nodes, nil
	}
	if len(s) > 3 && s[0] == '<' && s[1] == '!' {
		if _, comment := matchLiteral(s[2:], "--"); !comment {
			r, doctype, err := parseDoctype(s[2:])
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, doctype)
			s = r
		}
	}
	s, children, err := parseChildren(s)
	if err != nil {
		return nil, err
	}
	if len(s) > 0 {
		return nil, errAt("Unexpected closing tag", s)
	}
	return append(nodes, children...), nil
}

// parseChildren reads sibling nodes until the input runs out or a closing
// tag starts. In the latter case the cursor is returned positioned after
// "</" so the caller can match its own name.
func parseChildren(s []byte) ([]byte, []ast.Node, error) {
	var nodes []ast.Node
	for {
		s = stripSpace(s)
		if len(s) == 0 {
			return s, nodes, nil
		}
		if s[0] != '<' {
			r, text := parseText(s)
			nodes = append(nodes, &ast.Text{Data: text})
			s = r
			continue
		}
		if len(s) < 3 {
			return nil, nil, errAt("Unexpected end of input in tag", s)
		}

		s = s[1:]
		if isSpace(s[0]) {
			s = stripSpace(s)
			if err := lenGt(s, 0); err != nil {
				return nil, nil, err
			}
		}

		var (
			n   ast.Node
			err error
		)
		switch c := s[0]; {
		case isUpper(c):
			s, n, err = parseComponent(s)
		case c == '/':
			if len(s) == 1 {
				return nil, nil, errAt("Unexpected end of input in tag", s)
			}
			return s[1:], nodes, nil
		case c == '!':
			r, ok := matchLiteral(s[1:], "--")
			if !ok {
				return nil, nil, errAt("Unrecognized <!", s)
			}
			var data string
			s, data, err = parseComment(r)
			n = &ast.Comment{Data: data}
		case c == 's':
			if r, ok := matchIdent5(s[1:], 'c', 'r', 'i', 'p', 't'); ok {
				s, n, err = parseScriptTag(r)
			} else if r, ok := matchIdent4(s[1:], 't', 'y', 'l', 'e'); ok {
				s, n, err = parseStyleTag(r)
			} else {
				s, n, err = parseTag(s)
			}
		case !isIdentChar(c):
			return nil, nil, errAt("Expected tag name", s)
		default:
			s, n, err = parseTag(s)
		}
		if err != nil {
			return nil, nil, err
		}
		nodes = append(nodes, n)
	}
}
