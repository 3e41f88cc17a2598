// Package crosscheck compares the elements found by the parser with those
// found by the golang.org/x/net/html tokenizer on the same input.
package crosscheck

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/htmlast/parser/ast"
)

// label names an element as "tag" or "tag#id".
func label(name, id string) string {
	if id == "" {
		return name
	}
	return name + "#" + id
}

func tagLabel(t ast.Tag) string {
	id, _ := ast.Lookup(t.Attributes(), "id")
	return label(t.TagName(), html.UnescapeString(id))
}

// Elements lists the lowercased tag names of nodes in document order, with
// the id appended when one is set. The doctype, text and comments are not
// elements.
func Elements(nodes []ast.Node) []string {
	var names []string
	ast.Inspect(nodes, func(n ast.Node) bool {
		switch t := n.(type) {
		case *ast.Void:
			if t.Name != ast.Doctype {
				names = append(names, tagLabel(t))
			}
		case ast.Tag:
			names = append(names, tagLabel(t))
		case *ast.Component:
			names = append(names, strings.ToLower(t.Name))
		case *ast.Script, *ast.ScriptSrc:
			names = append(names, "script")
		case *ast.Style:
			names = append(names, "style")
		}
		return true
	})
	return names
}

// Reference lists the start tags the x/net/html tokenizer sees in b, labeled
// like Elements.
func Reference(b []byte) ([]string, error) {
	var names []string
	z := html.NewTokenizer(bytes.NewReader(b))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if z.Err() == io.EOF {
				return names, nil
			}
			return nil, errors.Wrap(z.Err(), "tokenizing")
		case html.StartTagToken, html.SelfClosingTagToken:
			name, more := z.TagName()
			var id string
			for more {
				var key, val []byte
				key, val, more = z.TagAttr()
				if string(key) == "id" && id == "" {
					id = string(val)
				}
			}
			names = append(names, label(string(name), id))
		}
	}
}

// Report is the outcome of Compare. Mismatch is the index of the first
// differing element, or -1 when the lists agree.
type Report struct {
	Ours     []string `json:"ours"`
	Theirs   []string `json:"theirs"`
	Mismatch int      `json:"mismatch"`
}

func (r Report) OK() bool {
	return r.Mismatch < 0
}

// Compare checks the element sequence of nodes, parsed from b, against the
// reference tokenizer.
func Compare(b []byte, nodes []ast.Node) (Report, error) {
	theirs, err := Reference(b)
	if err != nil {
		return Report{}, err
	}
	r := Report{Ours: Elements(nodes), Theirs: theirs, Mismatch: -1}
	n := len(r.Ours)
	if len(r.Theirs) < n {
		n = len(r.Theirs)
	}
	for i := 0; i < n; i++ {
		if r.Ours[i] != r.Theirs[i] {
			r.Mismatch = i
			return r, nil
		}
	}
	if len(r.Ours) != len(r.Theirs) {
		r.Mismatch = n
	}
	return r, nil
}
