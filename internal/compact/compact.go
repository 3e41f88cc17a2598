// Package compact minifies rendered markup. The options keep end tags,
// document tags, quotes and comments, but the minifier still lowercases tag
// names, drops empty attributes and decodes entities, so Nodes checks the
// result against the tree it came from.
package compact

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	"github.com/heathj/htmlast/parser"
	"github.com/heathj/htmlast/parser/ast"
)

const mediaType = "text/html"

var (
	minifier *minify.M
	once     sync.Once
)

func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add(mediaType, &html.Minifier{
			KeepComments:        true,
			KeepDocumentTags:    true,
			KeepEndTags:         true,
			KeepQuotes:          true,
			KeepDefaultAttrVals: true,
		})
	})
	return minifier
}

// HTML minifies b. The output is not guaranteed to parse to the same tree.
func HTML(b []byte) ([]byte, error) {
	out, err := getMinifier().Bytes(mediaType, b)
	if err != nil {
		return nil, errors.Wrap(err, "minifying html")
	}
	return out, nil
}

// Nodes renders nodes and minifies the markup. If the minified markup does
// not parse back to the same tree, the plain rendering is returned and
// minified is false.
func Nodes(nodes []ast.Node) (out []byte, minified bool, err error) {
	plain := []byte(ast.Render(nodes))
	small, err := HTML(plain)
	if err != nil {
		return nil, false, err
	}
	back, err := parser.ParseDoc(small)
	if err != nil || ast.Dump(back) != ast.Dump(nodes) {
		return plain, false, nil
	}
	return small, true, nil
}
