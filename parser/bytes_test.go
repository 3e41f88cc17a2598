package parser

import (
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

type matchTestcase struct {
	in   string
	rest string
	ok   bool
}

func runMatchTests(t *testing.T, tests []matchTestcase, f func([]byte) ([]byte, bool)) {
	t.Helper()
	for _, tt := range tests {
		rest, ok := f([]byte(tt.in))
		assert.Equal(t, tt.ok, ok, tt.in)
		if tt.ok {
			assert.Equal(t, tt.rest, string(rest), tt.in)
		}
	}
}

func TestMatchByteSkipSpace(t *testing.T) {
	runMatchTests(t, []matchTestcase{
		{">", "", true},
		{"  \n>x", "x", true},
		{"x>", "", false},
		// Whitespace is skipped once only.
		{" x >", "", false},
		{"", "", false},
	}, func(s []byte) ([]byte, bool) { return matchByteSkipSpace(s, '>') })
}

func TestMatchLiteralSkipSpace(t *testing.T) {
	runMatchTests(t, []matchTestcase{
		{"Card>", ">", true},
		{"   Card >", " >", true},
		{"Car", "", false},
		{"Cart>", "", false},
	}, func(s []byte) ([]byte, bool) { return matchLiteralSkipSpace(s, "Card") })
}

func TestMatchIdent(t *testing.T) {
	runMatchTests(t, []matchTestcase{
		{"iv>", ">", true},
		{"iv ", " ", true},
		{"iv/", "/", true},
		// A following identifier byte means a longer name.
		{"ivx>", "", false},
		{"iv->", "", false},
		{"iv1", "", false},
		// One byte of lookahead is required.
		{"iv", "", false},
	}, func(s []byte) ([]byte, bool) { return matchIdent2(s, 'i', 'v') })

	runMatchTests(t, []matchTestcase{
		{"nclick=", "=", true},
		{"nclicks=", "", false},
	}, func(s []byte) ([]byte, bool) { return matchIdent6(s, 'n', 'c', 'l', 'i', 'c', 'k') })
}

func TestCloseTag(t *testing.T) {
	runMatchTests(t, []matchTestcase{
		{"div>rest", "rest", true},
		{" div >rest", "rest", true},
		{"div", "", false},
		{"dvi>", "", false},
		{"divs>", "", false},
	}, func(s []byte) ([]byte, bool) { return closeTag3(s, 'd', 'i', 'v') })

	runMatchTests(t, []matchTestcase{
		{"article>", "", true},
		{"articl>", "", false},
	}, func(s []byte) ([]byte, bool) { return closeTag7(s, 'a', 'r', 't', 'i', 'c', 'l', 'e') })
}

func TestPushIdentRest(t *testing.T) {
	rest, name := pushIdentRest([]byte("ata-x1=2"), 'd')
	assert.Equal(t, "data-x1", name)
	assert.Equal(t, "=2", string(rest))

	rest, name = pushIdentRest([]byte(">"), 'p')
	assert.Equal(t, "p", name)
	assert.Equal(t, ">", string(rest))
}

func TestDecodeRune(t *testing.T) {
	tests := []struct {
		in   string
		r    rune
		size int
	}{
		{"", utf8.RuneError, 0},
		{"a", 'a', 1},
		{"é", 'é', 2},
		{"€", '€', 3},
		{"😀", '😀', 4},
		{"\xff", utf8.RuneError, 1},
		{"\xc3", utf8.RuneError, 1},
		{"\xc3\x28", utf8.RuneError, 1},
		{"\xc0\x80", utf8.RuneError, 1},
		{"\xe0\x80\xaf", utf8.RuneError, 1},
		{"\xed\xa0\x80", utf8.RuneError, 1},
		{"\xf4\x90\x80\x80", utf8.RuneError, 1},
	}
	for _, tt := range tests {
		r, size := decodeRune([]byte(tt.in))
		assert.Equal(t, tt.r, r, "%q", tt.in)
		assert.Equal(t, tt.size, size, "%q", tt.in)
	}
}

func TestDecodeRuneProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("matches unicode/utf8 on any input", prop.ForAll(
		func(s string) bool {
			b := []byte(s)
			for len(b) > 0 {
				r1, n1 := decodeRune(b)
				r2, n2 := utf8.DecodeRune(b)
				if r1 != r2 || n1 != n2 {
					return false
				}
				b = b[n1:]
			}
			return true
		},
		gen.OneGenOf(gen.AnyString(), gen.SliceOf(gen.UInt8()).Map(func(b []uint8) string {
			return string(b)
		})),
	))
	properties.TestingRun(t)
}

func TestParseComment(t *testing.T) {
	rest, data, err := parseComment([]byte(" a -- b -->tail"))
	assert.NoError(t, err)
	assert.Equal(t, " a -- b ", data)
	assert.Equal(t, "tail", string(rest))

	_, _, err = parseComment([]byte("->"))
	assert.Error(t, err)
}

func TestParseQuotableContent(t *testing.T) {
	tests := []struct {
		in   string
		body string
		rest string
	}{
		{"a</script>", "a", "</script>"},
		{"a < /style>", "a ", "< /style>"},
		{"x = '</b>';</script>", "x = '</b>';", "</script>"},
		{`x = "\"</b>";</script>`, `x = "\"</b>";`, "</script>"},
		{"x <// y</script>", "x <// y", "</script>"},
		{"unterminated 'quote</script>", "unterminated 'quote</script>", ""},
		{"no end", "no end", ""},
	}
	for _, tt := range tests {
		rest, body := parseQuotableContent([]byte(tt.in))
		assert.Equal(t, tt.body, body, tt.in)
		assert.Equal(t, tt.rest, string(rest), tt.in)
	}
}
