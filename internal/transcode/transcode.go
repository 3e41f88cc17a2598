// Package transcode converts input in a legacy character encoding to UTF-8
// before it reaches the parser.
package transcode

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// isUTF8 reports whether charset needs no conversion.
func isUTF8(charset string) bool {
	switch strings.ToLower(strings.TrimSpace(charset)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

// Reader returns r decoded from charset, a WHATWG encoding label such as
// "windows-1252" or "shift_jis".
func Reader(r io.Reader, charset string) (io.Reader, error) {
	if isUTF8(charset) {
		return r, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, errors.Wrapf(err, "charset %q", charset)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// Bytes decodes b from charset.
func Bytes(b []byte, charset string) ([]byte, error) {
	r, err := Reader(bytes.NewReader(b), charset)
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "decoding input")
	}
	return out, nil
}
