package parser

import (
	"fmt"
	"strings"
)

// aroundMax bounds the input context kept in a ParseError.
const aroundMax = 100

// ParseError is the only error the parser returns for malformed input. The
// parse stops at the first one; there is no recovery.
type ParseError struct {
	Msg string
	// Around holds up to 100 bytes of the unparsed input at the failure point.
	Around string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s, around: %s", e.Msg, e.Around)
}

func errAt(msg string, s []byte) error {
	return &ParseError{Msg: msg, Around: around(s)}
}

func errAtf(s []byte, format string, args ...interface{}) error {
	return errAt(fmt.Sprintf(format, args...), s)
}

func around(s []byte) string {
	if len(s) > aroundMax {
		s = s[:aroundMax]
	}
	return strings.ToValidUTF8(string(s), "\uFFFD")
}

// lenGt requires more than l bytes of input.
func lenGt(s []byte, l int) error {
	if len(s) > l {
		return nil
	}
	return errAtf(s, "Required length to be greater than %d", l)
}
