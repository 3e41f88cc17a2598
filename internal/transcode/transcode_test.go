package transcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytes(t *testing.T) {
	tests := []struct {
		charset string
		in      string
		out     string
	}{
		{"", "café", "café"},
		{"UTF-8", "café", "café"},
		{"latin1", "caf\xe9", "café"},
		{"windows-1252", "\x93quoted\x94", "“quoted”"},
		{"shift_jis", "\x82\xa0", "あ"},
	}
	for _, tt := range tests {
		out, err := Bytes([]byte(tt.in), tt.charset)
		require.NoError(t, err, tt.charset)
		assert.Equal(t, tt.out, string(out), tt.charset)
	}
}

func TestUnknownCharset(t *testing.T) {
	_, err := Bytes([]byte("x"), "klingon")
	assert.Error(t, err)
}
