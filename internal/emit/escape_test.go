package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeRune(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want string
	}{
		{"backslash doubles", '\\', `\\`},
		{"quote escaped", '\'', `\'`},
		{"letter verbatim", 'H', "H"},
		{"digit verbatim", '7', "7"},
		{"space verbatim", ' ', " "},
		{"unicode verbatim", 'é', "é"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, escapeRune(tt.in))
		})
	}
}

func TestQuoteBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain text", []byte("hello"), `"hello"`},
		{"empty", nil, `""`},
		{"quote", []byte(`say "hi"`), `"say \"hi\""`},
		{"backslash", []byte(`a\b`), `"a\\b"`},
		{"newline", []byte("a\nb"), `"a\nb"`},
		{"carriage return", []byte("a\r"), `"a\r"`},
		{"tab", []byte("a\tb"), `"a\tb"`},
		{"escape byte", []byte{0x1b, '[', 'H'}, `"\x1b[H"`},
		{"high byte", []byte{0xff}, `"\xff"`},
		{"nul", []byte{0x00}, `"\x00"`},
		{"del", []byte{0x7f}, `"\x7f"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quoteBytes(tt.in))
		})
	}
}
