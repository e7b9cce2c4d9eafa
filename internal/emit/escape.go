package emit

import (
	"fmt"
	"strings"
)

// escapeRune renders c for use inside a single-quoted rune literal. A
// backslash doubles, a single quote gains a backslash, everything else
// passes through verbatim.
func escapeRune(c rune) string {
	switch c {
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	default:
		return string(c)
	}
}

// quoteBytes renders an input byte sequence as a double-quoted Go string
// literal, quotes included. Printable ASCII passes through; quote and
// backslash are escaped; common controls use their named escapes; every
// other byte is a hex escape. Hex escapes keep arbitrary injected bytes
// literal-safe instead of trusting the definition file to contain only
// printable input.
func quoteBytes(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		switch {
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
