package screen

import "unicode/utf8"

// parserState tracks the escape-sequence decoder between Advance calls, so a
// sequence split across two input batches is handled the same as one batch.
type parserState struct {
	mode    parserMode
	params  []int
	cur     int
	hasCur  bool
	private bool

	// pending holds an incomplete UTF-8 sequence.
	pending []byte
}

type parserMode int

const (
	modeGround parserMode = iota
	modeEscape
	modeCSI
)

// Advance feeds raw terminal output to the screen. Printable characters are
// drawn at the cursor with the current pen attributes; control characters and
// the supported CSI sequences (cursor movement, erase, SGR) update state.
// Unsupported sequences are consumed and ignored.
func (s *Screen) Advance(data []byte) {
	for _, b := range data {
		switch s.parser.mode {
		case modeGround:
			s.advanceGround(b)
		case modeEscape:
			s.advanceEscape(b)
		case modeCSI:
			s.advanceCSI(b)
		}
	}
}

func (s *Screen) advanceGround(b byte) {
	if len(s.parser.pending) > 0 {
		s.parser.pending = append(s.parser.pending, b)
		if !utf8.FullRune(s.parser.pending) && len(s.parser.pending) < utf8.UTFMax {
			return
		}
		r, _ := utf8.DecodeRune(s.parser.pending)
		s.parser.pending = s.parser.pending[:0]
		if r != utf8.RuneError {
			s.place(r)
		}
		return
	}

	switch {
	case b == 0x08: // BS
		if s.cursorX > 0 {
			s.cursorX--
		}
	case b == 0x09: // HT, fixed stops every 8 columns
		s.cursorX = clamp((s.cursorX/8+1)*8, 0, s.width-1)
	case b == 0x0a: // LF
		s.lineFeed()
	case b == 0x0d: // CR
		s.cursorX = 0
	case b == 0x1b: // ESC
		s.parser.mode = modeEscape
	case b < 0x20 || b == 0x7f:
		// Other C0 controls and DEL are ignored.
	case b < utf8.RuneSelf:
		s.place(rune(b))
	default:
		s.parser.pending = append(s.parser.pending, b)
	}
}

func (s *Screen) advanceEscape(b byte) {
	switch b {
	case '[':
		s.parser.mode = modeCSI
		s.parser.params = s.parser.params[:0]
		s.parser.cur = 0
		s.parser.hasCur = false
		s.parser.private = false
	default:
		// Non-CSI escapes are not modeled.
		s.parser.mode = modeGround
	}
}

func (s *Screen) advanceCSI(b byte) {
	switch {
	case b >= '0' && b <= '9':
		s.parser.cur = s.parser.cur*10 + int(b-'0')
		s.parser.hasCur = true
	case b == ';':
		s.parser.params = append(s.parser.params, s.parser.cur)
		s.parser.cur = 0
		s.parser.hasCur = false
	case b == '?':
		s.parser.private = true
	case b >= 0x40 && b <= 0x7e:
		if s.parser.hasCur || len(s.parser.params) > 0 {
			s.parser.params = append(s.parser.params, s.parser.cur)
		}
		if !s.parser.private {
			s.dispatchCSI(b, s.parser.params)
		}
		s.parser.mode = modeGround
	default:
		// Intermediate bytes are consumed without effect.
	}
}

// param returns the i-th parameter, or def when absent or zero.
func param(params []int, i, def int) int {
	if i >= len(params) || params[i] == 0 {
		return def
	}
	return params[i]
}

func (s *Screen) dispatchCSI(final byte, params []int) {
	switch final {
	case 'A': // CUU
		s.cursorY = clamp(s.cursorY-param(params, 0, 1), 0, s.height-1)
	case 'B': // CUD
		s.cursorY = clamp(s.cursorY+param(params, 0, 1), 0, s.height-1)
	case 'C': // CUF
		s.cursorX = clamp(s.cursorX+param(params, 0, 1), 0, s.width-1)
	case 'D': // CUB
		s.cursorX = clamp(s.cursorX-param(params, 0, 1), 0, s.width-1)
	case 'H', 'f': // CUP / HVP, 1-based row;col
		s.cursorY = clamp(param(params, 0, 1)-1, 0, s.height-1)
		s.cursorX = clamp(param(params, 1, 1)-1, 0, s.width-1)
	case 'J': // ED
		pos := s.cursorY*s.width + s.cursorX
		switch param(params, 0, 0) {
		case 0:
			s.eraseRange(pos, len(s.cells))
		case 1:
			s.eraseRange(0, pos+1)
		case 2:
			s.eraseRange(0, len(s.cells))
		}
	case 'K': // EL
		row := s.cursorY * s.width
		switch param(params, 0, 0) {
		case 0:
			s.eraseRange(row+s.cursorX, row+s.width)
		case 1:
			s.eraseRange(row, row+s.cursorX+1)
		case 2:
			s.eraseRange(row, row+s.width)
		}
	case 'm': // SGR
		if len(params) == 0 {
			params = []int{0}
		}
		for _, p := range params {
			s.applySGR(p)
		}
	}
}

func (s *Screen) applySGR(code int) {
	switch {
	case code == 0:
		s.pen &^= attrSGR
	case code == 1:
		s.pen |= AttrBold
	case code == 2:
		s.pen |= AttrFaint
	case code == 3:
		s.pen |= AttrItalic
	case code == 4:
		s.pen |= AttrUnderline
	case code == 5:
		s.pen |= AttrBlink
	case code == 7:
		s.pen |= AttrInverse
	case code == 8:
		s.pen |= AttrInvisible
	case code == 9:
		s.pen |= AttrStrikeout
	case code == 21:
		s.pen |= AttrDoubleUnderline
	case code == 22:
		s.pen &^= AttrBold | AttrFaint
	case code == 23:
		s.pen &^= AttrItalic
	case code == 24:
		s.pen &^= AttrUnderline | AttrDoubleUnderline
	case code == 25:
		s.pen &^= AttrBlink
	case code == 27:
		s.pen &^= AttrInverse
	case code == 28:
		s.pen &^= AttrInvisible
	case code == 29:
		s.pen &^= AttrStrikeout
	case code >= 30 && code <= 37:
		s.pen |= AttrFgColor
	case code == 39:
		s.pen &^= AttrFgColor
	case code >= 40 && code <= 47:
		s.pen |= AttrBgColor
	case code == 49:
		s.pen &^= AttrBgColor
	}
}
