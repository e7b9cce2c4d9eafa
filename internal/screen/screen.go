// Package screen is a fixed-size terminal screen model. It is the fixture
// generated tests run against: tests construct a screen, feed it raw bytes,
// and assert on dimensions, cursor position, cell contents, and cell
// attributes.
package screen

// Cell is one character position on the screen.
type Cell struct {
	r     rune
	attrs Attr
}

// Rune returns the cell's code point. Cells nothing has been drawn into
// report a space.
func (c Cell) Rune() rune {
	if c.r == 0 {
		return ' '
	}
	return c.r
}

// Attrs returns the cell's attribute set.
func (c Cell) Attrs() Attr {
	return c.attrs
}

// Drawn reports whether a character has been drawn into the cell.
func (c Cell) Drawn() bool {
	return c.attrs&AttrCharDrawn != 0
}

// Screen is a fixed-size grid of cells with a cursor and the pen attributes
// applied to subsequently drawn characters. It is not safe for concurrent
// use; generated tests drive it from a single goroutine.
type Screen struct {
	width  int
	height int

	cursorX int
	cursorY int

	// pen is applied to every drawn character, AttrCharDrawn included.
	pen Attr

	cells []Cell // row-major

	parser parserState
}

// New creates a screen of the given dimensions. Width and height must be
// positive; the corpus validates dimensions before generation, so this is a
// programming error guard.
func New(width, height int) *Screen {
	if width <= 0 || height <= 0 {
		panic("screen: dimensions must be positive")
	}
	return &Screen{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// CursorX returns the cursor column.
func (s *Screen) CursorX() int { return s.cursorX }

// CursorY returns the cursor row.
func (s *Screen) CursorY() int { return s.cursorY }

// SetCursor places the cursor directly, clamped to the screen bounds. This
// bypasses input-driven cursor movement.
func (s *Screen) SetCursor(x, y int) {
	s.cursorX = clamp(x, 0, s.width-1)
	s.cursorY = clamp(y, 0, s.height-1)
}

// Cell returns the cell at (x, y). Panics when the coordinates are out of
// bounds; generated tests guard every dereference with bounds assertions.
func (s *Screen) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic("screen: cell coordinates out of bounds")
	}
	return s.cells[y*s.width+x]
}

// Row returns the runes of row y as a string, trailing undrawn cells
// stripped. Convenience for debugging and fixture tests.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return ""
	}
	end := s.width
	for end > 0 && !s.cells[y*s.width+end-1].Drawn() {
		end--
	}
	out := make([]rune, 0, end)
	for x := 0; x < end; x++ {
		out = append(out, s.cells[y*s.width+x].Rune())
	}
	return string(out)
}

// place draws r at the cursor and advances it, wrapping at the right edge
// and scrolling past the bottom row.
func (s *Screen) place(r rune) {
	s.cells[s.cursorY*s.width+s.cursorX] = Cell{r: r, attrs: s.pen | AttrCharDrawn}
	s.cursorX++
	if s.cursorX >= s.width {
		s.cursorX = 0
		s.lineFeed()
	}
}

// lineFeed moves the cursor down one row, scrolling the grid up at the
// bottom edge.
func (s *Screen) lineFeed() {
	if s.cursorY < s.height-1 {
		s.cursorY++
		return
	}
	copy(s.cells, s.cells[s.width:])
	tail := s.cells[(s.height-1)*s.width:]
	for i := range tail {
		tail[i] = Cell{}
	}
}

// eraseRange clears cells [from, to) to undrawn blanks.
func (s *Screen) eraseRange(from, to int) {
	if from < 0 {
		from = 0
	}
	if to > len(s.cells) {
		to = len(s.cells)
	}
	for i := from; i < to; i++ {
		if s.cells[i].attrs&AttrProtected != 0 {
			continue
		}
		s.cells[i] = Cell{}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
