package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDimensions(t *testing.T) {
	s := New(80, 24)
	assert.Equal(t, 80, s.Width())
	assert.Equal(t, 24, s.Height())
	assert.Equal(t, 0, s.CursorX())
	assert.Equal(t, 0, s.CursorY())
}

func TestNewRejectsBadDimensions(t *testing.T) {
	assert.Panics(t, func() { New(0, 24) })
	assert.Panics(t, func() { New(80, -1) })
}

func TestSetCursorClamps(t *testing.T) {
	s := New(10, 5)
	s.SetCursor(3, 2)
	assert.Equal(t, 3, s.CursorX())
	assert.Equal(t, 2, s.CursorY())

	s.SetCursor(99, 99)
	assert.Equal(t, 9, s.CursorX())
	assert.Equal(t, 4, s.CursorY())

	s.SetCursor(-1, -1)
	assert.Equal(t, 0, s.CursorX())
	assert.Equal(t, 0, s.CursorY())
}

func TestUndrawnCellsReadAsBlank(t *testing.T) {
	s := New(4, 2)
	c := s.Cell(3, 1)
	assert.Equal(t, ' ', c.Rune())
	assert.Equal(t, AttrNone, c.Attrs())
	assert.False(t, c.Drawn())
}

func TestCellPanicsOutOfBounds(t *testing.T) {
	s := New(4, 2)
	assert.Panics(t, func() { s.Cell(4, 0) })
	assert.Panics(t, func() { s.Cell(0, 2) })
	assert.Panics(t, func() { s.Cell(-1, 0) })
}

func TestPlaceAndWrap(t *testing.T) {
	s := New(3, 2)
	s.Advance([]byte("abcd"))

	assert.Equal(t, "abc", s.Row(0))
	assert.Equal(t, "d", s.Row(1))
	assert.Equal(t, 1, s.CursorX())
	assert.Equal(t, 1, s.CursorY())
	assert.True(t, s.Cell(0, 0).Drawn())
}

func TestScrollAtBottom(t *testing.T) {
	s := New(2, 2)
	s.Advance([]byte("abcd"))

	// Filling the bottom row wraps and scrolls "ab" out.
	assert.Equal(t, "cd", s.Row(0))
	assert.Equal(t, "", s.Row(1))
	assert.Equal(t, 0, s.CursorX())
	assert.Equal(t, 1, s.CursorY())
}

func TestRowStripsUndrawnTail(t *testing.T) {
	s := New(8, 2)
	s.Advance([]byte("hi"))
	require.Equal(t, "hi", s.Row(0))
	assert.Equal(t, "", s.Row(1))
	assert.Equal(t, "", s.Row(-1))
}

func TestAttrString(t *testing.T) {
	assert.Equal(t, "none", AttrNone.String())
	assert.Equal(t, "bold", AttrBold.String())
	assert.Equal(t, "underline|bold", (AttrBold | AttrUnderline).String())
}
