package screen

import "strings"

// Attr is a cell attribute bitfield.
type Attr uint16

const (
	AttrInverse Attr = 1 << iota
	AttrUnderline
	AttrBold
	AttrBlink
	// AttrBgColor is set when a background color has been assigned.
	AttrBgColor
	// AttrFgColor is set when a foreground color has been assigned.
	AttrFgColor
	// AttrProtected marks a character that cannot be erased.
	AttrProtected
	// AttrCharDrawn marks a cell a character has been drawn into, which
	// distinguishes drawn blanks from never-touched cells.
	AttrCharDrawn
	AttrFaint
	AttrItalic
	AttrStrikeout
	AttrDoubleUnderline
	AttrInvisible
)

// AttrNone is the empty attribute set.
const AttrNone Attr = 0

// attrSGR is the mask of attributes controlled by SGR sequences; AttrCharDrawn
// is bookkeeping, not a rendition, and survives SGR 0.
const attrSGR = AttrInverse | AttrUnderline | AttrBold | AttrBlink |
	AttrBgColor | AttrFgColor | AttrFaint | AttrItalic |
	AttrStrikeout | AttrDoubleUnderline | AttrInvisible

var attrLabels = []struct {
	bit  Attr
	name string
}{
	{AttrInverse, "inverse"},
	{AttrUnderline, "underline"},
	{AttrBold, "bold"},
	{AttrBlink, "blink"},
	{AttrBgColor, "bg_color"},
	{AttrFgColor, "fg_color"},
	{AttrProtected, "protected"},
	{AttrCharDrawn, "chardrawn"},
	{AttrFaint, "faint"},
	{AttrItalic, "italic"},
	{AttrStrikeout, "strikeout"},
	{AttrDoubleUnderline, "double-underline"},
	{AttrInvisible, "invisible"},
}

// String renders the set as a pipe-joined flag list, or "none" for the empty
// set. Used in test failure messages.
func (a Attr) String() string {
	if a == AttrNone {
		return "none"
	}
	var parts []string
	for _, l := range attrLabels {
		if a&l.bit != 0 {
			parts = append(parts, l.name)
		}
	}
	return strings.Join(parts, "|")
}
