package model

import "fmt"

// Attr names one boolean cell attribute. The vocabulary is fixed and matches
// the emulator's attribute bitfield, in bit order.
type Attr int

const (
	AttrInverse Attr = iota
	AttrUnderline
	AttrBold
	AttrBlink
	AttrBgColor
	AttrFgColor
	AttrProtected
	AttrCharDrawn
	AttrFaint
	AttrItalic
	AttrStrikeout
	AttrDoubleUnderline
	AttrInvisible

	attrCount
)

// attrNames is the definition-file spelling of each attribute, indexed by Attr.
var attrNames = [attrCount]string{
	AttrInverse:         "inverse",
	AttrUnderline:       "underline",
	AttrBold:            "bold",
	AttrBlink:           "blink",
	AttrBgColor:         "bg_color",
	AttrFgColor:         "fg_color",
	AttrProtected:       "protected",
	AttrCharDrawn:       "chardrawn",
	AttrFaint:           "faint",
	AttrItalic:          "italic",
	AttrStrikeout:       "strikeout",
	AttrDoubleUnderline: "double-underline",
	AttrInvisible:       "invisible",
}

var attrByName = func() map[string]Attr {
	m := make(map[string]Attr, attrCount)
	for a, name := range attrNames {
		m[name] = Attr(a)
	}
	return m
}()

// String returns the definition-file spelling of the attribute.
func (a Attr) String() string {
	if a < 0 || a >= attrCount {
		return fmt.Sprintf("Attr(%d)", int(a))
	}
	return attrNames[a]
}

// Valid reports whether a is a known attribute.
func (a Attr) Valid() bool {
	return a >= 0 && a < attrCount
}

// ParseAttr resolves a definition-file attribute name.
func ParseAttr(name string) (Attr, error) {
	a, ok := attrByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown attribute %q", name)
	}
	return a, nil
}

// ParseAttrs resolves a list of attribute names, preserving order and
// rejecting duplicates. An empty input yields an empty, non-nil slice so the
// empty set stays representable.
func ParseAttrs(names []string) ([]Attr, error) {
	attrs := make([]Attr, 0, len(names))
	seen := make(map[Attr]bool, len(names))
	for _, name := range names {
		a, err := ParseAttr(name)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, fmt.Errorf("duplicate attribute %q", name)
		}
		seen[a] = true
		attrs = append(attrs, a)
	}
	return attrs, nil
}
