package emit

import (
	"strconv"
	"strings"

	"github.com/vtscribe/vtscribe/internal/model"
)

// attrConst maps a model attribute to the fixture package's constant name.
var attrConst = map[model.Attr]string{
	model.AttrInverse:         "AttrInverse",
	model.AttrUnderline:       "AttrUnderline",
	model.AttrBold:            "AttrBold",
	model.AttrBlink:           "AttrBlink",
	model.AttrBgColor:         "AttrBgColor",
	model.AttrFgColor:         "AttrFgColor",
	model.AttrProtected:       "AttrProtected",
	model.AttrCharDrawn:       "AttrCharDrawn",
	model.AttrFaint:           "AttrFaint",
	model.AttrItalic:          "AttrItalic",
	model.AttrStrikeout:       "AttrStrikeout",
	model.AttrDoubleUnderline: "AttrDoubleUnderline",
	model.AttrInvisible:       "AttrInvisible",
}

// renderCheck dispatches on the concrete check variant. The variant set is
// closed, so the default arm only fires when a new variant is added without
// a renderer; that is a contract violation, not an input error.
func (e *Emitter) renderCheck(c model.Check) error {
	switch ck := c.(type) {
	case model.SizeCheck:
		e.renderEquality(ck.Fatal, "s.Width()", itoa(ck.W), "width", "d")
		e.renderEquality(ck.Fatal, "s.Height()", itoa(ck.H), "height", "d")
	case model.CursorCheck:
		e.renderEquality(ck.Fatal, "s.CursorX()", itoa(ck.X), "cursor x", "d")
		e.renderEquality(ck.Fatal, "s.CursorY()", itoa(ck.Y), "cursor y", "d")
	case model.CharCheck:
		e.renderBounds(ck.X, ck.Y)
		actual := "s.Cell(" + itoa(ck.X) + ", " + itoa(ck.Y) + ").Rune()"
		label := "cell (" + itoa(ck.X) + "," + itoa(ck.Y) + ")"
		e.renderEquality(ck.Fatal, actual, "'"+escapeRune(ck.Char)+"'", label, "q")
	case model.AttrCheck:
		e.renderBounds(ck.X, ck.Y)
		actual := "s.Cell(" + itoa(ck.X) + ", " + itoa(ck.Y) + ").Attrs()"
		label := "cell (" + itoa(ck.X) + "," + itoa(ck.Y) + ") attrs"
		e.renderEquality(ck.Fatal, actual, e.attrExpr(ck.Attrs), label, "v")
	default:
		return &UnsupportedCheckError{Check: c}
	}
	return nil
}

// renderEquality emits one equality check. Fatal checks abort the test on
// mismatch; non-fatal checks report the mismatch and set the shared
// accumulator so later checks still run. verb formats the actual value in
// the failure message.
func (e *Emitter) renderEquality(fatal bool, actual, expected, label, verb string) {
	e.pf("\tif got := %s; got != %s {\n", actual, expected)
	if fatal {
		e.pf("\t\tt.Fatalf(\"%s: got %%%s, want %s\", got)\n", label, verb, quoteForFormat(expected))
		e.pf("\t}\n")
		return
	}
	e.pf("\t\tt.Errorf(\"%s: got %%%s, want %s\", got)\n", label, verb, quoteForFormat(expected))
	e.pf("\t\t%s = true\n", accumulatorVar)
	e.pf("\t}\n")
}

// renderBounds emits the two always-fatal range assertions guarding a cell
// dereference. Out-of-bounds coordinates are a test-authoring defect, so the
// check's own fatality flag does not apply here.
func (e *Emitter) renderBounds(x, y int) {
	e.pf("\tif %d < 0 || %d >= s.Width() {\n", x, x)
	e.pf("\t\tt.Fatalf(\"cell x %d out of range [0,%%d)\", s.Width())\n", x)
	e.pf("\t}\n")
	e.pf("\tif %d < 0 || %d >= s.Height() {\n", y, y)
	e.pf("\t\tt.Fatalf(\"cell y %d out of range [0,%%d)\", s.Height())\n", y)
	e.pf("\t}\n")
}

// attrExpr renders an attribute set as an OR-chain of fixture constants in
// declaration order, or the no-attributes sentinel for the empty set.
func (e *Emitter) attrExpr(attrs []model.Attr) string {
	if len(attrs) == 0 {
		return e.qual + ".AttrNone"
	}
	parts := make([]string, len(attrs))
	for i, a := range attrs {
		parts[i] = e.qual + "." + attrConst[a]
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// quoteForFormat makes an expected expression safe inside a double-quoted
// format string.
func quoteForFormat(expected string) string {
	expected = strings.ReplaceAll(expected, `\`, `\\`)
	return strings.ReplaceAll(expected, `"`, `\"`)
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
