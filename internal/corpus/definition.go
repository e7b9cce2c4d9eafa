// Package corpus loads terminal test definitions and drives the emitter
// through the visitor protocol. It is the sole producer of model data:
// definitions are decoded strictly, validated structurally, and only then
// handed to generation.
package corpus

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/vtscribe/vtscribe/internal/model"
)

// identRe matches test names usable as generated function identifiers.
var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// fileDoc is the on-disk shape of a definition file. The same shape is used
// for YAML (yaml tags) and CUE (json tags) sources.
type fileDoc struct {
	Tests []testDoc `yaml:"tests" json:"tests"`
}

type testDoc struct {
	Name   string     `yaml:"name" json:"name"`
	Screen *screenDoc `yaml:"screen,omitempty" json:"screen,omitempty"`
	Cursor *cursorDoc `yaml:"cursor,omitempty" json:"cursor,omitempty"`
	Inputs []inputDoc `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Checks []checkDoc `yaml:"checks,omitempty" json:"checks,omitempty"`
}

type screenDoc struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

type cursorDoc struct {
	X int `yaml:"x" json:"x"`
	Y int `yaml:"y" json:"y"`
}

// inputDoc carries one input batch as either UTF-8 text or hex-encoded
// bytes. Exactly one form must be set; hex is for sequences YAML cannot
// carry verbatim.
type inputDoc struct {
	Text *string `yaml:"text,omitempty" json:"text,omitempty"`
	Hex  *string `yaml:"hex,omitempty" json:"hex,omitempty"`
}

// checkDoc carries exactly one check variant.
type checkDoc struct {
	Size   *sizeCheckDoc   `yaml:"size,omitempty" json:"size,omitempty"`
	Cursor *cursorCheckDoc `yaml:"cursor,omitempty" json:"cursor,omitempty"`
	Char   *charCheckDoc   `yaml:"char,omitempty" json:"char,omitempty"`
	Attr   *attrCheckDoc   `yaml:"attr,omitempty" json:"attr,omitempty"`
}

type sizeCheckDoc struct {
	W     int  `yaml:"w" json:"w"`
	H     int  `yaml:"h" json:"h"`
	Fatal bool `yaml:"fatal,omitempty" json:"fatal,omitempty"`
}

type cursorCheckDoc struct {
	X     int  `yaml:"x" json:"x"`
	Y     int  `yaml:"y" json:"y"`
	Fatal bool `yaml:"fatal,omitempty" json:"fatal,omitempty"`
}

type charCheckDoc struct {
	X     int    `yaml:"x" json:"x"`
	Y     int    `yaml:"y" json:"y"`
	C     string `yaml:"c" json:"c"`
	Fatal bool   `yaml:"fatal,omitempty" json:"fatal,omitempty"`
}

type attrCheckDoc struct {
	X     int      `yaml:"x" json:"x"`
	Y     int      `yaml:"y" json:"y"`
	Attrs []string `yaml:"attrs" json:"attrs"`
	Fatal bool     `yaml:"fatal,omitempty" json:"fatal,omitempty"`
}

// LoadYAML reads and validates a YAML definition file. Unknown fields are
// rejected so typos fail loudly instead of silently dropping events.
func LoadYAML(path string) (*model.TestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DefinitionError{Path: path, Code: ErrCodeRead, Message: err.Error()}
	}

	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &DefinitionError{Path: path, Code: ErrCodeParse, Message: err.Error()}
	}

	return buildFile(path, &doc)
}

// buildFile converts a decoded document into the validated model.
func buildFile(path string, doc *fileDoc) (*model.TestFile, error) {
	f := &model.TestFile{Name: filepath.Base(path)}

	if len(doc.Tests) == 0 {
		return nil, &DefinitionError{Path: path, Code: ErrCodeEmpty, Message: "no tests defined"}
	}

	seen := make(map[string]bool, len(doc.Tests))
	for i := range doc.Tests {
		t, err := buildTest(path, i, &doc.Tests[i])
		if err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, defErr(path, ErrCodeDuplicate, "tests[%d]: duplicate test name %q", i, t.Name)
		}
		seen[t.Name] = true
		f.Tests = append(f.Tests, *t)
	}
	return f, nil
}

func buildTest(path string, idx int, doc *testDoc) (*model.Test, error) {
	if doc.Name == "" {
		return nil, defErr(path, ErrCodeName, "tests[%d]: name is required", idx)
	}
	if !identRe.MatchString(doc.Name) {
		return nil, defErr(path, ErrCodeName, "tests[%d]: name %q is not a valid identifier", idx, doc.Name)
	}

	t := &model.Test{Name: doc.Name}

	if doc.Screen != nil {
		if doc.Screen.Width <= 0 || doc.Screen.Height <= 0 {
			return nil, defErr(path, ErrCodeScreen, "test %q: screen dimensions must be positive, got %dx%d",
				doc.Name, doc.Screen.Width, doc.Screen.Height)
		}
		t.Screen = &model.ScreenSetup{Width: doc.Screen.Width, Height: doc.Screen.Height}
	}

	if doc.Cursor != nil {
		if doc.Cursor.X < 0 || doc.Cursor.Y < 0 {
			return nil, defErr(path, ErrCodeCursor, "test %q: cursor coordinates must be non-negative", doc.Name)
		}
		t.Cursor = &model.CursorPlacement{X: doc.Cursor.X, Y: doc.Cursor.Y}
	}

	// Every event after setup references the fixture local.
	needsScreen := doc.Cursor != nil || len(doc.Inputs) > 0 || len(doc.Checks) > 0
	if needsScreen && doc.Screen == nil {
		return nil, defErr(path, ErrCodeScreen, "test %q: cursor, inputs, and checks require a screen", doc.Name)
	}

	for j, in := range doc.Inputs {
		seq, err := buildInput(&in)
		if err != nil {
			return nil, defErr(path, ErrCodeInput, "test %q: inputs[%d]: %v", doc.Name, j, err)
		}
		t.Inputs = append(t.Inputs, seq)
	}

	for j := range doc.Checks {
		c, err := buildCheck(t.Screen, &doc.Checks[j])
		if err != nil {
			return nil, defErr(path, ErrCodeCheck, "test %q: checks[%d]: %v", doc.Name, j, err)
		}
		t.Checks = append(t.Checks, c)
	}

	return t, nil
}

func buildInput(doc *inputDoc) (model.InputSequence, error) {
	switch {
	case doc.Text != nil && doc.Hex != nil:
		return nil, fmt.Errorf("text and hex are mutually exclusive")
	case doc.Text != nil:
		return model.InputSequence(*doc.Text), nil
	case doc.Hex != nil:
		b, err := hex.DecodeString(*doc.Hex)
		if err != nil {
			return nil, fmt.Errorf("bad hex input: %v", err)
		}
		return model.InputSequence(b), nil
	default:
		return nil, fmt.Errorf("one of text or hex is required")
	}
}

// buildCheck validates one check variant. Cell coordinates are re-validated
// against the declared screen bounds here even though the generated test
// guards every dereference again at run time.
func buildCheck(scr *model.ScreenSetup, doc *checkDoc) (model.Check, error) {
	variants := 0
	for _, set := range []bool{doc.Size != nil, doc.Cursor != nil, doc.Char != nil, doc.Attr != nil} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return nil, fmt.Errorf("exactly one of size, cursor, char, attr is required")
	}

	switch {
	case doc.Size != nil:
		if doc.Size.W <= 0 || doc.Size.H <= 0 {
			return nil, fmt.Errorf("expected size must be positive, got %dx%d", doc.Size.W, doc.Size.H)
		}
		return model.SizeCheck{W: doc.Size.W, H: doc.Size.H, Fatal: doc.Size.Fatal}, nil

	case doc.Cursor != nil:
		if doc.Cursor.X < 0 || doc.Cursor.Y < 0 {
			return nil, fmt.Errorf("expected cursor coordinates must be non-negative")
		}
		return model.CursorCheck{X: doc.Cursor.X, Y: doc.Cursor.Y, Fatal: doc.Cursor.Fatal}, nil

	case doc.Char != nil:
		if err := checkBounds(scr, doc.Char.X, doc.Char.Y); err != nil {
			return nil, err
		}
		runes := []rune(doc.Char.C)
		if len(runes) != 1 {
			return nil, fmt.Errorf("c must be exactly one character, got %q", doc.Char.C)
		}
		return model.CharCheck{X: doc.Char.X, Y: doc.Char.Y, Char: runes[0], Fatal: doc.Char.Fatal}, nil

	default:
		if err := checkBounds(scr, doc.Attr.X, doc.Attr.Y); err != nil {
			return nil, err
		}
		if doc.Attr.Attrs == nil {
			return nil, fmt.Errorf("attrs is required (use [] for no attributes)")
		}
		attrs, err := model.ParseAttrs(doc.Attr.Attrs)
		if err != nil {
			return nil, err
		}
		return model.AttrCheck{X: doc.Attr.X, Y: doc.Attr.Y, Attrs: attrs, Fatal: doc.Attr.Fatal}, nil
	}
}

func checkBounds(scr *model.ScreenSetup, x, y int) error {
	if x < 0 || x >= scr.Width {
		return fmt.Errorf("x %d outside screen width %d", x, scr.Width)
	}
	if y < 0 || y >= scr.Height {
		return fmt.Errorf("y %d outside screen height %d", y, scr.Height)
	}
	return nil
}
