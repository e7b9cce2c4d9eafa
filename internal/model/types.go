package model

// TestFile is one source definition file and the ordered tests it declares.
// The generated output file derives its name from Name with the extension
// replaced by the target test-source suffix.
type TestFile struct {
	// Name is the definition file name (base name, any extension).
	Name string

	// Tests are generated in declaration order.
	Tests []Test
}

// Test is a single generated test function.
// Setup events (screen, cursor, input) precede the check list; the emitter
// renders them in the order they appear here.
type Test struct {
	// Name becomes the generated function identifier. Must be a valid
	// identifier in the target language; corpus validation enforces this.
	Name string

	// Screen declares the fixture dimensions. Nil means no fixture
	// construction is emitted.
	Screen *ScreenSetup

	// Cursor places the cursor directly, bypassing input-driven movement.
	Cursor *CursorPlacement

	// Inputs are byte batches fed to the fixture in order.
	Inputs []InputSequence

	// Checks may be empty; the accumulator scaffolding is emitted regardless.
	Checks []Check
}

// ScreenSetup declares initial terminal dimensions.
type ScreenSetup struct {
	Width  int
	Height int
}

// CursorPlacement sets initial cursor coordinates.
type CursorPlacement struct {
	X int
	Y int
}

// InputSequence is an opaque byte batch fed to the emulator under test.
// Order relative to other sequences in the same test is significant.
type InputSequence []byte

// Check is the closed set of assertion variants a test can carry.
//
// Each variant carries a Fatal flag: a fatal check renders as an assertion
// that aborts the test on mismatch, a non-fatal check records the mismatch
// in the test's shared accumulator and lets later checks run.
type Check interface {
	// IsFatal reports whether a mismatch aborts the generated test.
	IsFatal() bool

	isCheck()
}

// SizeCheck asserts the fixture's width and height.
type SizeCheck struct {
	W     int
	H     int
	Fatal bool
}

// CursorCheck asserts the fixture's cursor position.
type CursorCheck struct {
	X     int
	Y     int
	Fatal bool
}

// CharCheck asserts the code point of the cell at (X, Y).
type CharCheck struct {
	X     int
	Y     int
	Char  rune
	Fatal bool
}

// AttrCheck asserts the attribute set of the cell at (X, Y).
// Attrs preserves the order the flags were declared in; an empty slice is a
// meaningful value (no attributes set) and renders as the sentinel constant.
type AttrCheck struct {
	X     int
	Y     int
	Attrs []Attr
	Fatal bool
}

func (c SizeCheck) IsFatal() bool   { return c.Fatal }
func (c CursorCheck) IsFatal() bool { return c.Fatal }
func (c CharCheck) IsFatal() bool   { return c.Fatal }
func (c AttrCheck) IsFatal() bool   { return c.Fatal }

func (SizeCheck) isCheck()   {}
func (CursorCheck) isCheck() {}
func (CharCheck) isCheck()   {}
func (AttrCheck) isCheck()   {}
