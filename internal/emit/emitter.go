// Package emit renders terminal-emulator test events into Go test source.
//
// An Emitter is a stateful visitor driven by the corpus package in a fixed
// protocol order: BeginFile opens one output file, BeginTest through EndTest
// bracket one generated test function, and EndFile releases the file on every
// exit path. Rendering is deterministic: the same events produce byte
// identical output.
package emit

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/vtscribe/vtscribe/internal/model"
)

// fixtureVar is the local name of the screen fixture in every generated test.
const fixtureVar = "s"

// accumulatorVar tracks non-fatal check failures within a generated test.
const accumulatorVar = "unexpected"

// DefaultPackage is the package name generated files declare when Options
// leaves it empty.
const DefaultPackage = "screentest"

// DefaultScreenImport is the import path of the screen fixture package.
const DefaultScreenImport = "github.com/vtscribe/vtscribe/internal/screen"

// Options configures generated output.
type Options struct {
	// Package is the package name declared by generated files.
	Package string

	// ScreenImport is the import path of the fixture package the generated
	// tests exercise. The path's last element is used as the package
	// qualifier in generated statements.
	ScreenImport string
}

func (o *Options) fill() {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.ScreenImport == "" {
		o.ScreenImport = DefaultScreenImport
	}
}

// Emitter renders test events for one output directory. It owns at most one
// open output file at a time, acquired in BeginFile and released in EndFile.
// Not safe for concurrent use; the event source drives it synchronously.
type Emitter struct {
	outDir string
	opts   Options

	file    *os.File
	buf     *bufio.Writer
	outPath string

	// qual is the package qualifier for fixture references, e.g. "screen".
	qual string

	// screenMade and screenUsed track whether the current test constructed
	// the fixture and whether any later statement referenced it, so a
	// setup-only test still compiles.
	screenMade bool
	screenUsed bool

	// werr is the first buffered-write error; surfaced at EndFile.
	werr error
}

// New creates an emitter writing generated files into outDir.
func New(outDir string, opts Options) *Emitter {
	opts.fill()
	return &Emitter{
		outDir: outDir,
		opts:   opts,
		qual:   path.Base(opts.ScreenImport),
	}
}

// OutputName derives the generated file name from a definition file name:
// the base name with its extension replaced by the test-source suffix.
func OutputName(defName string) string {
	base := filepath.Base(defName)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_test.go"
}

// BeginFile acquires the output file for the named definition file and
// writes the generated-code header. Returns a ResourceError if the file
// cannot be created.
func (e *Emitter) BeginFile(filename string) error {
	e.outPath = filepath.Join(e.outDir, OutputName(filename))
	f, err := os.Create(e.outPath)
	if err != nil {
		return &ResourceError{Op: "create", Path: e.outPath, Err: err}
	}
	e.file = f
	e.buf = bufio.NewWriter(f)
	e.werr = nil

	e.pf("// Code generated by vtscribe from %s. DO NOT EDIT.\n", filepath.Base(filename))
	e.pf("\npackage %s\n", e.opts.Package)
	e.pf("\nimport (\n\t\"testing\"\n\n\t%q\n)\n", e.opts.ScreenImport)
	return nil
}

// BeginTest opens the generated test function for name. The event source
// guarantees name is a valid identifier.
func (e *Emitter) BeginTest(name string) {
	e.screenMade = false
	e.screenUsed = false
	e.pf("\nfunc Test_%s(t *testing.T) {\n", name)
}

// CreateScreen constructs the fixture with the given dimensions, bound to
// the fixed local used by all subsequent statements in the test.
func (e *Emitter) CreateScreen(w, h int) {
	e.screenMade = true
	e.pf("\t%s := %s.New(%d, %d)\n", fixtureVar, e.qual, w, h)
}

// PlaceCursor sets the fixture's cursor directly, bypassing input-driven
// movement.
func (e *Emitter) PlaceCursor(x, y int) {
	e.screenUsed = true
	e.pf("\t%s.SetCursor(%d, %d)\n", fixtureVar, x, y)
}

// ExportSequence feeds a byte batch to the fixture as if received from the
// terminal. Bytes are escaped for the string literal; see quoteBytes.
func (e *Emitter) ExportSequence(seq []byte) {
	e.screenUsed = true
	e.pf("\t%s.Advance([]byte(%s))\n", fixtureVar, quoteBytes(seq))
}

// BeginChecks initializes the non-fatal failure accumulator. Emitted for
// every test, check list or not.
func (e *Emitter) BeginChecks() {
	e.pf("\t%s := false\n", accumulatorVar)
}

// AddCheck renders one check. Returns an UnsupportedCheckError for a variant
// with no renderer.
func (e *Emitter) AddCheck(c model.Check) error {
	e.screenUsed = true
	return e.renderCheck(c)
}

// EndChecks aggregates the accumulated non-fatal failures into one fatal
// assertion at the end of the test.
func (e *Emitter) EndChecks() {
	e.pf("\tif %s {\n\t\tt.Fatal(\"unexpected screen state\")\n\t}\n", accumulatorVar)
}

// EndTest closes the generated test function.
func (e *Emitter) EndTest(name string) {
	if e.screenMade && !e.screenUsed {
		e.pf("\t_ = %s\n", fixtureVar)
	}
	e.pf("}\n")
}

// EndFile flushes and closes the output file, making it durable. The file
// handle is released on every path, including flush failure. Returns a
// ResourceError if any buffered write, the flush, or the close failed.
func (e *Emitter) EndFile(filename string) error {
	if e.file == nil {
		return nil
	}

	flushErr := e.buf.Flush()
	closeErr := e.file.Close()
	path := e.outPath
	e.file = nil
	e.buf = nil

	if e.werr != nil {
		return &ResourceError{Op: "write", Path: path, Err: e.werr}
	}
	if flushErr != nil {
		return &ResourceError{Op: "write", Path: path, Err: flushErr}
	}
	if closeErr != nil {
		return &ResourceError{Op: "close", Path: path, Err: closeErr}
	}
	return nil
}

// Abort releases the output file without surfacing flush errors. Used when
// generation fails mid-file so the handle is never leaked.
func (e *Emitter) Abort() {
	if e.file == nil {
		return
	}
	_ = e.buf.Flush()
	_ = e.file.Close()
	e.file = nil
	e.buf = nil
}

// pf writes formatted source text, recording the first write error.
func (e *Emitter) pf(format string, args ...any) {
	if e.werr != nil {
		return
	}
	if _, err := fmt.Fprintf(e.buf, format, args...); err != nil {
		e.werr = err
	}
}
