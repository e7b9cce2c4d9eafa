package corpus

import "github.com/vtscribe/vtscribe/internal/model"

// Visitor is the emitter-side protocol. Calls arrive in a fixed order:
// BeginFile once, then for each test BeginTest, the setup events in
// declaration order, BeginChecks, the checks, EndChecks, EndTest, and
// finally EndFile exactly once on every path. Abort is invoked instead of
// EndFile only when a check fails to render, so the output resource is
// released even on abnormal completion.
type Visitor interface {
	BeginFile(name string) error
	BeginTest(name string)
	CreateScreen(w, h int)
	PlaceCursor(x, y int)
	ExportSequence(seq []byte)
	BeginChecks()
	AddCheck(c model.Check) error
	EndChecks()
	EndTest(name string)
	EndFile(name string) error
	Abort()
}

// Drive replays one test file through the visitor protocol.
func Drive(f *model.TestFile, v Visitor) error {
	if err := v.BeginFile(f.Name); err != nil {
		return err
	}

	for i := range f.Tests {
		t := &f.Tests[i]
		v.BeginTest(t.Name)
		if t.Screen != nil {
			v.CreateScreen(t.Screen.Width, t.Screen.Height)
		}
		if t.Cursor != nil {
			v.PlaceCursor(t.Cursor.X, t.Cursor.Y)
		}
		for _, seq := range t.Inputs {
			v.ExportSequence(seq)
		}
		v.BeginChecks()
		for _, c := range t.Checks {
			if err := v.AddCheck(c); err != nil {
				v.Abort()
				return err
			}
		}
		v.EndChecks()
		v.EndTest(t.Name)
	}

	return v.EndFile(f.Name)
}
