package emit

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/vtscribe/vtscribe/internal/model"
)

// TestGoldenOutput pins the full generated source byte for byte. Update with
// `go test ./internal/emit -update` after intentional format changes.
func TestGoldenOutput(t *testing.T) {
	cases := []struct {
		name string
		file *model.TestFile
	}{
		{
			name: "size",
			file: &model.TestFile{
				Name: "size.yaml",
				Tests: []model.Test{{
					Name:   "basic",
					Screen: &model.ScreenSetup{Width: 80, Height: 24},
					Checks: []model.Check{
						model.SizeCheck{W: 80, H: 24, Fatal: true},
					},
				}},
			},
		},
		{
			name: "session",
			file: &model.TestFile{
				Name: "session.yaml",
				Tests: []model.Test{{
					Name:   "prompt",
					Screen: &model.ScreenSetup{Width: 40, Height: 10},
					Cursor: &model.CursorPlacement{X: 0, Y: 0},
					Inputs: []model.InputSequence{[]byte("\x1b[1mOK\x1b[0m")},
					Checks: []model.Check{
						model.CursorCheck{X: 2, Y: 0},
						model.CharCheck{X: 0, Y: 0, Char: 'O', Fatal: true},
						model.AttrCheck{X: 0, Y: 0, Attrs: []model.Attr{model.AttrBold}},
						model.AttrCheck{X: 2, Y: 0, Attrs: []model.Attr{}},
					},
				}},
			},
		},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := generate(t, t.TempDir(), tc.file)
			g.Assert(t, tc.name, out)
		})
	}
}
