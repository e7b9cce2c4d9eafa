package corpus

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vtscribe/vtscribe/internal/model"
)

func TestLoadCUEValid(t *testing.T) {
	p := writeDef(t, "grid.cue", `
tests: [
	{
		name: "grid"
		screen: {width: 8, height: 4}
		inputs: [{text: "ok"}]
		checks: [
			{size: {w: 8, h: 4, fatal: true}},
			{char: {x: 0, y: 0, c: "o"}},
		]
	},
]
`)

	f, err := LoadCUE(p)
	require.NoError(t, err)
	assert.Equal(t, "grid.cue", f.Name)
	require.Len(t, f.Tests, 1)
	assert.Equal(t, "grid", f.Tests[0].Name)
	assert.Equal(t, model.SizeCheck{W: 8, H: 4, Fatal: true}, f.Tests[0].Checks[0])
}

// CUE lets a corpus share defaults across tests, which is the reason the
// loader exists at all.
func TestLoadCUEComprehension(t *testing.T) {
	p := writeDef(t, "shared.cue", `
_screen: {width: 80, height: 24}

tests: [
	for n in ["first", "second"] {
		name:   n
		screen: _screen
	},
]
`)

	f, err := LoadCUE(p)
	require.NoError(t, err)
	require.Len(t, f.Tests, 2)
	assert.Equal(t, "first", f.Tests[0].Name)
	assert.Equal(t, "second", f.Tests[1].Name)
	assert.Equal(t, 80, f.Tests[1].Screen.Width)
}

func TestLoadCUEErrors(t *testing.T) {
	cases := []struct {
		name string
		cue  string
		code string
	}{
		{name: "syntax error", cue: "tests: [\n", code: ErrCodeParse},
		{name: "missing tests", cue: "other: 1\n", code: ErrCodeEmpty},
		{name: "bad shape", cue: `tests: [{name: "a", screen: "wide"}]`, code: ErrCodeParse},
		{name: "validation", cue: `tests: [{name: "a", screen: {width: 0, height: 1}}]`, code: ErrCodeScreen},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := writeDef(t, "bad.cue", tc.cue)
			_, err := LoadCUE(p)
			require.Error(t, err)

			var derr *DefinitionError
			require.ErrorAs(t, err, &derr)
			assert.Equal(t, tc.code, derr.Code)
		})
	}
}

func TestLoadCUEMissingFile(t *testing.T) {
	_, err := LoadCUE(filepath.Join(t.TempDir(), "nope.cue"))
	var derr *DefinitionError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, ErrCodeRead, derr.Code)
}
