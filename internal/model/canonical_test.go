package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFile() *TestFile {
	return &TestFile{
		Name: "cursor.yaml",
		Tests: []Test{
			{
				Name:   "home",
				Screen: &ScreenSetup{Width: 80, Height: 24},
				Cursor: &CursorPlacement{X: 0, Y: 0},
				Inputs: []InputSequence{[]byte("hi"), {0x1b, '[', 'H'}},
				Checks: []Check{
					SizeCheck{W: 80, H: 24, Fatal: true},
					CursorCheck{X: 0, Y: 0},
					CharCheck{X: 0, Y: 0, Char: 'h'},
					AttrCheck{X: 0, Y: 0, Attrs: []Attr{AttrBold, AttrUnderline}},
				},
			},
			{Name: "bare"},
		},
	}
}

func TestMarshalCanonicalIsValidJSON(t *testing.T) {
	data, err := MarshalCanonical(sampleFile())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "cursor.yaml", decoded["name"])

	tests, ok := decoded["tests"].([]any)
	require.True(t, ok)
	require.Len(t, tests, 2)

	// Absent setup events are explicit nulls, not omitted keys.
	bare := tests[1].(map[string]any)
	assert.Contains(t, bare, "screen")
	assert.Nil(t, bare["screen"])
	assert.Nil(t, bare["cursor"])
}

func TestMarshalCanonicalDeterministic(t *testing.T) {
	a, err := MarshalCanonical(sampleFile())
	require.NoError(t, err)
	b, err := MarshalCanonical(sampleFile())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalCanonicalNFCNormalization(t *testing.T) {
	// U+00E9 precomposed vs e + U+0301 combining acute.
	composed := &TestFile{Name: "café.yaml", Tests: []Test{{Name: "t1"}}}
	decomposed := &TestFile{Name: "café.yaml", Tests: []Test{{Name: "t1"}}}

	a, err := MarshalCanonical(composed)
	require.NoError(t, err)
	b, err := MarshalCanonical(decomposed)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestMarshalCanonicalBytesAsIntegers(t *testing.T) {
	f := &TestFile{
		Name:  "raw.yaml",
		Tests: []Test{{Name: "esc", Inputs: []InputSequence{{0x1b, 0x00, 0xff}}}},
	}
	data, err := MarshalCanonical(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"inputs":[[27,0,255]]`)
}

func TestMarshalCanonicalAttrOrder(t *testing.T) {
	f := &TestFile{
		Name: "attrs.yaml",
		Tests: []Test{{
			Name:   "order",
			Checks: []Check{AttrCheck{Attrs: []Attr{AttrUnderline, AttrBold}}},
		}},
	}
	data, err := MarshalCanonical(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"attrs":["underline","bold"]`)
}
