package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDef = "tests:\n  - name: only\n"

func writeCorpus(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return dir
}

func TestWalkSortedAndFiltered(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"b.yaml":        minimalDef,
		"a.yml":         minimalDef,
		"nested/c.cue":  `tests: [{name: "only"}]`,
		"README.md":     "not a definition",
		"notes/out.txt": "ignored",
	})

	paths, err := Walk(dir)
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.Equal(t, filepath.Join(dir, "a.yml"), paths[0])
	assert.Equal(t, filepath.Join(dir, "b.yaml"), paths[1])
	assert.Equal(t, filepath.Join(dir, "nested", "c.cue"), paths[2])
}

func TestLoadDispatchesOnExtension(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"y.yaml": minimalDef,
		"c.cue":  `tests: [{name: "only"}]`,
	})

	fy, err := Load(filepath.Join(dir, "y.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "y.yaml", fy.Name)

	fc, err := Load(filepath.Join(dir, "c.cue"))
	require.NoError(t, err)
	assert.Equal(t, "c.cue", fc.Name)
}

func TestLoadAllEmptyDir(t *testing.T) {
	_, errs := LoadAll(t.TempDir(), true)
	require.Len(t, errs, 1)

	var derr *DefinitionError
	require.ErrorAs(t, errs[0], &derr)
	assert.Equal(t, ErrCodeNoFiles, derr.Code)
}

func TestLoadAllCollectAll(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.yaml": minimalDef,
		"b.yaml": "tests: []\n",
		"c.yaml": "tests:\n  - name: 3bad\n",
		"d.yaml": minimalDef,
	})

	files, errs := LoadAll(dir, true)
	assert.Len(t, files, 2)
	require.Len(t, errs, 2)

	// Errors keep corpus order.
	var first, second *DefinitionError
	require.ErrorAs(t, errs[0], &first)
	require.ErrorAs(t, errs[1], &second)
	assert.Equal(t, ErrCodeEmpty, first.Code)
	assert.Equal(t, ErrCodeName, second.Code)
}

func TestLoadAllStopsOnFirstError(t *testing.T) {
	dir := writeCorpus(t, map[string]string{
		"a.yaml": minimalDef,
		"b.yaml": "tests: []\n",
		"c.yaml": "tests: []\n",
	})

	files, errs := LoadAll(dir, false)
	assert.Len(t, files, 1)
	assert.Len(t, errs, 1)
}
