package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "vtscribe", cmd.Use)

	names := make([]string, 0, 3)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "list")

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("format"))
}

func TestRootRejectsInvalidFormat(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{"a.yaml": validDef})

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", dir, "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootValidateThroughRoot(t *testing.T) {
	dir := writeCorpusDir(t, map[string]string{"a.yaml": validDef})

	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"validate", dir})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ Corpus valid")
}

func TestIsValidFormat(t *testing.T) {
	assert.True(t, isValidFormat("text"))
	assert.True(t, isValidFormat("json"))
	assert.False(t, isValidFormat("yaml"))
	assert.False(t, isValidFormat(""))
}
