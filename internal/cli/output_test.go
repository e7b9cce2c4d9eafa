package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"result": "generated"})
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error("E103", "output write failed", nil)
	require.NoError(t, err)

	var resp CLIResponse
	err = json.Unmarshal(buf.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E103", resp.Error.Code)
	assert.Equal(t, "output write failed", resp.Error.Message)
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	err := formatter.Error("E101", "cannot create directory", nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E101]: cannot create directory")
}

func TestVerboseLogTargetsErrWriter(t *testing.T) {
	outBuf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:    "json",
		Writer:    outBuf,
		ErrWriter: errBuf,
		Verbose:   true,
	}

	formatter.VerboseLog("processed %d files", 3)
	assert.Empty(t, outBuf.String())
	assert.Equal(t, "processed 3 files\n", errBuf.String())
}

func TestVerboseLogDisabled(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	formatter.VerboseLog("never shown")
	assert.Empty(t, buf.String())
}

func TestExitErrorCodes(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad usage")
	assert.Equal(t, ExitCommandError, GetExitCode(plain))
	assert.Equal(t, "bad usage", plain.Error())

	inner := errors.New("disk full")
	wrapped := WrapExitError(ExitFailure, "generation failed", inner)
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "disk full")
	assert.ErrorIs(t, wrapped, inner)

	// Unknown errors default to the failure code.
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("mystery")))
}
