package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Success(map[string]any{"ph": 7.0}))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Nil(t, resp.Error)
}

func TestFormatterErrorJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	require.NoError(t, f.Error("E005", "not found", nil))

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E005", resp.Error.Code)
	assert.Equal(t, "not found", resp.Error.Message)
}

func TestFormatterErrorText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Error("E005", "not found", nil))
	assert.Contains(t, buf.String(), "Error [E005]: not found")
}

func TestFormatterVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}
	f.VerboseLog("loaded %d definitions", 3)

	assert.Empty(t, out.String(), "verbose output must not corrupt JSON stream")
	assert.Contains(t, errOut.String(), "loaded 3 definitions")

	quiet := &OutputFormatter{Format: "text", Writer: out, Verbose: false}
	quiet.VerboseLog("hidden")
	assert.Empty(t, out.String())
}

func TestExitError(t *testing.T) {
	plain := NewExitError(ExitCommandError, "bad path")
	assert.Equal(t, "bad path", plain.Error())
	assert.Equal(t, ExitCommandError, GetExitCode(plain))

	wrapped := WrapExitError(ExitFailure, "replay", errors.New("diverged"))
	assert.Equal(t, "replay: diverged", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))

	chained := fmt.Errorf("outer: %w", wrapped)
	assert.Equal(t, ExitFailure, GetExitCode(chained))

	assert.Equal(t, ExitFailure, GetExitCode(errors.New("ordinary")))
}
