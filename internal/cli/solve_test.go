package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveCommandText(t *testing.T) {
	out, _, err := execute(t, "solve", writeDefs(t), "acetic", "--volume", "12.5")
	require.NoError(t, err)
	// Half-equivalence pH equals the pKa.
	assert.Contains(t, out, "acetic at 12.5 mL: pH 4.7")
}

func TestSolveCommandJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "solve", writeDefs(t), "acetic", "--volume", "25")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   SolveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "acetic", resp.Data.Name)
	assert.Equal(t, 25.0, resp.Data.TitrantVol)
	assert.InDelta(t, 8.72, resp.Data.PH, 0.05)
}

func TestSolveCommandUnknownName(t *testing.T) {
	_, _, err := execute(t, "solve", writeDefs(t), "sulfuric", "--volume", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "sulfuric")
}

func TestSolveCommandNegativeVolume(t *testing.T) {
	_, _, err := execute(t, "solve", writeDefs(t), "acetic", "--volume", "-1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
