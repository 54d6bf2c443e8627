package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const passingScenario = `
name: acetic-midpoint
description: half-equivalence pH equals the pKa
titration:
  type: strong_base_weak_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
  pKa: 4.74
sweep:
  step: 2.5
checks:
  - {at: 12.5, ph: 4.74, within: 0.05}
properties: [monotonic, clamped]
`

const failingScenario = `
name: wrong-reference
description: reference value the curve cannot reach
titration:
  type: strong_base_weak_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
  pKa: 4.74
sweep:
  step: 2.5
checks:
  - {at: 12.5, ph: 12.0, within: 0.05}
`

func writeScenarioFile(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func TestTestCommandAllPass(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "acetic-midpoint.yaml", passingScenario)

	out, _, err := execute(t, "test", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ acetic-midpoint")
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
	assert.Contains(t, out, "✓ All scenarios passed")
}

func TestTestCommandFailure(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "acetic-midpoint.yaml", passingScenario)
	writeScenarioFile(t, dir, "wrong-reference.yaml", failingScenario)

	out, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "✗ wrong-reference")
	assert.Contains(t, out, "1 passed, 1 failed, 2 total")
}

func TestTestCommandFilter(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "acetic-midpoint.yaml", passingScenario)
	writeScenarioFile(t, dir, "wrong-reference.yaml", failingScenario)

	out, _, err := execute(t, "test", dir, "--filter", "acetic-*")
	require.NoError(t, err)
	assert.Contains(t, out, "1 passed, 0 failed, 1 total")
}

func TestTestCommandJSON(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "wrong-reference.yaml", failingScenario)

	out, _, err := execute(t, "--format", "json", "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string     `json:"status"`
		Data   TestResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, 1, resp.Data.Failed)
	require.Len(t, resp.Data.Scenarios, 1)
	assert.NotEmpty(t, resp.Data.Scenarios[0].Failures)
}

func TestTestCommandBadScenarioFile(t *testing.T) {
	dir := t.TempDir()
	writeScenarioFile(t, dir, "broken.yaml", "name: [not a string\n")

	_, _, err := execute(t, "test", dir)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestTestCommandEmptyDirectory(t *testing.T) {
	out, _, err := execute(t, "test", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "No scenarios found.")
}

func TestTestCommandMissingDirectory(t *testing.T) {
	_, _, err := execute(t, "test", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
