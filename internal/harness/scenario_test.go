package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

const aceticScenario = `
name: acetic-curve
description: Acetic acid titrated with strong base
titration:
  type: strong_base_weak_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
  pKa: 4.74
sweep:
  step: 2.5
checks:
  - {at: 0.0, ph: 2.87, within: 0.05}
  - {at: 12.5, ph: 4.74, within: 0.05}
  - {at: 25.0, ph: 8.72, within: 0.05}
properties: [monotonic, clamped, continuous]
`

func TestLoadScenario(t *testing.T) {
	s, err := LoadScenario(writeScenario(t, aceticScenario))
	require.NoError(t, err)

	assert.Equal(t, "acetic-curve", s.Name)
	assert.Equal(t, "strong_base_weak_acid", s.Titration.Type)
	assert.Equal(t, 0.1, s.Titration.Analyte.Concentration)
	assert.Equal(t, 50.0, s.Titration.Titrant.Max)
	assert.Equal(t, 4.74, s.Titration.PKa)
	assert.Equal(t, 2.5, s.Sweep.Step)
	assert.Len(t, s.Checks, 3)
	assert.Equal(t, []string{"monotonic", "clamped", "continuous"}, s.Properties)
}

func TestLoadScenarioRejectsUnknownFields(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: typo
description: misspelled checks key
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
check:
  - {at: 0.0, ph: 1.0, within: 0.1}
`))
	require.Error(t, err)
}

func TestLoadScenarioMissingName(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
description: no name
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
properties: [clamped]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}

func TestLoadScenarioUnknownType(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: bad
description: made-up titration type
titration:
  type: phlogiston_titration
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
properties: [clamped]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestLoadScenarioBadStep(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: bad
description: zero step
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 0
properties: [clamped]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step")
}

func TestLoadScenarioNoChecksOrProperties(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: empty
description: asserts nothing
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
`))
	require.Error(t, err)
}

func TestLoadScenarioBadCheckTolerance(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: bad
description: check without tolerance
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
checks:
  - {at: 0.0, ph: 1.0}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "within")
}

func TestLoadScenarioUnknownProperty(t *testing.T) {
	_, err := LoadScenario(writeScenario(t, `
name: bad
description: invalid property name
titration:
  type: strong_base_strong_acid
  analyte: {concentration: 0.1, volume: 25.0}
  titrant: {concentration: 0.1, max: 50.0}
sweep:
  step: 1.0
properties: [smooth]
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smooth")
}

func TestLoadScenarioMissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
