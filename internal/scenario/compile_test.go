package scenario

import (
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halfeq/burette/internal/chem"
)

func compileString(t *testing.T, src, path string) (*Definition, error) {
	t.Helper()
	ctx := cuecontext.New()
	v := ctx.CompileString(src)
	require.NoError(t, v.Err())
	return CompileTitration(v.LookupPath(cue.ParsePath(path)))
}

func TestCompileTitrationBasic(t *testing.T) {
	def, err := compileString(t, `
		titration: acetic: {
			type: "strong_base_weak_acid"
			analyte: {concentration: 0.1, volume: 25.0}
			titrant: {concentration: 0.1, max: 50.0}
			pKa: 4.74
		}
	`, "titration.acetic")
	require.NoError(t, err)

	assert.Equal(t, "acetic", def.Name)
	assert.Equal(t, chem.StrongBaseWeakAcid, def.State.Type)
	assert.Equal(t, 0.1, def.State.AnalyteConc)
	assert.Equal(t, 25.0, def.State.AnalyteVol)
	assert.Equal(t, 0.1, def.State.TitrantConc)
	assert.Equal(t, 50.0, def.State.TitrantMax)
	assert.Equal(t, 4.74, def.State.PKa)
	assert.Zero(t, def.State.PKb)
	assert.Zero(t, def.State.PKa2)
	assert.Zero(t, def.State.PKa3)
}

func TestCompileTitrationTriprotic(t *testing.T) {
	def, err := compileString(t, `
		titration: phosphoric: {
			type: "strong_base_triprotic_acid"
			analyte: {concentration: 0.05, volume: 30.0}
			titrant: {concentration: 0.1, max: 90.0}
			pKa:  2.15
			pKa2: 7.20
			pKa3: 12.35
		}
	`, "titration.phosphoric")
	require.NoError(t, err)

	assert.Equal(t, "phosphoric", def.Name)
	assert.Equal(t, 2.15, def.State.PKa)
	assert.Equal(t, 7.20, def.State.PKa2)
	assert.Equal(t, 12.35, def.State.PKa3)
}

func TestCompileTitrationMissingType(t *testing.T) {
	_, err := compileString(t, `
		titration: bad: {
			analyte: {concentration: 0.1, volume: 25.0}
			titrant: {concentration: 0.1, max: 50.0}
		}
	`, "titration.bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
	assert.Contains(t, err.Error(), "required")
}

func TestCompileTitrationMissingAnalyteField(t *testing.T) {
	_, err := compileString(t, `
		titration: bad: {
			type: "strong_base_strong_acid"
			analyte: {concentration: 0.1}
			titrant: {concentration: 0.1, max: 50.0}
		}
	`, "titration.bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "analyte.volume")
}

func TestCompileTitrationMissingTitrant(t *testing.T) {
	_, err := compileString(t, `
		titration: bad: {
			type: "strong_base_strong_acid"
			analyte: {concentration: 0.1, volume: 25.0}
		}
	`, "titration.bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "titrant")
}

func TestCompileTitrationNonNumericConstant(t *testing.T) {
	_, err := compileString(t, `
		titration: bad: {
			type: "strong_base_weak_acid"
			analyte: {concentration: 0.1, volume: 25.0}
			titrant: {concentration: 0.1, max: 50.0}
			pKa: "four point seven"
		}
	`, "titration.bad")

	require.Error(t, err)
}

func TestCompileTitrationIntegerLiterals(t *testing.T) {
	// Whole-number CUE literals are ints; Float64 must still accept them.
	def, err := compileString(t, `
		titration: coarse: {
			type: "strong_base_strong_acid"
			analyte: {concentration: 1, volume: 25}
			titrant: {concentration: 1, max: 50}
		}
	`, "titration.coarse")
	require.NoError(t, err)

	assert.Equal(t, 1.0, def.State.AnalyteConc)
	assert.Equal(t, 50.0, def.State.TitrantMax)
}
