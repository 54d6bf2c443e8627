package scenario

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"

	"github.com/halfeq/burette/internal/chem"
)

// Definition is one named titration compiled from CUE.
type Definition struct {
	Name  string     `json:"name"`
	State chem.State `json:"state"`
}

// CompileError represents a compilation error with source position.
type CompileError struct {
	Field   string
	Message string
	Pos     token.Pos
}

func (e *CompileError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// CompileTitration parses a CUE value into a Definition.
// Uses the CUE SDK's Go API directly (not CLI subprocess).
//
// The CUE value should be the titration struct itself, e.g.:
//
//	ctx := cuecontext.New()
//	v := ctx.CompileString(`titration: acetic: { ... }`)
//	def, err := CompileTitration(v.LookupPath(cue.ParsePath("titration.acetic")))
func CompileTitration(v cue.Value) (*Definition, error) {
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	def := &Definition{}

	// Titration name comes from the struct label (the path selector).
	labels := v.Path().Selectors()
	if len(labels) > 0 {
		def.Name = labels[len(labels)-1].String()
	}

	typeVal := v.LookupPath(cue.ParsePath("type"))
	if !typeVal.Exists() {
		return nil, &CompileError{
			Field:   "type",
			Message: "type is required",
			Pos:     v.Pos(),
		}
	}
	typeStr, err := typeVal.String()
	if err != nil {
		return nil, formatCUEError(err)
	}
	def.State.Type = chem.TitrationType(typeStr)

	analyte := v.LookupPath(cue.ParsePath("analyte"))
	if !analyte.Exists() {
		return nil, &CompileError{
			Field:   "analyte",
			Message: "analyte is required",
			Pos:     v.Pos(),
		}
	}
	def.State.AnalyteConc, err = requiredFloat(analyte, "analyte.concentration", "concentration")
	if err != nil {
		return nil, err
	}
	def.State.AnalyteVol, err = requiredFloat(analyte, "analyte.volume", "volume")
	if err != nil {
		return nil, err
	}

	titrant := v.LookupPath(cue.ParsePath("titrant"))
	if !titrant.Exists() {
		return nil, &CompileError{
			Field:   "titrant",
			Message: "titrant is required",
			Pos:     v.Pos(),
		}
	}
	def.State.TitrantConc, err = requiredFloat(titrant, "titrant.concentration", "concentration")
	if err != nil {
		return nil, err
	}
	def.State.TitrantMax, err = requiredFloat(titrant, "titrant.max", "max")
	if err != nil {
		return nil, err
	}

	// Dissociation constants are optional at compile time; Validate
	// enforces which ones each titration type needs.
	if def.State.PKa, err = optionalFloat(v, "pKa"); err != nil {
		return nil, err
	}
	if def.State.PKb, err = optionalFloat(v, "pKb"); err != nil {
		return nil, err
	}
	if def.State.PKa2, err = optionalFloat(v, "pKa2"); err != nil {
		return nil, err
	}
	if def.State.PKa3, err = optionalFloat(v, "pKa3"); err != nil {
		return nil, err
	}

	return def, nil
}

func requiredFloat(v cue.Value, field, path string) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return 0, &CompileError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", field),
			Pos:     v.Pos(),
		}
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return f, nil
}

func optionalFloat(v cue.Value, path string) (float64, error) {
	fv := v.LookupPath(cue.ParsePath(path))
	if !fv.Exists() {
		return 0, nil
	}
	f, err := fv.Float64()
	if err != nil {
		return 0, formatCUEError(err)
	}
	return f, nil
}

// formatCUEError extracts position info from CUE errors.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	// CUE errors may contain multiple errors
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	firstErr := errs[0]
	positions := errors.Positions(firstErr)
	if len(positions) > 0 {
		return &CompileError{
			Field:   "cue",
			Message: firstErr.Error(),
			Pos:     positions[0],
		}
	}

	return err
}
