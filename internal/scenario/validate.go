package scenario

import (
	"fmt"

	"github.com/halfeq/burette/internal/chem"
)

// Validation error codes (E100-E199)
const (
	ErrUnknownType     = "E101" // titration type not recognized
	ErrNonPositiveConc = "E102" // concentration must be > 0
	ErrNonPositiveVol  = "E103" // volume must be > 0
	ErrNegativeTitrant = "E104" // titrant concentration must be >= 0
	ErrMissingConstant = "E105" // required pK missing for the type
	ErrConstantOrder   = "E106" // polyprotic pK values out of order
	ErrNonPositiveMax  = "E107" // titrant max must be > 0
)

// ValidationError represents a chemistry validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Validate checks a compiled definition against chemistry rules.
// Returns all errors found (does not fail-fast).
func Validate(def *Definition) []ValidationError {
	var errs []ValidationError
	s := def.State

	if !s.Type.Valid() {
		errs = append(errs, ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown titration type %q", s.Type),
			Code:    ErrUnknownType,
		})
	}

	if s.AnalyteConc <= 0 {
		errs = append(errs, ValidationError{
			Field:   "analyte.concentration",
			Message: fmt.Sprintf("must be positive, got %g", s.AnalyteConc),
			Code:    ErrNonPositiveConc,
		})
	}
	if s.AnalyteVol <= 0 {
		errs = append(errs, ValidationError{
			Field:   "analyte.volume",
			Message: fmt.Sprintf("must be positive, got %g", s.AnalyteVol),
			Code:    ErrNonPositiveVol,
		})
	}
	if s.TitrantConc < 0 {
		errs = append(errs, ValidationError{
			Field:   "titrant.concentration",
			Message: fmt.Sprintf("must not be negative, got %g", s.TitrantConc),
			Code:    ErrNegativeTitrant,
		})
	}
	if s.TitrantMax <= 0 {
		errs = append(errs, ValidationError{
			Field:   "titrant.max",
			Message: fmt.Sprintf("must be positive, got %g", s.TitrantMax),
			Code:    ErrNonPositiveMax,
		})
	}

	for _, req := range requiredConstants(s.Type) {
		if req.value(s) <= 0 {
			errs = append(errs, ValidationError{
				Field:   req.field,
				Message: fmt.Sprintf("%s is required for type %q", req.field, s.Type),
				Code:    ErrMissingConstant,
			})
		}
	}

	// Successive dissociation constants must weaken: pKa < pKa2 < pKa3.
	if s.PKa2 > 0 && s.PKa > 0 && s.PKa2 <= s.PKa {
		errs = append(errs, ValidationError{
			Field:   "pKa2",
			Message: fmt.Sprintf("pKa2 (%g) must exceed pKa (%g)", s.PKa2, s.PKa),
			Code:    ErrConstantOrder,
		})
	}
	if s.PKa3 > 0 && s.PKa2 > 0 && s.PKa3 <= s.PKa2 {
		errs = append(errs, ValidationError{
			Field:   "pKa3",
			Message: fmt.Sprintf("pKa3 (%g) must exceed pKa2 (%g)", s.PKa3, s.PKa2),
			Code:    ErrConstantOrder,
		})
	}

	return errs
}

type constantReq struct {
	field string
	value func(chem.State) float64
}

func requiredConstants(t chem.TitrationType) []constantReq {
	pKa := constantReq{"pKa", func(s chem.State) float64 { return s.PKa }}
	pKb := constantReq{"pKb", func(s chem.State) float64 { return s.PKb }}
	pKa2 := constantReq{"pKa2", func(s chem.State) float64 { return s.PKa2 }}
	pKa3 := constantReq{"pKa3", func(s chem.State) float64 { return s.PKa3 }}

	switch t {
	case chem.StrongBaseWeakAcid:
		return []constantReq{pKa}
	case chem.StrongAcidWeakBase:
		return []constantReq{pKb}
	case chem.WeakAcidWeakBase:
		return []constantReq{pKa, pKb}
	case chem.StrongBaseDiproticAcid:
		return []constantReq{pKa, pKa2}
	case chem.StrongBaseTriproticAcid:
		return []constantReq{pKa, pKa2, pKa3}
	default:
		return nil
	}
}
