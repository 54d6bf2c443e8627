package chem

// TitrationType selects the regime algorithm used by Solve.
//
// The seven variants form a closed set. The first species named is the
// titrant in the burette and the second is the analyte in the flask,
// with one historical exception: weak_acid_weak_base places the weak
// acid in the flask and the weak base in the burette.
type TitrationType string

const (
	// StrongBaseStrongAcid titrates a strong acid analyte with a strong base.
	StrongBaseStrongAcid TitrationType = "strong_base_strong_acid"

	// StrongAcidStrongBase titrates a strong base analyte with a strong acid.
	StrongAcidStrongBase TitrationType = "strong_acid_strong_base"

	// StrongBaseWeakAcid titrates a weak acid analyte (PKa) with a strong base.
	StrongBaseWeakAcid TitrationType = "strong_base_weak_acid"

	// StrongAcidWeakBase titrates a weak base analyte (PKb) with a strong acid.
	StrongAcidWeakBase TitrationType = "strong_acid_weak_base"

	// WeakAcidWeakBase titrates a weak acid analyte (PKa) with a weak base
	// titrant (PKb).
	WeakAcidWeakBase TitrationType = "weak_acid_weak_base"

	// StrongBaseDiproticAcid titrates a diprotic acid analyte (PKa, PKa2)
	// with a strong base.
	StrongBaseDiproticAcid TitrationType = "strong_base_diprotic_acid"

	// StrongBaseTriproticAcid titrates a triprotic acid analyte
	// (PKa, PKa2, PKa3) with a strong base.
	StrongBaseTriproticAcid TitrationType = "strong_base_triprotic_acid"
)

// Types lists all titration types in declaration order.
var Types = []TitrationType{
	StrongBaseStrongAcid,
	StrongAcidStrongBase,
	StrongBaseWeakAcid,
	StrongAcidWeakBase,
	WeakAcidWeakBase,
	StrongBaseDiproticAcid,
	StrongBaseTriproticAcid,
}

// Valid reports whether t is one of the seven known titration types.
func (t TitrationType) Valid() bool {
	switch t {
	case StrongBaseStrongAcid, StrongAcidStrongBase,
		StrongBaseWeakAcid, StrongAcidWeakBase, WeakAcidWeakBase,
		StrongBaseDiproticAcid, StrongBaseTriproticAcid:
		return true
	}
	return false
}

// ProtonCount returns the number of titratable protons on the analyte:
// 3 for a triprotic acid, 2 for a diprotic acid, 1 otherwise.
func (t TitrationType) ProtonCount() int {
	switch t {
	case StrongBaseTriproticAcid:
		return 3
	case StrongBaseDiproticAcid:
		return 2
	default:
		return 1
	}
}

// AcidTitrant reports whether the burette holds the acid, i.e. whether
// pH is non-increasing as titrant is added.
func (t TitrationType) AcidTitrant() bool {
	return t == StrongAcidStrongBase || t == StrongAcidWeakBase
}

// State is a titration snapshot: the flask, the burette, and the
// equilibrium exponents of any weak species involved.
//
// State is owned by the caller and mutated only by titrant addition.
// Solve and EquivalencePoints treat it as read-only and retain no
// reference to it between calls.
//
// Units: concentrations in mol/L, volumes in mL. TitrantVol is the
// cumulative volume delivered from the burette.
type State struct {
	Type TitrationType `json:"type"`

	AnalyteConc float64 `json:"analyte_conc"`
	AnalyteVol  float64 `json:"analyte_vol"`
	TitrantConc float64 `json:"titrant_conc"`
	TitrantVol  float64 `json:"titrant_vol"`
	TitrantMax  float64 `json:"titrant_max"`

	PKa  float64 `json:"p_ka,omitempty"`
	PKb  float64 `json:"p_kb,omitempty"`
	PKa2 float64 `json:"p_ka2,omitempty"`
	PKa3 float64 `json:"p_ka3,omitempty"`
}

// totalVolumeL returns the combined flask volume in liters.
func (s State) totalVolumeL() float64 {
	return (s.AnalyteVol + s.TitrantVol) / 1000
}

// analyteMoles returns moles of analyte initially in the flask.
func (s State) analyteMoles() float64 {
	return s.AnalyteConc * s.AnalyteVol / 1000
}

// titrantMoles returns moles of titrant delivered so far.
func (s State) titrantMoles() float64 {
	return s.TitrantConc * s.TitrantVol / 1000
}
