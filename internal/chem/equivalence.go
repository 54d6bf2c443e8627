package chem

// EquivalencePoint marks a titrant volume at which one proton-transfer
// equivalence is reached.
type EquivalencePoint struct {
	VolumeML float64 `json:"volume_ml"`
	Label    string  `json:"label"`
}

var ordinalLabels = [...]string{"first equivalence", "second equivalence", "third equivalence"}

// EquivalencePoints returns the stoichiometric equivalence volumes for
// the titration, in increasing order: one point per titratable proton
// (so two for a diprotic acid, three for a triprotic one).
//
// This is pure stoichiometry - analyte moles over titrant
// concentration - with no equilibrium math. The mL factors cancel, so
// the volume is computed directly in mL without unit round trips. A
// non-positive titrant concentration leaves the ratio undefined and
// yields an empty result.
func EquivalencePoints(s State) []EquivalencePoint {
	if s.TitrantConc <= 0 {
		return nil
	}

	n := s.Type.ProtonCount()
	points := make([]EquivalencePoint, 0, n)
	for i := 1; i <= n; i++ {
		label := "equivalence"
		if n > 1 {
			label = ordinalLabels[i-1]
		}
		points = append(points, EquivalencePoint{
			VolumeML: float64(i) * s.AnalyteConc * s.AnalyteVol / s.TitrantConc,
			Label:    label,
		})
	}
	return points
}
