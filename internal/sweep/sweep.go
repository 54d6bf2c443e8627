package sweep

import (
	"fmt"
	"log/slog"

	"github.com/halfeq/burette/internal/chem"
)

// Sample is one point on a titration curve.
type Sample struct {
	Seq        int64   `json:"seq"`
	TitrantVol float64 `json:"titrant_vol"`
	PH         float64 `json:"ph"`
}

// Record is a completed sweep: identity, parameters, and the ordered
// sample series with its equivalence markers.
type Record struct {
	Token     string                  `json:"token"`
	Name      string                  `json:"name"`
	ParamHash string                  `json:"param_hash"`
	State     chem.State              `json:"state"`
	StepML    float64                 `json:"step_ml"`
	Samples   []Sample                `json:"samples"`
	Points    []chem.EquivalencePoint `json:"points"`
}

// Run sweeps the titration from zero delivered titrant to TitrantMax in
// stepML increments and returns the recorded curve. The final step is
// shortened so the last sample lands exactly on TitrantMax.
//
// The state's TitrantVol field is ignored as input: a sweep always
// starts from an untouched flask. Volumes are derived from the sample
// index, not accumulated, so identical inputs produce bit-identical
// records.
func Run(name string, s chem.State, stepML float64, clock *Clock, tokens TokenGenerator) (*Record, error) {
	if stepML <= 0 {
		return nil, fmt.Errorf("sweep %q: step must be positive, got %v", name, stepML)
	}
	if s.TitrantMax < 0 {
		return nil, fmt.Errorf("sweep %q: negative titrant max %v", name, s.TitrantMax)
	}

	s.TitrantVol = 0
	hash, err := ParamHash(name, s, stepML)
	if err != nil {
		return nil, fmt.Errorf("sweep %q: %w", name, err)
	}

	rec := &Record{
		Token:     tokens.Generate(),
		Name:      name,
		ParamHash: hash,
		State:     s,
		StepML:    stepML,
		Points:    chem.EquivalencePoints(s),
	}

	slog.Info("sweep starting",
		"name", name,
		"token", rec.Token,
		"type", string(s.Type),
		"step_ml", stepML,
		"max_ml", s.TitrantMax)

	for i := 0; ; i++ {
		vol := float64(i) * stepML
		last := vol >= s.TitrantMax
		if last {
			vol = s.TitrantMax
		}

		at := s
		at.TitrantVol = vol
		sample := Sample{
			Seq:        clock.Next(),
			TitrantVol: vol,
			PH:         chem.Solve(at),
		}
		rec.Samples = append(rec.Samples, sample)
		slog.Debug("sample", "seq", sample.Seq, "vol", vol, "ph", sample.PH)

		if last {
			break
		}
	}

	slog.Info("sweep complete", "name", name, "samples", len(rec.Samples))
	return rec, nil
}

// SolveAt returns the pH of the titration at a single cumulative
// titrant volume. Thin convenience over the solver for CLI readouts.
func SolveAt(s chem.State, titrantVol float64) float64 {
	s.TitrantVol = titrantVol
	return chem.Solve(s)
}
