package store

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/halfeq/burette/internal/sweep"
)

// Divergence records one sample whose recomputed pH differs from the
// stored value. Stored and Got are the raw float64 bits rendered as
// values; any difference at all counts, there is no tolerance.
type Divergence struct {
	Seq    int64   `json:"seq"`
	Volume float64 `json:"titrant_vol"`
	Stored float64 `json:"stored_ph"`
	Got    float64 `json:"recomputed_ph"`
}

// ReplayResult reports a replay verification of one stored run.
type ReplayResult struct {
	Token       string       `json:"token"`
	ParamHash   string       `json:"param_hash"`
	HashMatch   bool         `json:"hash_match"`
	Samples     int          `json:"samples"`
	Divergences []Divergence `json:"divergences"`
}

// Clean reports whether the replay reproduced the stored run exactly.
func (r *ReplayResult) Clean() bool {
	return r.HashMatch && len(r.Divergences) == 0
}

// Replay recomputes a stored run from its parameters and compares the
// result against what was recorded. Every stored pH must be reproduced
// bit for bit, and the parameter hash recomputed from the stored state
// must equal the stored hash. Divergences indicate either tampered
// storage or a solver change since the run was recorded.
func (s *Store) Replay(ctx context.Context, token string) (*ReplayResult, error) {
	rec, err := s.ReadRun(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("replay: %w", err)
	}

	res := &ReplayResult{
		Token:       token,
		ParamHash:   rec.ParamHash,
		Samples:     len(rec.Samples),
		Divergences: []Divergence{},
	}

	hash, err := sweep.ParamHash(rec.Name, rec.State, rec.StepML)
	if err != nil {
		return nil, fmt.Errorf("replay: rehash params: %w", err)
	}
	res.HashMatch = hash == rec.ParamHash

	for _, sample := range rec.Samples {
		got := sweep.SolveAt(rec.State, sample.TitrantVol)
		if got != sample.PH {
			res.Divergences = append(res.Divergences, Divergence{
				Seq:    sample.Seq,
				Volume: sample.TitrantVol,
				Stored: sample.PH,
				Got:    got,
			})
		}
	}

	slog.Debug("replay complete",
		"token", token,
		"samples", res.Samples,
		"divergences", len(res.Divergences),
		"hash_match", res.HashMatch)

	return res, nil
}
