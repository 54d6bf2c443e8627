package store

import (
	"context"
	"fmt"

	"github.com/halfeq/burette/internal/sweep"
)

// WriteRun inserts a recorded sweep: the run row, its samples, and its
// equivalence points, atomically.
//
// Uses ON CONFLICT(token) DO NOTHING for idempotency: writing the same
// token twice is a silent no-op and the original samples are kept.
// Returns whether a new run was inserted.
func (s *Store) WriteRun(ctx context.Context, rec *sweep.Record) (inserted bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("write run: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	result, err := tx.ExecContext(ctx, `
		INSERT INTO runs
		(token, name, titration_type,
		 analyte_conc, analyte_vol, titrant_conc, titrant_max,
		 p_ka, p_kb, p_ka2, p_ka3,
		 step_ml, param_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(token) DO NOTHING
	`,
		rec.Token,
		rec.Name,
		string(rec.State.Type),
		rec.State.AnalyteConc,
		rec.State.AnalyteVol,
		rec.State.TitrantConc,
		rec.State.TitrantMax,
		rec.State.PKa,
		rec.State.PKb,
		rec.State.PKa2,
		rec.State.PKa3,
		rec.StepML,
		rec.ParamHash,
	)
	if err != nil {
		return false, fmt.Errorf("write run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write run: rows affected: %w", err)
	}
	if rows == 0 {
		// Token already recorded; keep the original run untouched.
		return false, tx.Commit()
	}

	for _, sample := range rec.Samples {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO samples (run_token, seq, titrant_vol, ph)
			VALUES (?, ?, ?, ?)
		`, rec.Token, sample.Seq, sample.TitrantVol, sample.PH); err != nil {
			return false, fmt.Errorf("write run: sample seq=%d: %w", sample.Seq, err)
		}
	}

	for i, p := range rec.Points {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO equivalence_points (run_token, idx, volume_ml, label)
			VALUES (?, ?, ?, ?)
		`, rec.Token, i, p.VolumeML, p.Label); err != nil {
			return false, fmt.Errorf("write run: point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("write run: commit: %w", err)
	}
	return true, nil
}
