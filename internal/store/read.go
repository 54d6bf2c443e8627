package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/halfeq/burette/internal/chem"
	"github.com/halfeq/burette/internal/sweep"
)

// ErrRunNotFound is returned when a run token has no stored record.
var ErrRunNotFound = errors.New("run not found")

// RunSummary is the listing view of a stored run.
type RunSummary struct {
	Token         string `json:"token"`
	Name          string `json:"name"`
	TitrationType string `json:"titration_type"`
	ParamHash     string `json:"param_hash"`
	SampleCount   int    `json:"sample_count"`
}

// ReadRun reconstructs a full sweep record from storage. Samples come
// back ORDER BY seq ASC, equivalence points in proton order.
func (s *Store) ReadRun(ctx context.Context, token string) (*sweep.Record, error) {
	rec := &sweep.Record{Token: token}
	var titrationType string

	err := s.db.QueryRowContext(ctx, `
		SELECT name, titration_type,
		       analyte_conc, analyte_vol, titrant_conc, titrant_max,
		       p_ka, p_kb, p_ka2, p_ka3,
		       step_ml, param_hash
		FROM runs
		WHERE token = ?
	`, token).Scan(
		&rec.Name,
		&titrationType,
		&rec.State.AnalyteConc,
		&rec.State.AnalyteVol,
		&rec.State.TitrantConc,
		&rec.State.TitrantMax,
		&rec.State.PKa,
		&rec.State.PKb,
		&rec.State.PKa2,
		&rec.State.PKa3,
		&rec.StepML,
		&rec.ParamHash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("read run %q: %w", token, ErrRunNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read run %q: %w", token, err)
	}
	rec.State.Type = chem.TitrationType(titrationType)

	rec.Samples, err = s.readSamples(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("read run %q: %w", token, err)
	}

	rec.Points, err = s.readPoints(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("read run %q: %w", token, err)
	}

	return rec, nil
}

func (s *Store) readSamples(ctx context.Context, token string) ([]sweep.Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, titrant_vol, ph
		FROM samples
		WHERE run_token = ?
		ORDER BY seq ASC
	`, token)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	var samples []sweep.Sample
	for rows.Next() {
		var sample sweep.Sample
		if err := rows.Scan(&sample.Seq, &sample.TitrantVol, &sample.PH); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}
	return samples, nil
}

func (s *Store) readPoints(ctx context.Context, token string) ([]chem.EquivalencePoint, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT volume_ml, label
		FROM equivalence_points
		WHERE run_token = ?
		ORDER BY idx ASC
	`, token)
	if err != nil {
		return nil, fmt.Errorf("query points: %w", err)
	}
	defer rows.Close()

	var points []chem.EquivalencePoint
	for rows.Next() {
		var p chem.EquivalencePoint
		if err := rows.Scan(&p.VolumeML, &p.Label); err != nil {
			return nil, fmt.Errorf("scan point: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate points: %w", err)
	}
	return points, nil
}

// ListRuns returns summaries of all stored runs ordered by token.
// UUIDv7 tokens sort by creation time, so the listing is chronological
// for production recordings. Returns an empty slice when the store is
// empty.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.token, r.name, r.titration_type, r.param_hash,
		       (SELECT COUNT(*) FROM samples WHERE run_token = r.token)
		FROM runs r
		ORDER BY r.token ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	summaries := []RunSummary{}
	for rows.Next() {
		var sum RunSummary
		if err := rows.Scan(&sum.Token, &sum.Name, &sum.TitrationType, &sum.ParamHash, &sum.SampleCount); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return summaries, nil
}
