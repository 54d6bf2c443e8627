package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/halfeq/burette/internal/sweep"
)

// CurveSnapshot captures the structural parts of a scenario run for
// golden comparison. Everything here is exact by construction; solved
// pH values stay out because references for them carry tolerances.
type CurveSnapshot struct {
	ScenarioName string
	RunToken     string
	StepML       float64
	SampleCount  int
	Points       []PointSnapshot
}

// PointSnapshot is one equivalence marker in a snapshot.
type PointSnapshot struct {
	VolumeML float64
	Label    string
}

// toCanonicalMap converts a snapshot to a map for canonical JSON
// serialization, so golden bytes are stable across field reordering.
func (s *CurveSnapshot) toCanonicalMap() map[string]any {
	points := make([]any, len(s.Points))
	for i, p := range s.Points {
		points[i] = map[string]any{
			"volume_ml": p.VolumeML,
			"label":     p.Label,
		}
	}

	result := map[string]any{
		"scenario_name": s.ScenarioName,
		"step_ml":       s.StepML,
		"sample_count":  s.SampleCount,
		"points":        points,
	}
	if s.RunToken != "" {
		result["run_token"] = s.RunToken
	}
	return result
}

// AssertGolden compares a result's structural snapshot against a
// golden file stored in testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, result *Result) error {
	t.Helper()

	snapshot := CurveSnapshot{
		ScenarioName: name,
		RunToken:     result.Record.Token,
		StepML:       result.Record.StepML,
		SampleCount:  len(result.Record.Samples),
	}
	for _, ep := range result.Record.Points {
		snapshot.Points = append(snapshot.Points, PointSnapshot{
			VolumeML: ep.VolumeML,
			Label:    ep.Label,
		})
	}

	data, err := sweep.MarshalCanonical(snapshot.toCanonicalMap())
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)

	return nil
}
