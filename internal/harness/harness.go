package harness

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/halfeq/burette/internal/sweep"
	"github.com/halfeq/burette/internal/testutil"
)

// Run executes a scenario and returns the result.
//
// The sweep uses a fresh logical clock and fixed run tokens, so the
// computed record is identical across runs of the same scenario.
//
// Execution flow:
//  1. Build the solver state from the titration spec
//  2. Compute the full curve at the configured step
//  3. Evaluate point checks against reference values
//  4. Evaluate curve properties
//  5. Return result with pass/fail and collected failures
func Run(scenario *Scenario) (*Result, error) {
	state := scenario.Titration.State()

	rec, err := sweep.Run(scenario.Name, state, scenario.Sweep.Step,
		sweep.NewClock(), testutil.NewFixedTokenGenerator(scenario.RunToken))
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", scenario.Name, err)
	}

	result := NewResult()
	result.Record = rec

	for i, check := range scenario.Checks {
		got := sweep.SolveAt(state, check.At)
		if math.Abs(got-check.PH) > check.Within {
			result.AddFailure("checks[%d]: pH at %.4g mL = %.4f, want %.4f within %.3g",
				i, check.At, got, check.PH, check.Within)
		}
	}

	for _, prop := range scenario.Properties {
		checkProperty(result, prop, rec)
	}

	slog.Debug("scenario complete",
		"name", scenario.Name,
		"pass", result.Pass,
		"failures", len(result.Failures))

	return result, nil
}
