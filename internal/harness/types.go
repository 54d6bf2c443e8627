package harness

import (
	"fmt"

	"github.com/halfeq/burette/internal/sweep"
)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass indicates overall scenario success.
	// True if every check and property holds.
	Pass bool `json:"pass"`

	// Failures contains one message per failed check or property.
	// Empty if Pass is true.
	Failures []string `json:"failures,omitempty"`

	// Record is the computed sweep, kept for golden comparison and
	// inspection of failing curves.
	Record *sweep.Record `json:"record,omitempty"`
}

// NewResult creates a new passing result.
// Used as the starting point for scenario execution.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Failures: []string{},
	}
}

// AddFailure records a failure message and marks the result as failed.
func (r *Result) AddFailure(format string, args ...any) {
	r.Failures = append(r.Failures, fmt.Sprintf(format, args...))
	r.Pass = false
}
