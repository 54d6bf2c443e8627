package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/halfeq/burette/internal/chem"
)

// Scenario defines a conformance test scenario.
// Scenarios compute one titration curve and assert on reference pH
// values and curve-level properties.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Titration declares the system under test.
	Titration TitrationSpec `yaml:"titration"`

	// Sweep controls curve sampling.
	Sweep SweepSpec `yaml:"sweep"`

	// Checks compare solved pH values against references at given
	// titrant volumes. Each check carries its own tolerance.
	Checks []Check `yaml:"checks,omitempty"`

	// Properties lists curve-level properties to verify.
	// Supported: monotonic, clamped, continuous.
	Properties []string `yaml:"properties,omitempty"`

	// RunToken is an optional fixed run token prefix for deterministic
	// golden comparison. If empty, defaults to "test-run".
	RunToken string `yaml:"run_token,omitempty"`
}

// TitrationSpec mirrors the CUE definition shape in YAML.
type TitrationSpec struct {
	Type    string  `yaml:"type"`
	Analyte Reagent `yaml:"analyte"`
	Titrant Reagent `yaml:"titrant"`
	PKa     float64 `yaml:"pKa,omitempty"`
	PKb     float64 `yaml:"pKb,omitempty"`
	PKa2    float64 `yaml:"pKa2,omitempty"`
	PKa3    float64 `yaml:"pKa3,omitempty"`
}

// Reagent describes one solution. Analytes use Volume, titrants Max.
type Reagent struct {
	Concentration float64 `yaml:"concentration"`
	Volume        float64 `yaml:"volume,omitempty"`
	Max           float64 `yaml:"max,omitempty"`
}

// State converts the spec into a solver state with the burette at zero.
func (ts TitrationSpec) State() chem.State {
	return chem.State{
		Type:        chem.TitrationType(ts.Type),
		AnalyteConc: ts.Analyte.Concentration,
		AnalyteVol:  ts.Analyte.Volume,
		TitrantConc: ts.Titrant.Concentration,
		TitrantMax:  ts.Titrant.Max,
		PKa:         ts.PKa,
		PKb:         ts.PKb,
		PKa2:        ts.PKa2,
		PKa3:        ts.PKa3,
	}
}

// SweepSpec controls curve sampling.
type SweepSpec struct {
	// Step is the titrant increment in mL. Must be positive.
	Step float64 `yaml:"step"`
}

// Check compares the solved pH at one titrant volume against a
// reference value.
type Check struct {
	// At is the titrant volume in mL.
	At float64 `yaml:"at"`

	// PH is the expected value.
	PH float64 `yaml:"ph"`

	// Within is the allowed absolute deviation. Must be positive;
	// reference values come from tables, not from the solver itself.
	Within float64 `yaml:"within"`
}

// Property name constants.
const (
	PropMonotonic  = "monotonic"
	PropClamped    = "clamped"
	PropContinuous = "continuous"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "check:" vs "checks:".
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if s.Titration.Type == "" {
		return fmt.Errorf("titration.type is required")
	}
	if !chem.TitrationType(s.Titration.Type).Valid() {
		return fmt.Errorf("titration.type: unknown type %q", s.Titration.Type)
	}

	if s.Sweep.Step <= 0 {
		return fmt.Errorf("sweep.step must be positive")
	}

	if len(s.Checks) == 0 && len(s.Properties) == 0 {
		return fmt.Errorf("at least one check or property is required")
	}

	for i, check := range s.Checks {
		if check.At < 0 {
			return fmt.Errorf("checks[%d]: at must be non-negative", i)
		}
		if check.Within <= 0 {
			return fmt.Errorf("checks[%d]: within must be positive", i)
		}
	}

	for i, prop := range s.Properties {
		switch prop {
		case PropMonotonic, PropClamped, PropContinuous:
		default:
			return fmt.Errorf("properties[%d]: unknown property %q", i, prop)
		}
	}

	return nil
}
