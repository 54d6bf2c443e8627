package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/chem"
	"github.com/halfeq/burette/internal/scenario"
	"github.com/halfeq/burette/internal/sweep"
)

// PointsResult is the JSON payload for equivalence points.
type PointsResult struct {
	Name   string                  `json:"name"`
	Points []chem.EquivalencePoint `json:"points"`
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "points <defs-dir> <name>",
		Short: "List equivalence points",
		Long: `List the stoichiometric equivalence volumes of a named titration,
one per titratable proton, with the solved pH at each.

Examples:
  burette points ./defs phosphoric
  burette points ./defs acetic --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(rootOpts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runPoints(opts *RootOptions, defsDir, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	result, _, err := loadDefinitions(formatter, defsDir, scenario.LoadModeFailFast)
	if err != nil {
		return err
	}

	def, err := findDefinition(formatter, result, name)
	if err != nil {
		return err
	}

	points := chem.EquivalencePoints(def.State)

	if formatter.Format == "json" {
		return formatter.Success(PointsResult{Name: def.Name, Points: points})
	}

	w := formatter.Writer
	if len(points) == 0 {
		fmt.Fprintf(w, "%s: no equivalence points (titrant concentration is zero)\n", def.Name)
		return nil
	}

	fmt.Fprintf(w, "%s (%s)\n\n", def.Name, def.State.Type)
	fmt.Fprintf(w, "%-20s %10s %10s\n", "label", "vol (mL)", "pH")
	for _, p := range points {
		fmt.Fprintf(w, "%-20s %10.3f %10.4f\n", p.Label, p.VolumeML, sweep.SolveAt(def.State, p.VolumeML))
	}
	return nil
}
