package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/scenario"
	"github.com/halfeq/burette/internal/sweep"
)

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Volume float64 // delivered titrant volume in mL
}

// SolveResult is the payload for a single pH readout.
type SolveResult struct {
	Name       string  `json:"name"`
	TitrantVol float64 `json:"titrant_vol"`
	PH         float64 `json:"ph"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <defs-dir> <name>",
		Short: "Solve the pH at one titrant volume",
		Long: `Solve the pH of a named titration at a single delivered titrant volume.

Examples:
  burette solve ./defs acetic --volume 12.5
  burette solve ./defs acetic --volume 25 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Volume, "volume", 0, "delivered titrant volume in mL")

	return cmd
}

func runSolve(opts *SolveOptions, defsDir, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Volume < 0 {
		return NewExitError(ExitCommandError, fmt.Sprintf("volume must be non-negative, got %g", opts.Volume))
	}

	result, _, err := loadDefinitions(formatter, defsDir, scenario.LoadModeFailFast)
	if err != nil {
		return err
	}

	def, err := findDefinition(formatter, result, name)
	if err != nil {
		return err
	}

	ph := sweep.SolveAt(def.State, opts.Volume)
	payload := SolveResult{Name: def.Name, TitrantVol: opts.Volume, PH: ph}

	if formatter.Format == "json" {
		return formatter.Success(payload)
	}

	fmt.Fprintf(formatter.Writer, "%s at %g mL: pH %.4f\n", def.Name, opts.Volume, ph)
	return nil
}
