package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/plot"
	"github.com/halfeq/burette/internal/scenario"
	"github.com/halfeq/burette/internal/sweep"
)

// PlotOptions holds flags for the plot command.
type PlotOptions struct {
	*RootOptions
	Step float64 // titrant increment in mL
	Out  string  // output image path
}

// PlotResult is the JSON payload for a rendered curve image.
type PlotResult struct {
	Name    string `json:"name"`
	Out     string `json:"out"`
	Samples int    `json:"samples"`
}

// NewPlotCommand creates the plot command.
func NewPlotCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlotOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plot <defs-dir> <name>",
		Short: "Render a titration curve image",
		Long: `Compute a titration curve and render it as an image. The output
format follows the file extension (.png, .svg, .pdf). Equivalence
points appear as dashed vertical markers.

Examples:
  burette plot ./defs acetic --out acetic.png
  burette plot ./defs phosphoric --step 0.25 --out phosphoric.svg`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Step, "step", 0.5, "titrant increment in mL")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "", "output image path (required)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runPlot(opts *PlotOptions, defsDir, name string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	result, _, err := loadDefinitions(formatter, defsDir, scenario.LoadModeFailFast)
	if err != nil {
		return err
	}

	def, err := findDefinition(formatter, result, name)
	if err != nil {
		return err
	}

	rec, err := sweep.Run(def.Name, def.State, opts.Step, sweep.NewClock(), &sweep.UUIDv7Generator{})
	if err != nil {
		return WrapExitError(ExitCommandError, "sweep failed", err)
	}

	if err := plot.Render(rec, opts.Out); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("render %s", opts.Out), err)
	}

	if formatter.Format == "json" {
		return formatter.Success(PlotResult{Name: def.Name, Out: opts.Out, Samples: len(rec.Samples)})
	}

	fmt.Fprintf(formatter.Writer, "✓ %s: %d samples rendered to %s\n", def.Name, len(rec.Samples), opts.Out)
	return nil
}
