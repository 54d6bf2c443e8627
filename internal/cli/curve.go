package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/scenario"
	"github.com/halfeq/burette/internal/store"
	"github.com/halfeq/burette/internal/sweep"
)

// CurveOptions holds flags for the curve command.
type CurveOptions struct {
	*RootOptions
	Step float64 // titrant increment in mL
	DB   string  // optional SQLite path for recording
}

// CurveResult is the JSON payload for a computed curve.
type CurveResult struct {
	Token     string         `json:"token,omitempty"`
	Name      string         `json:"name"`
	ParamHash string         `json:"param_hash"`
	StepML    float64        `json:"step_ml"`
	Samples   []sweep.Sample `json:"samples"`
	Recorded  bool           `json:"recorded"`
}

// NewCurveCommand creates the curve command.
func NewCurveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CurveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "curve <defs-dir> <name>",
		Short: "Compute a full titration curve",
		Long: `Compute the pH curve of a named titration from zero delivered titrant
to the burette maximum.

With --db the run is recorded to SQLite under a fresh UUIDv7 token,
so it can be replayed bit for bit later. Recording the same
parameters again creates a new run; each invocation gets its own
token.

Examples:
  burette curve ./defs acetic --step 0.5
  burette curve ./defs acetic --step 0.5 --db runs.db
  burette curve ./defs acetic --step 2.5 --format json`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCurve(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Step, "step", 0.5, "titrant increment in mL")
	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite database to record the run to")

	return cmd
}

func runCurve(opts *CurveOptions, defsDir, name string, cmd *cobra.Command) error {
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

	recorded := false
	if opts.DB != "" {
		st, err := store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("open database %s", opts.DB), err)
		}
		defer st.Close()

		inserted, err := st.WriteRun(cmd.Context(), rec)
		if err != nil {
			return WrapExitError(ExitCommandError, "record run", err)
		}
		recorded = inserted
		formatter.VerboseLog("Recorded run %s to %s", rec.Token, opts.DB)
	}

	if formatter.Format == "json" {
		return formatter.Success(CurveResult{
			Token:     rec.Token,
			Name:      rec.Name,
			ParamHash: rec.ParamHash,
			StepML:    rec.StepML,
			Samples:   rec.Samples,
			Recorded:  recorded,
		})
	}

	w := formatter.Writer
	fmt.Fprintf(w, "%s (%s)\n", rec.Name, rec.State.Type)
	fmt.Fprintf(w, "token: %s\n", rec.Token)
	fmt.Fprintf(w, "params: %s\n\n", rec.ParamHash)
	fmt.Fprintf(w, "%10s  %8s\n", "vol (mL)", "pH")
	for _, s := range rec.Samples {
		fmt.Fprintf(w, "%10.3f  %8.4f\n", s.TitrantVol, s.PH)
	}
	if recorded {
		fmt.Fprintf(w, "\nrecorded to %s\n", opts.DB)
	}
	return nil
}
