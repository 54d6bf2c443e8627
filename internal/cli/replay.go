package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/store"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	DB    string // SQLite database path
	Token string // optional single run token
}

// ReplayReport is the JSON payload for a replay verification.
type ReplayReport struct {
	Runs      []*store.ReplayResult `json:"runs"`
	Clean     int                   `json:"clean"`
	Divergent int                   `json:"divergent"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Verify recorded runs reproduce bit for bit",
		Long: `Recompute recorded runs from their stored parameters and compare
every pH against the stored value. Any bit-level difference is a
divergence: either the storage was modified or the solver changed
since the run was recorded.

Exit codes:
  0 - all replayed runs reproduce exactly
  1 - at least one run diverges
  2 - command error (database not found, unknown token)

Examples:
  burette replay --db runs.db
  burette replay --db runs.db --token 0192d5a0-...`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "SQLite database with recorded runs (required)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "verify a single run token")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if _, err := os.Stat(opts.DB); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", opts.DB))
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("open database %s", opts.DB), err)
	}
	defer st.Close()

	ctx := cmd.Context()

	var tokens []string
	if opts.Token != "" {
		tokens = []string{opts.Token}
	} else {
		summaries, err := st.ListRuns(ctx)
		if err != nil {
			return WrapExitError(ExitCommandError, "list runs", err)
		}
		for _, s := range summaries {
			tokens = append(tokens, s.Token)
		}
	}

	report := ReplayReport{Runs: []*store.ReplayResult{}}
	for _, token := range tokens {
		res, err := st.Replay(ctx, token)
		if errors.Is(err, store.ErrRunNotFound) {
			return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", token))
		}
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("replay %s", token), err)
		}

		report.Runs = append(report.Runs, res)
		if res.Clean() {
			report.Clean++
		} else {
			report.Divergent++
		}
	}

	if formatter.Format == "json" {
		if err := formatter.Success(report); err != nil {
			return err
		}
		if report.Divergent > 0 {
			return NewExitError(ExitFailure, fmt.Sprintf("%d run(s) diverged", report.Divergent))
		}
		return nil
	}

	w := formatter.Writer
	for _, res := range report.Runs {
		if res.Clean() {
			fmt.Fprintf(w, "✓ %s (%d samples)\n", res.Token, res.Samples)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", res.Token)
		if !res.HashMatch {
			fmt.Fprintln(w, "  parameter hash mismatch")
		}
		for _, d := range res.Divergences {
			fmt.Fprintf(w, "  seq %d at %g mL: stored %.17g, recomputed %.17g\n",
				d.Seq, d.Volume, d.Stored, d.Got)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Replay Summary: %d clean, %d divergent, %d total\n",
		report.Clean, report.Divergent, len(report.Runs))

	if report.Divergent > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d run(s) diverged", report.Divergent))
	}
	return nil
}
