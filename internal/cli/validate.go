package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/scenario"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                       `json:"valid"`
	Errors []scenario.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <defs-dir>",
		Short: "Validate titration definitions",
		Long: `Validate CUE titration definitions without computing anything.

Checks syntax, required fields, and chemistry rules: known titration
type, positive concentrations and volumes, the dissociation constants
the type needs, and ascending polyprotic pK values.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, defsDir string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	// Collect-all mode: one validate run reports every problem.
	result, loadErrors, err := loadDefinitions(formatter, defsDir, scenario.LoadModeCollectAll)
	if err != nil {
		return err
	}

	var validationErrors []scenario.ValidationError
	for _, loadErr := range loadErrors {
		var le *scenario.LoadError
		if errors.As(loadErr, &le) {
			validationErrors = append(validationErrors, scenario.ValidationError{
				Field:   "load",
				Message: le.Message,
				Code:    le.Code,
			})
		} else {
			validationErrors = append(validationErrors, scenario.ValidationError{
				Field:   "load",
				Message: loadErr.Error(),
				Code:    scenario.ErrCodeGeneric,
			})
		}
	}

	for i := range result.Definitions {
		def := &result.Definitions[i]
		formatter.VerboseLog("Validating titration: %s", def.Name)
		for _, vErr := range scenario.Validate(def) {
			vErr.Field = def.Name + "." + vErr.Field
			validationErrors = append(validationErrors, vErr)
		}
	}

	if len(validationErrors) > 0 {
		return outputValidationErrors(formatter, validationErrors)
	}

	return outputValidateSuccess(formatter, len(result.Definitions))
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, count int) error {
	if formatter.Format == "json" {
		return formatter.Success(ValidationResult{Valid: true})
	}

	fmt.Fprintf(formatter.Writer, "✓ %d titration(s) valid\n", count)
	return nil
}

// outputValidationErrors outputs multiple validation errors.
func outputValidationErrors(formatter *OutputFormatter, errs []scenario.ValidationError) error {
	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data: ValidationResult{
				Valid:  false,
				Errors: errs,
			},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, err := range errs {
		fmt.Fprintf(formatter.Writer, "  %s: %s: %s\n", err.Code, err.Field, err.Message)
	}
	fmt.Fprintln(formatter.Writer)

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}
