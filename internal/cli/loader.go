package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/halfeq/burette/internal/scenario"
)

// loadDefinitions loads a definitions directory, converting loader
// errors into command-level exit errors.
func loadDefinitions(formatter *OutputFormatter, dir string, mode scenario.LoadMode) (*scenario.LoadResult, []error, error) {
	result, loadErrors := scenario.Load(dir, mode)
	if len(loadErrors) > 0 && (result == nil || mode == scenario.LoadModeFailFast) {
		var loadErr *scenario.LoadError
		if errors.As(loadErrors[0], &loadErr) {
			_ = formatter.Error(loadErr.Code, loadErr.Message, nil)
			return nil, nil, NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", loadErr.Code, loadErr.Message))
		}
		_ = formatter.Error(scenario.ErrCodeGeneric, loadErrors[0].Error(), nil)
		return nil, nil, NewExitError(ExitCommandError, loadErrors[0].Error())
	}
	formatter.VerboseLog("Found %d CUE file(s) in %s", result.FileCount, dir)
	return result, loadErrors, nil
}

// findDefinition resolves one named titration from a load result,
// validating it before use. The pH of an invalid system is undefined,
// so solve-like commands refuse to run on one.
func findDefinition(formatter *OutputFormatter, result *scenario.LoadResult, name string) (*scenario.Definition, error) {
	for i := range result.Definitions {
		def := &result.Definitions[i]
		if def.Name != name {
			continue
		}
		if vErrs := scenario.Validate(def); len(vErrs) > 0 {
			_ = formatter.Error(vErrs[0].Code, fmt.Sprintf("titration %q is invalid: %s", name, vErrs[0].Error()), vErrs)
			return nil, NewExitError(ExitFailure, fmt.Sprintf("titration %q failed validation", name))
		}
		return def, nil
	}

	known := make([]string, len(result.Definitions))
	for i, def := range result.Definitions {
		known[i] = def.Name
	}
	msg := fmt.Sprintf("titration %q not found (known: %v)", name, known)
	_ = formatter.Error(scenario.ErrCodeNotFound, msg, nil)
	return nil, NewExitError(ExitCommandError, msg)
}

// newFormatter builds the standard formatter for a command invocation.
// Verbose logs go to stderr so they never corrupt JSON output.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
