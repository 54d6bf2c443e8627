// Package scenario loads titration definitions written in CUE and
// compiles them into chem.State values.
//
// # ARCHITECTURE
//
// A definition file declares one or more titrations under a shared
// "titration" struct:
//
//	titration: acetic: {
//		type: "strong_base_weak_acid"
//		analyte: {concentration: 0.1, volume: 25.0}
//		titrant: {concentration: 0.1, max: 50.0}
//		pKa: 4.74
//	}
//
// Loading happens in three stages:
//
//  1. Load: cue/load discovers .cue files in a directory and builds a
//     single unified cue.Value (Load, this package).
//  2. Compile: each field of the "titration" struct is parsed into a
//     Definition via the CUE Go API, never a CLI subprocess
//     (CompileTitration).
//  3. Validate: compiled definitions are checked against chemistry
//     rules with stable E1xx error codes (Validate).
//
// Compilation errors carry CUE source positions so the CLI can print
// file:line:col diagnostics. Validation collects every error rather
// than failing fast, so one pass over a definition reports all
// problems.
package scenario
