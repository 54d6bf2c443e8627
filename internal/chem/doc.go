// Package chem implements the acid-base equilibrium core: the pH solver
// and the equivalence-point calculator.
//
// Both entry points are pure functions of a State snapshot. The solver
// never mutates its input and holds no state between calls, so repeated
// calls with the same snapshot are bit-for-bit reproducible. This is what
// makes curve re-plotting, recorded-run replay, and golden comparison
// possible downstream.
//
// ARCHITECTURE:
//
// Regime Dispatch:
// Solve switches on the titration type (a closed seven-variant enum) and
// routes to one regime algorithm per type. Each weak-species algorithm
// handles its untouched flask in closed form and then solves one exact
// charge balance for the whole sweep, so buffer, equivalence zone, and
// excess are a single continuous curve rather than stitched regions.
//
// Numeric Policy:
// Closed-form algebra is used only where it is exact (strong/strong,
// initial weak solutions). Everywhere else the solver runs a
// 150-iteration bisection over [H+] in log space - the geometric
// midpoint handles the ~14-decade range of physical [H+] and 150
// iterations exceed double-precision resolution across that range.
// All bisections share a single monotonic root finder (bisectLog).
//
// Error Policy:
// No path returns an error. Degenerate input (zero total volume, unknown
// type) short-circuits to neutral pH 7.00; near-zero concentrations are
// floored before taking logarithms; every result is clamped to [0, 14].
package chem
