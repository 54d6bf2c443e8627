// Package harness provides a conformance testing framework for the
// titration solver.
//
// A scenario is a YAML file describing one titration, a sweep step,
// point checks against reference pH values, and curve-level properties
// to verify. Running a scenario computes the full curve with fixed run
// tokens so the resulting record is byte-identical across runs, then
// evaluates every check and property, collecting all failures rather
// than stopping at the first.
//
// Point checks carry an explicit tolerance because reference values
// come from tables and hand calculation. Curve properties are exact
// claims about the computed record:
//
//   - monotonic: pH moves in one direction as titrant is added
//   - clamped: every sample lies in [0, 14] and is never NaN
//   - continuous: no spurious jumps outside equivalence regions
//
// Golden comparison covers the structural parts of a record that are
// exact by construction (names, step, equivalence point tables).
// Solver pH values are checked with tolerances, never as golden bytes.
package harness
