// Package sweep produces deterministic titration curves.
//
// A sweep walks titrant volume from zero to the burette maximum in
// fixed steps, calls the equilibrium solver at each step, and emits an
// ordered sample series. Determinism is the whole contract:
//
//   - Samples are stamped with a monotonic logical sequence number from
//     Clock, never with wall-clock time.
//   - Volumes are computed as step multiples from the index, not by
//     accumulation, so the same inputs yield bit-identical curves.
//   - Run identity is content-addressed: the SHA-256 of the canonical
//     JSON encoding of the run parameters. Two runs with the same
//     parameters share a ParamHash regardless of token or store.
//
// Run tokens (UUIDv7 in production, fixed values under test) identify a
// particular recording of a curve; ParamHash identifies the curve
// itself.
package sweep
