// Package store provides SQLite-backed durable storage for recorded
// titration sweeps.
//
// The store holds three tables:
//   - Runs: one row per recorded sweep (token, parameters, param hash)
//   - Samples: the ordered (seq, titrant_vol, ph) curve of each run
//   - Equivalence Points: the stoichiometric markers of each run
//
// # Determinism
//
// All sample reads use ORDER BY seq ASC so a run reads back in exactly
// the order it was swept. Ordering never relies on rowids or wall-clock
// time. Combined with the solver being a pure function, this makes
// Replay a meaningful check: recomputing a stored run from its
// parameters must reproduce every stored pH bit for bit.
//
// # Idempotency
//
// WriteRun uses ON CONFLICT(token) DO NOTHING: re-recording a run under
// the same token is a silent no-op, so crashed-and-retried recordings
// never duplicate samples.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: samples and points cannot outlive their run
//
// Run identity (param_hash) is computed in internal/sweep from
// canonical JSON and SHA-256 with domain separation.
package store
