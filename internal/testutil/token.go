// Package testutil provides deterministic helpers for tests.
package testutil

import "fmt"

// FixedTokenGenerator returns predetermined run tokens in sequence.
//
// Sweeps recorded under fixed tokens produce byte-identical store
// contents across runs, which is what golden comparison and replay
// tests depend on. Production code uses sweep.UUIDv7Generator instead.
type FixedTokenGenerator struct {
	prefix string
	next   int
}

// NewFixedTokenGenerator creates a generator producing "<prefix>-0001",
// "<prefix>-0002", and so on. An empty prefix defaults to "test-run".
func NewFixedTokenGenerator(prefix string) *FixedTokenGenerator {
	if prefix == "" {
		prefix = "test-run"
	}
	return &FixedTokenGenerator{prefix: prefix}
}

// Generate returns the next predetermined token.
func (g *FixedTokenGenerator) Generate() string {
	g.next++
	return fmt.Sprintf("%s-%04d", g.prefix, g.next)
}
