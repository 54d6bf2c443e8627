package sweep

import "github.com/google/uuid"

// TokenGenerator produces run tokens for recorded sweeps.
// Implemented by UUIDv7Generator (production) and by the fixed
// generator in internal/testutil (deterministic tests).
type TokenGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run tokens.
//
// UUIDv7 embeds a timestamp in the most significant bits, so listing
// runs by token also lists them by creation time. The token is opaque
// identity only; nothing orders samples by it.
//
// Thread-safety: stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate returns a new hyphenated UUIDv7 string.
// Panics if UUID generation fails, which does not happen in practice.
func (g UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}
