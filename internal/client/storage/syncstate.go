package storage

import (
	"context"
	"time"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

//go:generate moq -out syncstate_mock.go . SyncStateStorage

// SyncStateStorage persists the per-(user, resource) cursor and circuit
// breaker rows in the generic sync-state table.
type SyncStateStorage interface {
	// GetCursor returns the stored cursor, or the epoch-zero / nil-id
	// sentinel if no sync has happened yet
	GetCursor(ctx context.Context, userID, resource string) (models.Cursor, error)

	// SetCursor stores the cursor. Fails with ErrInvalidCursor if the
	// timestamp is not a valid instant. Callers must only set values
	// derived from already-applied data; once set, GetCursor never
	// returns an earlier value for the same resource.
	SetCursor(ctx context.Context, userID, resource string, cursor models.Cursor) error

	// GetBlock returns the active block, or nil when none is set or the
	// stored one has expired
	GetBlock(ctx context.Context, userID, resource string) (*models.Block, error)

	// SetBlock trips the circuit breaker with an opaque reason and a
	// cooldown window
	SetBlock(ctx context.Context, userID, resource, reason string, ttl time.Duration) error

	// ClearBlock removes the block; exposed for manual recovery
	ClearBlock(ctx context.Context, userID, resource string) error
}
