package storage

import (
	"context"
	"time"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

//go:generate moq -out entities_mock.go . EntityStorage

// SyncedMark records the version of an entity captured at push-selection
// time. MarkSynced writes exactly this version into last_synced_version,
// so a re-mutation mid-push leaves the row dirty for the next cycle
// instead of being silently dropped.
type SyncedMark struct {
	ID      string
	Version int64
}

// EntityStorage defines the client-side persistence contract for syncable
// entities. One implementation serves every resource type.
type EntityStorage interface {
	// SaveEntity stores or replaces an entity in its resource bucket
	SaveEntity(ctx context.Context, entity *models.Entity) error

	// GetEntity retrieves an entity by id, tombstones included
	// Returns ErrEntityNotFound if no row exists
	GetEntity(ctx context.Context, resource, id string) (*models.Entity, error)

	// ListEntities returns all live (non-tombstoned) entities of one
	// resource for the owner
	ListEntities(ctx context.Context, owner, resource string) ([]*models.Entity, error)

	// ListDirty returns entities whose version exceeds their
	// last_synced_version, including never-synced rows
	ListDirty(ctx context.Context, owner, resource string) ([]*models.Entity, error)

	// MarkSynced sets last_synced_version to each mark's captured version
	// and last_synced_at to at, after a successful push
	MarkSynced(ctx context.Context, resource string, marks []SyncedMark, at time.Time) error

	// DeleteEntity removes a row entirely (hard delete)
	DeleteEntity(ctx context.Context, resource, id string) error

	// ApplyPage commits one pulled page in a single transaction: the
	// merged survivors, the hard deletes and the advanced cursor land
	// together or not at all
	ApplyPage(ctx context.Context, userID, resource string, upserts []*models.Entity, deletes []string, cursor models.Cursor) error
}
