package boltdb

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

const (
	testUser     = "user-1"
	testResource = models.ResourceQuizzes
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func testEntity(id string, version int64) *models.Entity {
	return &models.Entity{
		ID:        id,
		Owner:     testUser,
		Resource:  testResource,
		Version:   version,
		Payload:   json.RawMessage(`{"title":"Networking"}`),
		UpdatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndGetEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("e1", 1)
	require.NoError(t, s.SaveEntity(ctx, entity))

	got, err := s.GetEntity(ctx, testResource, "e1")
	require.NoError(t, err)
	assert.Equal(t, entity, got)
}

func TestGetEntityNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetEntity(context.Background(), testResource, "missing")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestGetEntityIncludesTombstones(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	deletedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	entity := testEntity("e1", 2)
	entity.DeletedAt = &deletedAt
	require.NoError(t, s.SaveEntity(ctx, entity))

	got, err := s.GetEntity(ctx, testResource, "e1")
	require.NoError(t, err)
	assert.True(t, got.Tombstoned())
}

func TestUnknownResource(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	entity := testEntity("e1", 1)
	entity.Resource = "bookmarks"
	assert.ErrorIs(t, s.SaveEntity(ctx, entity), storage.ErrUnknownResource)

	_, err := s.GetEntity(ctx, "bookmarks", "e1")
	assert.ErrorIs(t, err, storage.ErrUnknownResource)
}

func TestListEntitiesFiltersTombstonesAndOwners(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	live := testEntity("e1", 1)
	require.NoError(t, s.SaveEntity(ctx, live))

	deletedAt := time.Now().UTC()
	dead := testEntity("e2", 2)
	dead.DeletedAt = &deletedAt
	require.NoError(t, s.SaveEntity(ctx, dead))

	foreign := testEntity("e3", 1)
	foreign.Owner = "user-2"
	require.NoError(t, s.SaveEntity(ctx, foreign))

	entities, err := s.ListEntities(ctx, testUser, testResource)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "e1", entities[0].ID)
}

func TestListDirty(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Never synced: dirty.
	require.NoError(t, s.SaveEntity(ctx, testEntity("e1", 1)))

	// Synced at current version: clean.
	clean := testEntity("e2", 3)
	v3 := int64(3)
	clean.LastSyncedVersion = &v3
	require.NoError(t, s.SaveEntity(ctx, clean))

	// Mutated past the synced version: dirty again.
	mutated := testEntity("e3", 4)
	mutated.LastSyncedVersion = &v3
	require.NoError(t, s.SaveEntity(ctx, mutated))

	// Dirty tombstones propagate too.
	deletedAt := time.Now().UTC()
	tombstone := testEntity("e4", 2)
	tombstone.DeletedAt = &deletedAt
	require.NoError(t, s.SaveEntity(ctx, tombstone))

	dirty, err := s.ListDirty(ctx, testUser, testResource)
	require.NoError(t, err)

	ids := make([]string, 0, len(dirty))
	for _, e := range dirty {
		ids = append(ids, e.ID)
	}
	assert.ElementsMatch(t, []string{"e1", "e3", "e4"}, ids)
}

func TestMarkSynced(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("e1", 2)))
	require.NoError(t, s.SaveEntity(ctx, testEntity("e2", 1)))

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	marks := []storage.SyncedMark{
		{ID: "e1", Version: 2},
		{ID: "e2", Version: 1},
		{ID: "gone", Version: 1}, // hard-deleted mid-push, skipped
	}
	require.NoError(t, s.MarkSynced(ctx, testResource, marks, at))

	e1, err := s.GetEntity(ctx, testResource, "e1")
	require.NoError(t, err)
	assert.False(t, e1.Dirty())
	require.NotNil(t, e1.LastSyncedAt)
	assert.Equal(t, at, *e1.LastSyncedAt)
}

func TestMarkSyncedKeepsRemutatedRowDirty(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("e1", 2)))

	// The row mutates after push selection captured version 2.
	require.NoError(t, s.SaveEntity(ctx, testEntity("e1", 3)))

	require.NoError(t, s.MarkSynced(ctx, testResource,
		[]storage.SyncedMark{{ID: "e1", Version: 2}}, time.Now()))

	got, err := s.GetEntity(ctx, testResource, "e1")
	require.NoError(t, err)
	require.NotNil(t, got.LastSyncedVersion)
	assert.Equal(t, int64(2), *got.LastSyncedVersion)
	assert.True(t, got.Dirty())
}

func TestDeleteEntity(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("e1", 1)))
	require.NoError(t, s.DeleteEntity(ctx, testResource, "e1"))

	_, err := s.GetEntity(ctx, testResource, "e1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	// Deleting a missing row is a no-op.
	require.NoError(t, s.DeleteEntity(ctx, testResource, "e1"))
}

func TestApplyPageCommitsDataAndCursorTogether(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveEntity(ctx, testEntity("old", 1)))

	cursor := models.Cursor{
		LastSyncedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
		LastID:       "e2",
	}
	upserts := []*models.Entity{testEntity("e1", 2), testEntity("e2", 1)}
	require.NoError(t, s.ApplyPage(ctx, testUser, testResource, upserts, []string{"old"}, cursor))

	_, err := s.GetEntity(ctx, testResource, "old")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	got, err := s.GetEntity(ctx, testResource, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Version)

	stored, err := s.GetCursor(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.Equal(t, cursor.LastSyncedAt, stored.LastSyncedAt)
	assert.Equal(t, "e2", stored.LastID)
	assert.True(t, stored.Synced)
}

func TestApplyPageRejectsZeroCursor(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	err := s.ApplyPage(ctx, testUser, testResource,
		[]*models.Entity{testEntity("e1", 1)}, nil, models.Cursor{})
	assert.ErrorIs(t, err, storage.ErrInvalidCursor)

	// The rejected page left no trace.
	_, err = s.GetEntity(ctx, testResource, "e1")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestCursorRoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	// Before any sync: the zero sentinel.
	cursor, err := s.GetCursor(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.True(t, cursor.IsZero())
	assert.False(t, cursor.Synced)

	want := models.Cursor{
		LastSyncedAt: time.Date(2026, 3, 1, 10, 0, 0, 123456789, time.UTC),
		LastID:       "e7",
	}
	require.NoError(t, s.SetCursor(ctx, testUser, testResource, want))

	got, err := s.GetCursor(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.Equal(t, want.LastSyncedAt, got.LastSyncedAt)
	assert.Equal(t, want.LastID, got.LastID)
	assert.True(t, got.Synced)
}

func TestCursorIsolatedPerUserAndResource(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	cursor := models.Cursor{LastSyncedAt: time.Now().UTC(), LastID: "e1"}
	require.NoError(t, s.SetCursor(ctx, testUser, testResource, cursor))

	other, err := s.GetCursor(ctx, "user-2", testResource)
	require.NoError(t, err)
	assert.True(t, other.IsZero())

	other, err = s.GetCursor(ctx, testUser, models.ResourceResults)
	require.NoError(t, err)
	assert.True(t, other.IsZero())
}

func TestSetCursorRejectsZeroTimestamp(t *testing.T) {
	s := newTestStorage(t)

	err := s.SetCursor(context.Background(), testUser, testResource, models.Cursor{LastID: "e1"})
	assert.ErrorIs(t, err, storage.ErrInvalidCursor)
}

func TestBlockLifecycle(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	// No block initially.
	block, err := s.GetBlock(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.Nil(t, block)

	require.NoError(t, s.SetBlock(ctx, testUser, testResource, "schema_drift", time.Hour))

	block, err = s.GetBlock(ctx, testUser, testResource)
	require.NoError(t, err)
	require.NotNil(t, block)
	assert.Equal(t, "schema_drift", block.Reason)
	assert.Equal(t, now, block.BlockedAt)
	assert.Equal(t, time.Hour, block.TTL())

	// Blocks are scoped to the (user, resource) pair.
	other, err := s.GetBlock(ctx, "user-2", testResource)
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, s.ClearBlock(ctx, testUser, testResource))
	block, err = s.GetBlock(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.Nil(t, block)
}

func TestBlockExpiresByTTL(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	trippedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return trippedAt }
	require.NoError(t, s.SetBlock(ctx, testUser, testResource, "schema_drift", time.Hour))

	// Still inside the window.
	s.now = func() time.Time { return trippedAt.Add(59 * time.Minute) }
	block, err := s.GetBlock(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.NotNil(t, block)

	// Past the window the block reads as absent.
	s.now = func() time.Time { return trippedAt.Add(61 * time.Minute) }
	block, err = s.GetBlock(ctx, testUser, testResource)
	require.NoError(t, err)
	assert.Nil(t, block)
}
