package sync

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

func intPtr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func makeEntity(version int64, lastSynced *int64) *models.Entity {
	return &models.Entity{
		ID:                "e1",
		Owner:             "user-1",
		Resource:          models.ResourceQuizzes,
		Version:           version,
		Payload:           json.RawMessage(`{"title":"local"}`),
		UpdatedAt:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		LastSyncedVersion: lastSynced,
	}
}

func makeRemote(version int64) *models.Entity {
	return &models.Entity{
		ID:        "e1",
		Owner:     "user-1",
		Resource:  models.ResourceQuizzes,
		Version:   version,
		Payload:   json.RawMessage(`{"title":"remote"}`),
		UpdatedAt: time.Date(2026, 3, 1, 11, 0, 0, 0, time.UTC),
	}
}

func TestResolveNoLocal(t *testing.T) {
	remote := makeRemote(3)

	res := Resolve(nil, remote)

	assert.Equal(t, WinnerRemote, res.Winner)
	require.NotNil(t, res.Merged.LastSyncedVersion)
	assert.Equal(t, int64(3), *res.Merged.LastSyncedVersion)
	assert.False(t, res.Merged.Dirty())
}

func TestResolveDirtyLocalKeepsChanges(t *testing.T) {
	// Dirty local at the same version as remote: local wins and stays
	// dirty, so the push phase sends it.
	local := makeEntity(3, intPtr(2))
	res := Resolve(local, makeRemote(3))

	assert.Equal(t, WinnerLocal, res.Winner)
	assert.Equal(t, json.RawMessage(`{"title":"local"}`), res.Merged.Payload)
	assert.True(t, res.Merged.Dirty())

	// Dirty local above the remote version: same outcome.
	local = makeEntity(5, intPtr(2))
	res = Resolve(local, makeRemote(3))
	assert.Equal(t, WinnerLocal, res.Winner)
	assert.True(t, res.Merged.Dirty())
}

func TestResolveHigherRemoteWins(t *testing.T) {
	// Even a dirty local copy loses to a strictly newer remote version.
	local := makeEntity(2, nil)
	remote := makeRemote(4)

	res := Resolve(local, remote)

	assert.Equal(t, WinnerRemote, res.Winner)
	assert.Equal(t, json.RawMessage(`{"title":"remote"}`), res.Merged.Payload)
	require.NotNil(t, res.Merged.LastSyncedVersion)
	assert.Equal(t, int64(4), *res.Merged.LastSyncedVersion)
}

func TestResolveEqualVersionTombstonePreference(t *testing.T) {
	// Clean local, equal-version remote tombstone: the delete propagates.
	local := makeEntity(3, intPtr(3))
	remote := makeRemote(3)
	remote.DeletedAt = timePtr(time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC))

	res := Resolve(local, remote)

	assert.Equal(t, WinnerRemote, res.Winner)
	assert.True(t, res.Merged.Tombstoned())
}

func TestResolveEqualVersionAgreement(t *testing.T) {
	// Clean local, equal-version live remote: both sides agree, the local
	// copy is confirmed clean.
	local := makeEntity(3, intPtr(2))
	local.LastSyncedVersion = intPtr(3)

	res := Resolve(local, makeRemote(3))

	assert.Equal(t, WinnerLocal, res.Winner)
	assert.False(t, res.Merged.Dirty())
	assert.Equal(t, json.RawMessage(`{"title":"local"}`), res.Merged.Payload)
}

func TestResolveStaleRemote(t *testing.T) {
	// A lower-version remote record never overwrites local state. This
	// covers the anti-resurrection case: an old live record arriving after
	// a local tombstone at a higher version.
	local := makeEntity(4, intPtr(4))
	local.DeletedAt = timePtr(time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	res := Resolve(local, makeRemote(2))

	assert.Equal(t, WinnerLocal, res.Winner)
	assert.True(t, res.Merged.Tombstoned())
}

func TestResolveDoesNotAliasInputs(t *testing.T) {
	local := makeEntity(3, intPtr(2))
	res := Resolve(local, makeRemote(3))

	res.Merged.Payload[10] = 'X'
	res.Merged.Version = 99

	assert.Equal(t, json.RawMessage(`{"title":"local"}`), local.Payload)
	assert.Equal(t, int64(3), local.Version)
}
