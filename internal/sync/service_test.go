package sync

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/TJZine/CertPrep.ai-sub000/internal/client/api"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

const (
	testUser     = "user-1"
	testResource = models.ResourceQuizzes
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fixture bundles the service under test with its mocks.
type fixture struct {
	svc      *service
	client   *clientapi.ClientAPIMock
	entities *storage.EntityStorageMock
	state    *storage.SyncStateStorageMock
}

// newFixture builds a service whose mocks default to an empty, healthy
// store: no block, zero cursor, nothing dirty, empty remote stream.
// Tests override the pieces they care about.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	client := &clientapi.ClientAPIMock{
		FetchFunc: func(ctx context.Context, userID, resource string, since models.Cursor, pageSize int) (*api.FetchResponse, error) {
			return &api.FetchResponse{}, nil
		},
		UpsertFunc: func(ctx context.Context, userID, resource string, records []api.SyncRecord) (*api.UpsertResponse, error) {
			return &api.UpsertResponse{Accepted: len(records)}, nil
		},
	}
	entities := &storage.EntityStorageMock{
		GetEntityFunc: func(ctx context.Context, resource, id string) (*models.Entity, error) {
			return nil, storage.ErrEntityNotFound
		},
		ListDirtyFunc: func(ctx context.Context, owner, resource string) ([]*models.Entity, error) {
			return nil, nil
		},
		MarkSyncedFunc: func(ctx context.Context, resource string, marks []storage.SyncedMark, at time.Time) error {
			return nil
		},
		ApplyPageFunc: func(ctx context.Context, userID, resource string, upserts []*models.Entity, deletes []string, cursor models.Cursor) error {
			return nil
		},
	}
	state := &storage.SyncStateStorageMock{
		GetCursorFunc: func(ctx context.Context, userID, resource string) (models.Cursor, error) {
			return models.Cursor{}, nil
		},
		GetBlockFunc: func(ctx context.Context, userID, resource string) (*models.Block, error) {
			return nil, nil
		},
		SetBlockFunc: func(ctx context.Context, userID, resource, reason string, ttl time.Duration) error {
			return nil
		},
	}

	svc := newService(client, entities, state, slog.New(slog.DiscardHandler))
	svc.now = func() time.Time { return testNow }

	return &fixture{svc: svc, client: client, entities: entities, state: state}
}

func TestSyncUnknownResource(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Sync(context.Background(), testUser, "bookmarks")
	assert.Error(t, err)
	assert.Empty(t, f.client.FetchCalls())
}

func TestSyncGateLoserTouchesNothing(t *testing.T) {
	f := newFixture(t)

	require.True(t, f.svc.gate.TryAcquire(testUser, testResource))
	defer f.svc.gate.Release(testUser, testResource)

	outcome, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	assert.False(t, outcome.Complete)
	assert.Equal(t, ReasonGateUnavailable, outcome.Reason)
	assert.Empty(t, f.client.FetchCalls())
	assert.Empty(t, f.client.UpsertCalls())
	assert.Empty(t, f.entities.ApplyPageCalls())
	assert.Empty(t, f.state.GetBlockCalls())
}

func TestSyncGateReleasedAfterRun(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	// A second run must be able to take the gate again.
	assert.True(t, f.svc.gate.TryAcquire(testUser, testResource))
}

func TestSyncBlockedByCircuitBreaker(t *testing.T) {
	f := newFixture(t)
	f.state.GetBlockFunc = func(ctx context.Context, userID, resource string) (*models.Block, error) {
		return &models.Block{
			Reason:    ReasonSchemaDrift,
			BlockedAt: testNow.Add(-time.Minute),
			TTLMillis: time.Hour.Milliseconds(),
		}, nil
	}

	outcome, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	assert.False(t, outcome.Complete)
	assert.Equal(t, ReasonBlocked, outcome.Reason)
	assert.Empty(t, f.client.FetchCalls())
	assert.Empty(t, f.client.UpsertCalls())
	// A blocked run never reaches syncing, so the status stays idle.
	assert.Equal(t, StatusIdle, f.svc.Status(testResource))
}

func TestSyncCompleteOnEmptyStream(t *testing.T) {
	f := newFixture(t)

	outcome, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	assert.True(t, outcome.Complete)
	assert.Empty(t, outcome.Reason)
	assert.Equal(t, StatusCompleted, f.svc.Status(testResource))
}

func TestSyncStatusTransitions(t *testing.T) {
	f := newFixture(t)

	var transitions []Status
	f.svc.Subscribe(func(resource string, status Status) {
		assert.Equal(t, testResource, resource)
		transitions = append(transitions, status)
	})

	_, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	assert.Equal(t, []Status{StatusSyncing, StatusCompleted}, transitions)
}

func TestSyncStatusErrorOnIncompleteRun(t *testing.T) {
	f := newFixture(t)
	f.client.FetchFunc = func(ctx context.Context, userID, resource string, since models.Cursor, pageSize int) (*api.FetchResponse, error) {
		return nil, assert.AnError
	}

	outcome, err := f.svc.Sync(context.Background(), testUser, testResource)
	require.NoError(t, err)

	assert.False(t, outcome.Complete)
	assert.Equal(t, ReasonNetworkError, outcome.Reason)
	assert.Equal(t, StatusError, f.svc.Status(testResource))
}

func TestSyncAllCoversEveryResource(t *testing.T) {
	f := newFixture(t)

	outcomes, err := f.svc.SyncAll(context.Background(), testUser)
	require.NoError(t, err)

	require.Len(t, outcomes, len(models.Resources))
	for _, resource := range models.Resources {
		require.Contains(t, outcomes, resource)
		assert.True(t, outcomes[resource].Complete)
	}
}

func TestSyncAllContinuesPastIncompleteResource(t *testing.T) {
	f := newFixture(t)
	f.client.FetchFunc = func(ctx context.Context, userID, resource string, since models.Cursor, pageSize int) (*api.FetchResponse, error) {
		if resource == models.ResourceQuizzes {
			return nil, assert.AnError
		}
		return &api.FetchResponse{}, nil
	}

	outcomes, err := f.svc.SyncAll(context.Background(), testUser)
	require.NoError(t, err)

	assert.Equal(t, ReasonNetworkError, outcomes[models.ResourceQuizzes].Reason)
	assert.True(t, outcomes[models.ResourceResults].Complete)
	assert.True(t, outcomes[models.ResourceLearningStates].Complete)
}

func TestPendingCount(t *testing.T) {
	f := newFixture(t)
	f.entities.ListDirtyFunc = func(ctx context.Context, owner, resource string) ([]*models.Entity, error) {
		return []*models.Entity{{ID: "a"}, {ID: "b"}}, nil
	}

	count, err := f.svc.PendingCount(context.Background(), testUser, testResource)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestStatusIdleBeforeFirstRun(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, StatusIdle, f.svc.Status(testResource))
}
