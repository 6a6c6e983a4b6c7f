package data

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

const testOwner = "user-1"

// memStore is an in-memory EntityStorage sufficient for the data layer:
// the mutation rules under test only need save/get/list.
func memStore() (*storage.EntityStorageMock, map[string]*models.Entity) {
	rows := make(map[string]*models.Entity)

	mock := &storage.EntityStorageMock{
		SaveEntityFunc: func(ctx context.Context, entity *models.Entity) error {
			rows[entity.Resource+"/"+entity.ID] = entity.Clone()
			return nil
		},
		GetEntityFunc: func(ctx context.Context, resource, id string) (*models.Entity, error) {
			entity, ok := rows[resource+"/"+id]
			if !ok {
				return nil, storage.ErrEntityNotFound
			}
			return entity.Clone(), nil
		},
		ListEntitiesFunc: func(ctx context.Context, owner, resource string) ([]*models.Entity, error) {
			var out []*models.Entity
			for _, entity := range rows {
				if entity.Owner == owner && entity.Resource == resource && !entity.Tombstoned() {
					out = append(out, entity.Clone())
				}
			}
			return out, nil
		},
	}
	return mock, rows
}

func TestAddQuizCreatesVersionOne(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	quiz := &models.Quiz{Title: "Subnetting", SchemaVersion: 1}
	require.NoError(t, svc.AddQuiz(context.Background(), testOwner, quiz))
	require.NotEmpty(t, quiz.ID)

	entity := rows[models.ResourceQuizzes+"/"+quiz.ID]
	require.NotNil(t, entity)
	assert.Equal(t, int64(1), entity.Version)
	assert.Equal(t, testOwner, entity.Owner)
	assert.NotEmpty(t, entity.ContentHash)
	assert.True(t, entity.Dirty())
	assert.Nil(t, entity.LastSyncedVersion)

	var stored models.Quiz
	require.NoError(t, json.Unmarshal(entity.Payload, &stored))
	assert.Equal(t, "Subnetting", stored.Title)
}

func TestUpdateQuizBumpsVersion(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	quiz := &models.Quiz{Title: "Subnetting"}
	require.NoError(t, svc.AddQuiz(context.Background(), testOwner, quiz))

	// Simulate a completed sync so the update has bookkeeping to preserve.
	key := models.ResourceQuizzes + "/" + quiz.ID
	v1 := int64(1)
	rows[key].LastSyncedVersion = &v1
	hashBefore := rows[key].ContentHash

	quiz.Title = "Subnetting v2"
	require.NoError(t, svc.UpdateQuiz(context.Background(), testOwner, quiz))

	entity := rows[key]
	assert.Equal(t, int64(2), entity.Version)
	assert.NotEqual(t, hashBefore, entity.ContentHash)
	require.NotNil(t, entity.LastSyncedVersion)
	assert.Equal(t, int64(1), *entity.LastSyncedVersion)
	assert.True(t, entity.Dirty())
}

func TestGetQuiz(t *testing.T) {
	store, _ := memStore()
	svc := NewService(store)

	quiz := &models.Quiz{Title: "Subnetting"}
	require.NoError(t, svc.AddQuiz(context.Background(), testOwner, quiz))

	got, err := svc.GetQuiz(context.Background(), quiz.ID)
	require.NoError(t, err)
	assert.Equal(t, "Subnetting", got.Title)

	_, err = svc.GetQuiz(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)
}

func TestDeleteQuizIsSoftDelete(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	quiz := &models.Quiz{Title: "Subnetting"}
	require.NoError(t, svc.AddQuiz(context.Background(), testOwner, quiz))
	require.NoError(t, svc.DeleteQuiz(context.Background(), quiz.ID))

	entity := rows[models.ResourceQuizzes+"/"+quiz.ID]
	require.NotNil(t, entity, "tombstone row must remain for sync")
	assert.True(t, entity.Tombstoned())
	assert.Equal(t, int64(2), entity.Version)

	// The tombstone disappears from reads.
	_, err := svc.GetQuiz(context.Background(), quiz.ID)
	assert.ErrorIs(t, err, storage.ErrEntityNotFound)

	quizzes, err := svc.ListQuizzes(context.Background(), testOwner)
	require.NoError(t, err)
	assert.Empty(t, quizzes)

	// Deleting twice is a no-op, not another version bump.
	require.NoError(t, svc.DeleteQuiz(context.Background(), quiz.ID))
	assert.Equal(t, int64(2), rows[models.ResourceQuizzes+"/"+quiz.ID].Version)
}

func TestAddResult(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	result := &models.Result{
		QuizID:  "q1",
		TakenAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Score:   87.5,
	}
	require.NoError(t, svc.AddResult(context.Background(), testOwner, result))
	require.NotEmpty(t, result.ID)

	entity := rows[models.ResourceResults+"/"+result.ID]
	require.NotNil(t, entity)
	assert.Equal(t, models.ResourceResults, entity.Resource)
	assert.Equal(t, int64(1), entity.Version)
}

func TestSaveLearningStateCreateThenUpdate(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	state := &models.LearningState{Subject: "subnetting", Stage: 1}
	require.NoError(t, svc.SaveLearningState(context.Background(), testOwner, state))
	require.NotEmpty(t, state.ID)

	key := models.ResourceLearningStates + "/" + state.ID
	assert.Equal(t, int64(1), rows[key].Version)

	state.Stage = 2
	require.NoError(t, svc.SaveLearningState(context.Background(), testOwner, state))
	assert.Equal(t, int64(2), rows[key].Version)
}

func TestSaveLearningStateRejectsBadStage(t *testing.T) {
	store, rows := memStore()
	svc := NewService(store)

	state := &models.LearningState{Subject: "subnetting", Stage: 9}
	err := svc.SaveLearningState(context.Background(), testOwner, state)
	assert.ErrorIs(t, err, models.ErrStageOutOfRange)
	assert.Empty(t, rows)
}
