// Package data is the local mutation surface. Every accepted mutation
// bumps the entity version; the sync engine picks the row up on the next
// cycle because version now exceeds last_synced_version.
package data

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// Service defines client-side data operations over the local store.
type Service interface {
	AddQuiz(ctx context.Context, owner string, quiz *models.Quiz) error
	GetQuiz(ctx context.Context, id string) (*models.Quiz, error)
	ListQuizzes(ctx context.Context, owner string) ([]*models.Quiz, error)
	UpdateQuiz(ctx context.Context, owner string, quiz *models.Quiz) error
	DeleteQuiz(ctx context.Context, id string) error

	AddResult(ctx context.Context, owner string, result *models.Result) error
	ListResults(ctx context.Context, owner string) ([]*models.Result, error)
	DeleteResult(ctx context.Context, id string) error

	SaveLearningState(ctx context.Context, owner string, state *models.LearningState) error
	ListLearningStates(ctx context.Context, owner string) ([]*models.LearningState, error)
}

// service handles client-side data operations
type service struct {
	entities storage.EntityStorage
}

// NewService creates a new data service
func NewService(entities storage.EntityStorage) Service {
	return &service{entities: entities}
}

// AddQuiz adds a new quiz to local storage
func (s *service) AddQuiz(ctx context.Context, owner string, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.New().String()
	}
	return s.create(ctx, owner, models.ResourceQuizzes, quiz.ID, quiz)
}

// GetQuiz retrieves a quiz by id
func (s *service) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	entity, err := s.entities.GetEntity(ctx, models.ResourceQuizzes, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}
	if entity.Tombstoned() {
		return nil, storage.ErrEntityNotFound
	}

	var quiz models.Quiz
	if err := json.Unmarshal(entity.Payload, &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz: %w", err)
	}
	return &quiz, nil
}

// ListQuizzes returns all live quizzes for the owner
func (s *service) ListQuizzes(ctx context.Context, owner string) ([]*models.Quiz, error) {
	entities, err := s.entities.ListEntities(ctx, owner, models.ResourceQuizzes)
	if err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	quizzes := make([]*models.Quiz, 0, len(entities))
	for _, entity := range entities {
		var quiz models.Quiz
		if err := json.Unmarshal(entity.Payload, &quiz); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quiz %s: %w", entity.ID, err)
		}
		quizzes = append(quizzes, &quiz)
	}
	return quizzes, nil
}

// UpdateQuiz replaces a quiz's content and bumps the entity version
func (s *service) UpdateQuiz(ctx context.Context, owner string, quiz *models.Quiz) error {
	return s.update(ctx, models.ResourceQuizzes, quiz.ID, quiz)
}

// DeleteQuiz soft-deletes a quiz. The tombstone propagates on the next
// sync cycle.
func (s *service) DeleteQuiz(ctx context.Context, id string) error {
	return s.remove(ctx, models.ResourceQuizzes, id)
}

// AddResult records a completed quiz attempt
func (s *service) AddResult(ctx context.Context, owner string, result *models.Result) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	return s.create(ctx, owner, models.ResourceResults, result.ID, result)
}

// ListResults returns all live results for the owner
func (s *service) ListResults(ctx context.Context, owner string) ([]*models.Result, error) {
	entities, err := s.entities.ListEntities(ctx, owner, models.ResourceResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	results := make([]*models.Result, 0, len(entities))
	for _, entity := range entities {
		var result models.Result
		if err := json.Unmarshal(entity.Payload, &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", entity.ID, err)
		}
		results = append(results, &result)
	}
	return results, nil
}

// DeleteResult soft-deletes a result
func (s *service) DeleteResult(ctx context.Context, id string) error {
	return s.remove(ctx, models.ResourceResults, id)
}

// SaveLearningState creates or updates the learning state for a subject
func (s *service) SaveLearningState(ctx context.Context, owner string, state *models.LearningState) error {
	if err := state.Validate(); err != nil {
		return fmt.Errorf("invalid learning state: %w", err)
	}

	if state.ID == "" {
		state.ID = uuid.New().String()
		return s.create(ctx, owner, models.ResourceLearningStates, state.ID, state)
	}

	_, err := s.entities.GetEntity(ctx, models.ResourceLearningStates, state.ID)
	switch {
	case err == nil:
		return s.update(ctx, models.ResourceLearningStates, state.ID, state)
	case errors.Is(err, storage.ErrEntityNotFound):
		return s.create(ctx, owner, models.ResourceLearningStates, state.ID, state)
	default:
		return fmt.Errorf("failed to check learning state: %w", err)
	}
}

// ListLearningStates returns all live learning states for the owner
func (s *service) ListLearningStates(ctx context.Context, owner string) ([]*models.LearningState, error) {
	entities, err := s.entities.ListEntities(ctx, owner, models.ResourceLearningStates)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning states: %w", err)
	}

	states := make([]*models.LearningState, 0, len(entities))
	for _, entity := range entities {
		var state models.LearningState
		if err := json.Unmarshal(entity.Payload, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal learning state %s: %w", entity.ID, err)
		}
		states = append(states, &state)
	}
	return states, nil
}

// create stores a new entity at version 1 with no sync bookkeeping
func (s *service) create(ctx context.Context, owner, resource, id string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	entity := &models.Entity{
		ID:          id,
		Owner:       owner,
		Resource:    resource,
		Version:     1,
		ContentHash: contentHash(data),
		Payload:     data,
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.entities.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}
	return nil
}

// update replaces the payload and bumps the version, preserving the
// last-synced bookkeeping so the row reads as dirty
func (s *service) update(ctx context.Context, resource, id string, payload interface{}) error {
	entity, err := s.entities.GetEntity(ctx, resource, id)
	if err != nil {
		return fmt.Errorf("failed to get entity: %w", err)
	}
	if entity.Tombstoned() {
		return storage.ErrEntityNotFound
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	entity.Payload = data
	entity.ContentHash = contentHash(data)
	entity.Version++
	entity.UpdatedAt = time.Now().UTC()

	if err := s.entities.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to save entity: %w", err)
	}
	return nil
}

// remove soft-deletes an entity: deleted_at set, version bumped
func (s *service) remove(ctx context.Context, resource, id string) error {
	entity, err := s.entities.GetEntity(ctx, resource, id)
	if err != nil {
		return fmt.Errorf("failed to get entity: %w", err)
	}
	if entity.Tombstoned() {
		return nil
	}

	now := time.Now().UTC()
	entity.DeletedAt = &now
	entity.Version++
	entity.UpdatedAt = now

	if err := s.entities.SaveEntity(ctx, entity); err != nil {
		return fmt.Errorf("failed to save tombstone: %w", err)
	}
	return nil
}

// contentHash is the opaque digest the engine carries for dedupe and
// drift detection
func contentHash(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
