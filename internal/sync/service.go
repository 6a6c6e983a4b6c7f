// Package sync reconciles the local BoltDB store with the central sync
// server. Per resource type it runs gate -> block check -> paged pull ->
// push -> cursor advance, tolerating cancellation between any two steps:
// neither the cursor nor dirty-state bookkeeping moves until the
// corresponding write is durably committed.
package sync

import (
	"context"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	httpClient "github.com/TJZine/CertPrep.ai-sub000/internal/client/api"
	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

//go:generate moq -out service_mock.go . Service

// Remote page size observed per fetch.
const DefaultPageSize = 50

// DefaultBlockTTL is the circuit-breaker cooldown after a poisoned page.
const DefaultBlockTTL = time.Hour

// Outcome reasons for incomplete runs.
const (
	ReasonBlocked         = "blocked"
	ReasonGateUnavailable = "gate_unavailable"
	ReasonSchemaDrift     = "schema_drift"
	ReasonNetworkError    = "network_error"
)

// Outcome is the machine-checkable result of one sync cycle. Either
// Complete is true, or Reason names why the cycle stopped early. Expected
// conditions (blocked, gate busy, drift, transport failure) surface here,
// not as errors; only local storage faults return an error.
type Outcome struct {
	Complete  bool
	Reason    string
	Pulled    int // remote records received
	Applied   int // merged records written locally
	Deleted   int // local rows hard-deleted by remote tombstones
	Skipped   int // invalid records skipped
	Conflicts int // dirty local copies that beat a remote record
	Pushed    int // dirty records upserted remotely
}

// Service defines the sync orchestrator interface.
type Service interface {
	// Sync runs one full cycle for a (user, resource) pair
	Sync(ctx context.Context, userID, resource string) (*Outcome, error)

	// SyncAll runs one cycle per known resource
	SyncAll(ctx context.Context, userID string) (map[string]*Outcome, error)

	// PendingCount returns the number of dirty entities awaiting push
	PendingCount(ctx context.Context, userID, resource string) (int, error)

	// Status returns the observable status for a resource
	Status(resource string) Status

	// Subscribe registers a status listener
	Subscribe(listener Listener)
}

// service handles synchronization between client and server
type service struct {
	apiClient httpClient.ClientAPI
	entities  storage.EntityStorage
	state     storage.SyncStateStorage
	gate      *Gate
	logger    *slog.Logger

	pageSize int
	blockTTL time.Duration
	now      func() time.Time

	mu        stdsync.Mutex
	statuses  map[string]Status
	listeners []Listener
}

// NewService creates a new sync service
func NewService(apiClient httpClient.ClientAPI, entities storage.EntityStorage, state storage.SyncStateStorage, logger *slog.Logger) Service {
	return newService(apiClient, entities, state, logger)
}

func newService(apiClient httpClient.ClientAPI, entities storage.EntityStorage, state storage.SyncStateStorage, logger *slog.Logger) *service {
	return &service{
		apiClient: apiClient,
		entities:  entities,
		state:     state,
		gate:      NewGate(),
		logger:    logger,
		pageSize:  DefaultPageSize,
		blockTTL:  DefaultBlockTTL,
		now:       time.Now,
		statuses:  make(map[string]Status),
	}
}

// Sync runs one cycle for a (user, resource) pair.
func (s *service) Sync(ctx context.Context, userID, resource string) (*Outcome, error) {
	if !models.KnownResource(resource) {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}

	// Overlapping triggers degrade to no-ops: the loser touches neither
	// network nor database.
	if !s.gate.TryAcquire(userID, resource) {
		s.logger.Debug("Sync already running, skipping",
			"user_id", userID, "resource", resource)
		return &Outcome{Reason: ReasonGateUnavailable}, nil
	}
	defer s.gate.Release(userID, resource)

	block, err := s.state.GetBlock(ctx, userID, resource)
	if err != nil {
		return nil, fmt.Errorf("failed to check block state: %w", err)
	}
	if block != nil {
		s.logger.Info("Sync blocked by circuit breaker",
			"user_id", userID, "resource", resource,
			"reason", block.Reason, "blocked_at", block.BlockedAt)
		return &Outcome{Reason: ReasonBlocked}, nil
	}

	s.logger.Info("Starting synchronization", "user_id", userID, "resource", resource)
	s.setStatus(resource, StatusSyncing)

	outcome := &Outcome{}

	if err := s.pull(ctx, userID, resource, outcome); err != nil {
		s.setStatus(resource, StatusError)
		return nil, err
	}
	if outcome.Reason == "" {
		if err := s.push(ctx, userID, resource, outcome); err != nil {
			s.setStatus(resource, StatusError)
			return nil, err
		}
	}

	if outcome.Reason != "" {
		s.setStatus(resource, StatusError)
		s.logger.Warn("Synchronization incomplete",
			"user_id", userID, "resource", resource, "reason", outcome.Reason)
		return outcome, nil
	}

	outcome.Complete = true
	s.setStatus(resource, StatusCompleted)
	s.logger.Info("Synchronization completed",
		"user_id", userID, "resource", resource,
		"pulled", outcome.Pulled, "applied", outcome.Applied,
		"deleted", outcome.Deleted, "skipped", outcome.Skipped,
		"conflicts", outcome.Conflicts, "pushed", outcome.Pushed)

	return outcome, nil
}

// SyncAll runs one cycle per known resource. Resource types sync
// independently; one incomplete outcome does not stop the others.
func (s *service) SyncAll(ctx context.Context, userID string) (map[string]*Outcome, error) {
	outcomes := make(map[string]*Outcome, len(models.Resources))
	for _, resource := range models.Resources {
		outcome, err := s.Sync(ctx, userID, resource)
		if err != nil {
			return outcomes, fmt.Errorf("sync %s: %w", resource, err)
		}
		outcomes[resource] = outcome
	}
	return outcomes, nil
}

// PendingCount returns the number of dirty entities awaiting push.
func (s *service) PendingCount(ctx context.Context, userID, resource string) (int, error) {
	dirty, err := s.entities.ListDirty(ctx, userID, resource)
	if err != nil {
		return 0, fmt.Errorf("failed to list dirty entities: %w", err)
	}
	return len(dirty), nil
}
