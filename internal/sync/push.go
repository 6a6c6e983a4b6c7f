package sync

import (
	"context"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

// push selects the user's dirty entities, translates them to wire form
// and batch-upserts them remotely. Bookkeeping only moves on success, so
// a failed batch is simply retried next cycle; resending an unchanged
// version is a server-side no-op.
func (s *service) push(ctx context.Context, userID, resource string, outcome *Outcome) error {
	dirty, err := s.entities.ListDirty(ctx, userID, resource)
	if err != nil {
		return fmt.Errorf("failed to select dirty entities: %w", err)
	}
	if len(dirty) == 0 {
		return nil
	}

	records := make([]api.SyncRecord, 0, len(dirty))
	// Versions are captured at selection time: a re-mutation mid-push
	// raises the row's version past the mark and keeps it dirty for the
	// next cycle, never silently dropped.
	marks := make([]storage.SyncedMark, 0, len(dirty))
	for _, entity := range dirty {
		records = append(records, recordFromEntity(entity))
		marks = append(marks, storage.SyncedMark{ID: entity.ID, Version: entity.Version})
	}

	if _, err := s.apiClient.Upsert(ctx, userID, resource, records); err != nil {
		s.logger.Warn("Upsert failed",
			"user_id", userID, "resource", resource,
			"records", len(records), "error", err)
		outcome.Reason = ReasonNetworkError
		return nil
	}

	if err := s.entities.MarkSynced(ctx, resource, marks, s.now()); err != nil {
		return fmt.Errorf("failed to mark entities synced: %w", err)
	}

	outcome.Pushed = len(records)
	return nil
}
