package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/internal/validation"
)

// pull streams remote pages since the cursor through validation, conflict
// resolution and an atomic per-page commit. It stops at the end of the
// stream, on a transport failure (reason network_error) or when a whole
// page fails validation (breaker tripped, reason schema_drift).
func (s *service) pull(ctx context.Context, userID, resource string, outcome *Outcome) error {
	for {
		cursor, err := s.state.GetCursor(ctx, userID, resource)
		if err != nil {
			return fmt.Errorf("failed to read cursor: %w", err)
		}

		resp, err := s.apiClient.Fetch(ctx, userID, resource, cursor, s.pageSize)
		if err != nil {
			s.logger.Warn("Fetch failed",
				"user_id", userID, "resource", resource, "error", err)
			outcome.Reason = ReasonNetworkError
			return nil
		}

		if len(resp.Records) == 0 {
			return nil
		}

		if err := s.processPage(ctx, userID, resource, resp.Records, outcome); err != nil {
			return err
		}
		if outcome.Reason != "" {
			return nil
		}

		if !resp.HasMore && len(resp.Records) < s.pageSize {
			return nil
		}
	}
}

// processPage validates and resolves one fetched page, then commits the
// surviving writes together with the advanced cursor in one transaction.
func (s *service) processPage(ctx context.Context, userID, resource string, raws []json.RawMessage, outcome *Outcome) error {
	var (
		upserts   []*models.Entity
		deletes   []string
		candidate models.Cursor
		valid     int
	)

	now := s.now()
	outcome.Pulled += len(raws)

	for _, raw := range raws {
		// Track the page's last structurally parseable (updated_at, id)
		// even when the record fails field validation: a malformed
		// record must not block skipping past it.
		if env, err := validation.ExtractEnvelope(raw); err == nil {
			candidate = models.Cursor{LastSyncedAt: env.UpdatedAt, LastID: env.ID, Synced: true}
		}

		rec, err := validation.DecodeRecord(raw, resource)
		if err != nil {
			// Record-level failures are silent to the user but visible
			// in logs; the page keeps going.
			s.logger.Warn("Skipping invalid record",
				"user_id", userID, "resource", resource, "error", err)
			outcome.Skipped++
			continue
		}
		valid++

		remote := entityFromRecord(rec, resource)

		local, err := s.entities.GetEntity(ctx, resource, rec.ID)
		if err != nil {
			if !errors.Is(err, storage.ErrEntityNotFound) {
				return fmt.Errorf("failed to load local copy of %s: %w", rec.ID, err)
			}
			local = nil
		}

		res := Resolve(local, remote)
		switch {
		case res.Winner == WinnerRemote && res.Merged.Tombstoned():
			// A remote tombstone hard-deletes the row when there is no
			// dirty local state to protect. A dirty local copy overrun
			// by a higher-version tombstone keeps the soft-deleted row
			// so nothing is lost silently.
			if local == nil {
				break
			}
			if local.Dirty() {
				merged := res.Merged
				syncedAt := now
				merged.LastSyncedAt = &syncedAt
				upserts = append(upserts, merged)
				outcome.Applied++
				break
			}
			deletes = append(deletes, rec.ID)
			outcome.Deleted++

		case res.Winner == WinnerRemote:
			merged := res.Merged
			syncedAt := now
			merged.LastSyncedAt = &syncedAt
			upserts = append(upserts, merged)
			outcome.Applied++

		default:
			if local.Dirty() {
				// Local survives and is scheduled for push instead of
				// being overwritten.
				outcome.Conflicts++
				break
			}
			// Equal versions with no tombstone: the resolver marked the
			// local copy clean; persist the bookkeeping if it changed.
			if res.Merged.LastSyncedVersion != nil &&
				(local.LastSyncedVersion == nil || *local.LastSyncedVersion != *res.Merged.LastSyncedVersion) {
				merged := res.Merged
				syncedAt := now
				merged.LastSyncedAt = &syncedAt
				upserts = append(upserts, merged)
			}
		}
	}

	if valid == 0 {
		// An entire page failing validation is a schema-drift signal;
		// retrying forever would waste bandwidth without progress. Trip
		// the breaker and leave the cursor where it is.
		if err := s.state.SetBlock(ctx, userID, resource, ReasonSchemaDrift, s.blockTTL); err != nil {
			return fmt.Errorf("failed to trip circuit breaker: %w", err)
		}
		s.logger.Error("Whole page failed validation, circuit breaker tripped",
			"user_id", userID, "resource", resource,
			"records", len(raws), "ttl", s.blockTTL)
		outcome.Reason = ReasonSchemaDrift
		return nil
	}

	if err := s.entities.ApplyPage(ctx, userID, resource, upserts, deletes, candidate); err != nil {
		return fmt.Errorf("failed to commit page: %w", err)
	}

	return nil
}
