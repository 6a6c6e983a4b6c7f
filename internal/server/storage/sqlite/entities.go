package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	serverstorage "github.com/TJZine/CertPrep.ai-sub000/internal/server/storage"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

// UpsertBatch applies a batch of records for one (owner, resource) stream
// in a single transaction. The whole batch commits or none of it does.
//
// Per record, the version guard decides the outcome: a higher incoming
// version replaces the stored row, an equal version wins only when the
// incoming record is a tombstone and the stored row is not, and a stale
// version is a silent no-op. Accepted counts the records that changed
// server state.
//
// The server stamps updated_at itself so the change stream stays
// monotonic regardless of client clocks.
func (s *Storage) UpsertBatch(ctx context.Context, owner, resource string, records []api.SyncRecord) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stampedAt := s.now().UTC().UnixNano()
	accepted := 0

	for _, rec := range records {
		if rec.Owner != owner {
			return 0, fmt.Errorf("record %s: %w", rec.ID, serverstorage.ErrOwnerMismatch)
		}

		var (
			storedVersion   int64
			storedDeletedAt sql.NullInt64
		)
		err := tx.QueryRowContext(ctx,
			`SELECT version, deleted_at FROM entities WHERE owner = ? AND resource = ? AND id = ?`,
			owner, resource, rec.ID,
		).Scan(&storedVersion, &storedDeletedAt)

		exists := true
		if errors.Is(err, sql.ErrNoRows) {
			exists = false
		} else if err != nil {
			return 0, fmt.Errorf("failed to read stored version: %w", err)
		}

		if exists {
			switch {
			case rec.Version > storedVersion:
				// higher version replaces
			case rec.Version == storedVersion && rec.DeletedAt != nil && !storedDeletedAt.Valid:
				// equal versions settle in favor of the tombstone
			default:
				// stale resend, no-op
				continue
			}
		}

		var deletedAt sql.NullInt64
		if rec.DeletedAt != nil {
			deletedAt = sql.NullInt64{Int64: rec.DeletedAt.UTC().UnixNano(), Valid: true}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO entities (id, owner, resource, version, content_hash, payload, updated_at, deleted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (owner, resource, id) DO UPDATE SET
			     version = excluded.version,
			     content_hash = excluded.content_hash,
			     payload = excluded.payload,
			     updated_at = excluded.updated_at,
			     deleted_at = excluded.deleted_at`,
			rec.ID, owner, resource, rec.Version, rec.ContentHash, []byte(rec.Payload), stampedAt, deletedAt,
		)
		if err != nil {
			return 0, fmt.Errorf("failed to upsert record %s: %w", rec.ID, err)
		}
		accepted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return accepted, nil
}

// ListSince returns up to limit records for the stream strictly after the
// cursor position (sinceTS, sinceID) in (updated_at, id) order. Tombstones
// are included so clients learn about deletions. The second return value
// reports whether more records remain past the page.
func (s *Storage) ListSince(ctx context.Context, owner, resource string, sinceTS time.Time, sinceID string, limit int) ([]api.SyncRecord, bool, error) {
	sinceNano := int64(0)
	if !sinceTS.IsZero() {
		sinceNano = sinceTS.UTC().UnixNano()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner, resource, version, content_hash, payload, updated_at, deleted_at
		 FROM entities
		 WHERE owner = ? AND resource = ?
		   AND (updated_at > ? OR (updated_at = ? AND id > ?))
		 ORDER BY updated_at, id
		 LIMIT ?`,
		owner, resource, sinceNano, sinceNano, sinceID, limit+1,
	)
	if err != nil {
		return nil, false, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	records := make([]api.SyncRecord, 0, limit)
	for rows.Next() {
		var (
			rec         api.SyncRecord
			payload     []byte
			updatedNano int64
			deletedAt   sql.NullInt64
		)
		if err := rows.Scan(&rec.ID, &rec.Owner, &rec.Resource, &rec.Version, &rec.ContentHash, &payload, &updatedNano, &deletedAt); err != nil {
			return nil, false, fmt.Errorf("failed to scan entity: %w", err)
		}
		rec.Payload = payload
		rec.UpdatedAt = time.Unix(0, updatedNano).UTC()
		if deletedAt.Valid {
			t := time.Unix(0, deletedAt.Int64).UTC()
			rec.DeletedAt = &t
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, fmt.Errorf("failed to iterate entities: %w", err)
	}

	hasMore := false
	if len(records) > limit {
		hasMore = true
		records = records[:limit]
	}
	return records, hasMore, nil
}
