package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

// Sync-state row keys, one generic key-value table for both kinds:
// cursor rows "{resource}:{userId}", block rows "{resource}:block:{userId}".
func cursorKey(userID, resource string) []byte {
	return []byte(fmt.Sprintf("%s:%s", resource, userID))
}

func blockKey(userID, resource string) []byte {
	return []byte(fmt.Sprintf("%s:block:%s", resource, userID))
}

// GetCursor returns the stored cursor, or the epoch-zero / nil-id
// sentinel if no sync has happened yet
func (s *Storage) GetCursor(ctx context.Context, userID, resource string) (models.Cursor, error) {
	var cursor models.Cursor

	if s.db == nil {
		return cursor, storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("sync_state bucket not found")
		}

		data := bucket.Get(cursorKey(userID, resource))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &cursor); err != nil {
			return fmt.Errorf("failed to unmarshal cursor: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Cursor{}, fmt.Errorf("failed to get cursor: %w", err)
	}

	return cursor, nil
}

// SetCursor stores the cursor. The timestamp must be a valid instant;
// callers must only set values derived from already-applied data.
func (s *Storage) SetCursor(ctx context.Context, userID, resource string, cursor models.Cursor) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if cursor.LastSyncedAt.IsZero() {
		return storage.ErrInvalidCursor
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		return s.putCursor(tx, userID, resource, cursor)
	})
	if err != nil {
		return fmt.Errorf("failed to set cursor: %w", err)
	}

	return nil
}

// putCursor writes a cursor row inside an existing transaction so page
// data and cursor advancement can commit together.
func (s *Storage) putCursor(tx *bbolt.Tx, userID, resource string, cursor models.Cursor) error {
	bucket := tx.Bucket(bucketSyncState)
	if bucket == nil {
		return fmt.Errorf("sync_state bucket not found")
	}

	cursor.Synced = true
	data, err := json.Marshal(cursor)
	if err != nil {
		return fmt.Errorf("failed to marshal cursor: %w", err)
	}
	if err := bucket.Put(cursorKey(userID, resource), data); err != nil {
		return fmt.Errorf("failed to save cursor: %w", err)
	}
	return nil
}

// GetBlock returns the active block, or nil when none is set or the
// stored one has expired
func (s *Storage) GetBlock(ctx context.Context, userID, resource string) (*models.Block, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var block *models.Block

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("sync_state bucket not found")
		}

		data := bucket.Get(blockKey(userID, resource))
		if data == nil {
			return nil
		}

		block = &models.Block{}
		if err := json.Unmarshal(data, block); err != nil {
			return fmt.Errorf("failed to unmarshal block: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get block: %w", err)
	}

	if !block.Active(s.now()) {
		return nil, nil
	}
	return block, nil
}

// SetBlock trips the circuit breaker for the resource
func (s *Storage) SetBlock(ctx context.Context, userID, resource, reason string, ttl time.Duration) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	block := models.Block{
		Reason:    reason,
		BlockedAt: s.now(),
		TTLMillis: ttl.Milliseconds(),
	}

	data, err := json.Marshal(&block)
	if err != nil {
		return fmt.Errorf("failed to marshal block: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("sync_state bucket not found")
		}
		return bucket.Put(blockKey(userID, resource), data)
	})
	if err != nil {
		return fmt.Errorf("failed to set block: %w", err)
	}

	return nil
}

// ClearBlock removes the block; exposed for manual recovery
func (s *Storage) ClearBlock(ctx context.Context, userID, resource string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSyncState)
		if bucket == nil {
			return fmt.Errorf("sync_state bucket not found")
		}
		return bucket.Delete(blockKey(userID, resource))
	})
	if err != nil {
		return fmt.Errorf("failed to clear block: %w", err)
	}

	return nil
}
