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

// SaveEntity stores or replaces an entity in its resource bucket
func (s *Storage) SaveEntity(ctx context.Context, entity *models.Entity) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("failed to marshal entity: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, entity.Resource)
		if err != nil {
			return err
		}
		if err := bucket.Put([]byte(entity.ID), data); err != nil {
			return fmt.Errorf("failed to save entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}

// GetEntity retrieves an entity by id, tombstones included
func (s *Storage) GetEntity(ctx context.Context, resource, id string) (*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entity *models.Entity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, resource)
		if err != nil {
			return err
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrEntityNotFound
		}

		entity = &models.Entity{}
		if err := json.Unmarshal(data, entity); err != nil {
			return fmt.Errorf("failed to unmarshal entity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return entity, nil
}

// ListEntities returns all live (non-tombstoned) entities of one resource
// for the owner
func (s *Storage) ListEntities(ctx context.Context, owner, resource string) ([]*models.Entity, error) {
	return s.scan(resource, func(e *models.Entity) bool {
		return e.Owner == owner && !e.Tombstoned()
	})
}

// ListDirty returns entities whose version exceeds their
// last_synced_version, including never-synced rows. Tombstones stay in
// the scan so deletions propagate.
func (s *Storage) ListDirty(ctx context.Context, owner, resource string) ([]*models.Entity, error) {
	return s.scan(resource, func(e *models.Entity) bool {
		return e.Owner == owner && e.Dirty()
	})
}

// scan iterates one resource bucket applying a filter
func (s *Storage) scan(resource string, keep func(*models.Entity) bool) ([]*models.Entity, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var entities []*models.Entity

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, resource)
		if err != nil {
			return err
		}

		return bucket.ForEach(func(k, v []byte) error {
			var entity models.Entity
			if err := json.Unmarshal(v, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity: %w", err)
			}
			if keep(&entity) {
				entities = append(entities, &entity)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", resource, err)
	}

	return entities, nil
}

// MarkSynced sets last_synced_version to each mark's captured version and
// last_synced_at to at. Rows mutated after selection keep their newer
// version and therefore stay dirty.
func (s *Storage) MarkSynced(ctx context.Context, resource string, marks []storage.SyncedMark, at time.Time) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, resource)
		if err != nil {
			return err
		}

		for _, mark := range marks {
			data := bucket.Get([]byte(mark.ID))
			if data == nil {
				// Row hard-deleted between selection and ack; nothing
				// to book-keep.
				continue
			}

			var entity models.Entity
			if err := json.Unmarshal(data, &entity); err != nil {
				return fmt.Errorf("failed to unmarshal entity %s: %w", mark.ID, err)
			}

			version := mark.Version
			syncedAt := at
			entity.LastSyncedVersion = &version
			entity.LastSyncedAt = &syncedAt

			updated, err := json.Marshal(&entity)
			if err != nil {
				return fmt.Errorf("failed to marshal entity %s: %w", mark.ID, err)
			}
			if err := bucket.Put([]byte(mark.ID), updated); err != nil {
				return fmt.Errorf("failed to save entity %s: %w", mark.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("mark synced transaction failed: %w", err)
	}

	return nil
}

// DeleteEntity removes a row entirely (hard delete)
func (s *Storage) DeleteEntity(ctx context.Context, resource, id string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, resource)
		if err != nil {
			return err
		}
		return bucket.Delete([]byte(id))
	})
	if err != nil {
		return fmt.Errorf("delete transaction failed: %w", err)
	}

	return nil
}

// ApplyPage commits one pulled page atomically: merged survivors, hard
// deletes and the advanced cursor land in a single transaction. If any
// write fails, neither the data nor the cursor moves.
func (s *Storage) ApplyPage(ctx context.Context, userID, resource string, upserts []*models.Entity, deletes []string, cursor models.Cursor) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}
	if cursor.LastSyncedAt.IsZero() {
		return storage.ErrInvalidCursor
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := entityBucket(tx, resource)
		if err != nil {
			return err
		}

		for _, entity := range upserts {
			data, err := json.Marshal(entity)
			if err != nil {
				return fmt.Errorf("failed to marshal entity %s: %w", entity.ID, err)
			}
			if err := bucket.Put([]byte(entity.ID), data); err != nil {
				return fmt.Errorf("failed to save entity %s: %w", entity.ID, err)
			}
		}

		for _, id := range deletes {
			if err := bucket.Delete([]byte(id)); err != nil {
				return fmt.Errorf("failed to delete entity %s: %w", id, err)
			}
		}

		return s.putCursor(tx, userID, resource, cursor)
	})
	if err != nil {
		return fmt.Errorf("apply page transaction failed: %w", err)
	}

	return nil
}
