package boltdb

import (
	"context"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/TJZine/CertPrep.ai-sub000/internal/client/storage"
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
)

var (
	// BoltDB bucket names: one bucket per syncable resource plus the
	// generic sync-state bucket holding cursor and block rows.
	bucketSyncState = []byte("sync_state")

	resourceBuckets = map[string][]byte{
		models.ResourceQuizzes:        []byte(models.ResourceQuizzes),
		models.ResourceResults:        []byte(models.ResourceResults),
		models.ResourceLearningStates: []byte(models.ResourceLearningStates),
	}
)

// Storage represents BoltDB storage implementation for the client.
// It implements both storage.EntityStorage and storage.SyncStateStorage
// so a pulled page and its cursor can share one transaction.
type Storage struct {
	db  *bbolt.DB
	now func() time.Time
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db, now: time.Now}

	if err := s.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// initBuckets creates the required buckets if they don't exist yet
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range resourceBuckets {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		if _, err := tx.CreateBucketIfNotExists(bucketSyncState); err != nil {
			return fmt.Errorf("failed to create sync_state bucket: %w", err)
		}
		return nil
	})
}

// entityBucket resolves the bucket for a resource inside a transaction
func entityBucket(tx *bbolt.Tx, resource string) (*bbolt.Bucket, error) {
	name, ok := resourceBuckets[resource]
	if !ok {
		return nil, fmt.Errorf("%w: %s", storage.ErrUnknownResource, resource)
	}
	bucket := tx.Bucket(name)
	if bucket == nil {
		return nil, fmt.Errorf("%s bucket not found", resource)
	}
	return bucket, nil
}

var (
	_ storage.EntityStorage    = (*Storage)(nil)
	_ storage.SyncStateStorage = (*Storage)(nil)
)
