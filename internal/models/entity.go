package models

import (
	"encoding/json"
	"time"
)

// Resource names for the syncable collections. Each one is backed by its
// own local bucket and its own remote change stream.
const (
	ResourceQuizzes        = "quizzes"
	ResourceResults        = "results"
	ResourceLearningStates = "learning_states"
)

// Resources lists every resource the engine syncs, in the order SyncAll
// processes them.
var Resources = []string{ResourceQuizzes, ResourceResults, ResourceLearningStates}

// KnownResource reports whether name is one of the syncable collections.
func KnownResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}
	return false
}

// Entity is the shared sync contract wrapped around every stored document.
// The payload is an opaque JSON document (Quiz, Result or LearningState);
// the engine reasons only about the envelope fields.
type Entity struct {
	ID                string          `json:"id"`                            // ID unique opaque identifier (UUID)
	Owner             string          `json:"owner"`                         // Owner user id the entity belongs to
	Resource          string          `json:"resource"`                      // Resource collection name
	Version           int64           `json:"version"`                       // Version monotonic counter, +1 per accepted local mutation
	ContentHash       string          `json:"content_hash,omitempty"`        // ContentHash opaque digest supplied by the caller
	Payload           json.RawMessage `json:"payload,omitempty"`             // Payload typed document, opaque to the engine
	UpdatedAt         time.Time       `json:"updated_at"`                    // UpdatedAt server-assigned stream position after sync
	DeletedAt         *time.Time      `json:"deleted_at,omitempty"`          // DeletedAt non-nil marks a tombstone
	LastSyncedAt      *time.Time      `json:"last_synced_at,omitempty"`      // LastSyncedAt most recent successful reconciliation
	LastSyncedVersion *int64          `json:"last_synced_version,omitempty"` // LastSyncedVersion version confirmed to match the remote copy
}

// Dirty reports whether the entity has local changes the remote copy has
// not confirmed. A never-synced entity is always dirty.
func (e *Entity) Dirty() bool {
	if e.LastSyncedVersion == nil {
		return true
	}
	return e.Version > *e.LastSyncedVersion
}

// Tombstoned reports whether the entity is soft-deleted.
func (e *Entity) Tombstoned() bool {
	return e.DeletedAt != nil
}

// Clone creates a deep copy of the entity.
func (e *Entity) Clone() *Entity {
	clone := *e

	if e.Payload != nil {
		clone.Payload = make(json.RawMessage, len(e.Payload))
		copy(clone.Payload, e.Payload)
	}
	if e.DeletedAt != nil {
		t := *e.DeletedAt
		clone.DeletedAt = &t
	}
	if e.LastSyncedAt != nil {
		t := *e.LastSyncedAt
		clone.LastSyncedAt = &t
	}
	if e.LastSyncedVersion != nil {
		v := *e.LastSyncedVersion
		clone.LastSyncedVersion = &v
	}

	return &clone
}
