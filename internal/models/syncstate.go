package models

import (
	"errors"
	"time"
)

// ErrStageOutOfRange indicates a learning state outside the 1..5 bound.
var ErrStageOutOfRange = errors.New("learning stage out of range")

// Cursor is the durable high-water mark into a resource's remote change
// stream. The stream is totally ordered by (updated_at, id) so pagination
// stays stable when many records share a timestamp.
type Cursor struct {
	LastSyncedAt time.Time `json:"lastSyncedAt"` // LastSyncedAt timestamp of the last applied record
	Synced       bool      `json:"syncedFlag"`   // Synced false until the first successful pull
	LastID       string    `json:"lastId"`       // LastID tie-break id of the last applied record
}

// IsZero reports whether the cursor is the epoch-zero / nil-id sentinel.
func (c Cursor) IsZero() bool {
	return c.LastSyncedAt.IsZero() && c.LastID == ""
}

// Before reports whether c precedes other under (timestamp, id) order.
func (c Cursor) Before(other Cursor) bool {
	if c.LastSyncedAt.Before(other.LastSyncedAt) {
		return true
	}
	if c.LastSyncedAt.After(other.LastSyncedAt) {
		return false
	}
	return c.LastID < other.LastID
}

// AfterRecord reports whether the record position (ts, id) is strictly
// past the cursor, i.e. still unapplied.
func (c Cursor) AfterRecord(ts time.Time, id string) bool {
	rec := Cursor{LastSyncedAt: ts, LastID: id}
	return c.Before(rec)
}

// Block is the durable circuit-breaker record suppressing a resource's
// sync for a cooldown window after a poisoned page.
type Block struct {
	Reason    string    `json:"reason"`    // Reason opaque reason code, e.g. "schema_drift"
	BlockedAt time.Time `json:"blockedAt"` // BlockedAt when the breaker tripped
	TTLMillis int64     `json:"ttlMs"`     // TTLMillis cooldown window length
}

// TTL returns the cooldown window as a duration.
func (b *Block) TTL() time.Duration {
	return time.Duration(b.TTLMillis) * time.Millisecond
}

// Active reports whether the block is still in effect at now. An expired
// block reads as absent; no explicit cleanup is needed.
func (b *Block) Active(now time.Time) bool {
	if b == nil {
		return false
	}
	if now.Before(b.BlockedAt) {
		return false
	}
	return now.Before(b.BlockedAt.Add(b.TTL()))
}
