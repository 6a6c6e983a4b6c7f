package api

import (
	"encoding/json"
	"time"
)

// SyncRecord is the wire form of one syncable entity. Client-only
// bookkeeping (last_synced_at, last_synced_version) never crosses the wire.
type SyncRecord struct {
	ID          string          `json:"id"`
	Owner       string          `json:"owner"`
	Resource    string          `json:"resource,omitempty"`
	Version     int64           `json:"version"`
	ContentHash string          `json:"content_hash,omitempty"`
	Payload     json.RawMessage `json:"payload,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   *time.Time      `json:"deleted_at,omitempty"`
}

// FetchResponse is the server response to a page fetch. Records are kept
// raw so the pull pipeline controls per-record decoding: one malformed
// record must not fail the page.
type FetchResponse struct {
	Records []json.RawMessage `json:"records"`
	HasMore bool              `json:"has_more"`
}

// UpsertRequest is the client request body for a batch upsert.
type UpsertRequest struct {
	Records []SyncRecord `json:"records"`
}

// UpsertResponse is the server response to a batch upsert. Accepted counts
// records that changed server state; stale resends are no-ops, not errors.
type UpsertResponse struct {
	Accepted int `json:"accepted"`
}

// ErrorResponse is the common error body returned by the server.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
