package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/internal/server/storage"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

// contextKey is the type for request context keys
type contextKey string

// UserIDKey is the context key the identity middleware stores the user id
// under
const UserIDKey contextKey = "user_id"

// GetUserID extracts the user id from the request context
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// DataStorage defines the persistence contract the sync handler needs
type DataStorage interface {
	UpsertBatch(ctx context.Context, owner, resource string, records []api.SyncRecord) (int, error)
	ListSince(ctx context.Context, owner, resource string, sinceTS time.Time, sinceID string, limit int) ([]api.SyncRecord, bool, error)
}

// SyncHandler handles the per-resource change stream endpoints
type SyncHandler struct {
	logger      *slog.Logger
	storage     DataStorage
	maxPageSize int
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(logger *slog.Logger, storage DataStorage, maxPageSize int) *SyncHandler {
	return &SyncHandler{
		logger:      logger,
		storage:     storage,
		maxPageSize: maxPageSize,
	}
}

// HandleSync dispatches GET and POST requests for /api/v1/sync/{resource}
func (h *SyncHandler) HandleSync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		h.logger.Error("User ID not found in context")
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing identity")
		return
	}

	resource := r.PathValue("resource")
	if !models.KnownResource(resource) {
		h.logger.Warn("Unknown resource requested", "resource", resource)
		writeError(w, http.StatusNotFound, "unknown_resource", "unknown resource "+resource)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleFetch(ctx, w, r, userID, resource)
	case http.MethodPost:
		h.handleUpsert(ctx, w, r, userID, resource)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	}
}

// handleFetch serves GET /api/v1/sync/{resource}?since_ts=&since_id=&limit=
// Records come back ordered by (updated_at, id), strictly after the cursor.
func (h *SyncHandler) handleFetch(ctx context.Context, w http.ResponseWriter, r *http.Request, userID, resource string) {
	query := r.URL.Query()

	var sinceTS time.Time
	if raw := query.Get("since_ts"); raw != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			h.logger.Warn("Invalid since_ts parameter", "since_ts", raw, "error", err)
			writeError(w, http.StatusBadRequest, "bad_request", "invalid since_ts parameter")
			return
		}
		sinceTS = parsed
	}
	sinceID := query.Get("since_id")

	limit := h.maxPageSize
	if raw := query.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.logger.Warn("Invalid limit parameter", "limit", raw)
			writeError(w, http.StatusBadRequest, "bad_request", "invalid limit parameter")
			return
		}
		if parsed < limit {
			limit = parsed
		}
	}

	records, hasMore, err := h.storage.ListSince(ctx, userID, resource, sinceTS, sinceID, limit)
	if err != nil {
		h.logger.Error("Failed to list records", "error", err, "user_id", userID, "resource", resource)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	raws := make([]json.RawMessage, 0, len(records))
	for _, rec := range records {
		data, err := json.Marshal(rec)
		if err != nil {
			h.logger.Error("Failed to marshal record", "error", err, "record_id", rec.ID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
		raws = append(raws, data)
	}

	writeJSON(w, h.logger, http.StatusOK, api.FetchResponse{
		Records: raws,
		HasMore: hasMore,
	})

	h.logger.Info("Fetch completed",
		"user_id", userID,
		"resource", resource,
		"records", len(raws),
		"has_more", hasMore)
}

// handleUpsert serves POST /api/v1/sync/{resource}
// The batch is all-or-nothing: any record that fails the shape contract or
// claims a foreign owner rejects the whole request before storage is
// touched.
func (h *SyncHandler) handleUpsert(ctx context.Context, w http.ResponseWriter, r *http.Request, userID, resource string) {
	var req api.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode upsert request", "error", err)
		writeError(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	for _, rec := range req.Records {
		if rec.ID == "" || rec.Version < 1 {
			h.logger.Warn("Malformed record in upsert batch",
				"record_id", rec.ID, "version", rec.Version, "user_id", userID)
			writeError(w, http.StatusBadRequest, "bad_request", "malformed record in batch")
			return
		}
		if rec.Owner != userID {
			h.logger.Warn("Record owner mismatch",
				"expected", userID, "got", rec.Owner, "record_id", rec.ID)
			writeError(w, http.StatusForbidden, "forbidden", "record owner mismatch")
			return
		}
		if rec.Resource != "" && rec.Resource != resource {
			h.logger.Warn("Record resource mismatch",
				"expected", resource, "got", rec.Resource, "record_id", rec.ID)
			writeError(w, http.StatusBadRequest, "bad_request", "record resource mismatch")
			return
		}
	}

	accepted, err := h.storage.UpsertBatch(ctx, userID, resource, req.Records)
	if err != nil {
		if errors.Is(err, storage.ErrOwnerMismatch) {
			writeError(w, http.StatusForbidden, "forbidden", "record owner mismatch")
			return
		}
		h.logger.Error("Failed to upsert batch", "error", err, "user_id", userID, "resource", resource)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, api.UpsertResponse{Accepted: accepted})

	h.logger.Info("Upsert completed",
		"user_id", userID,
		"resource", resource,
		"received", len(req.Records),
		"accepted", accepted)
}

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError writes the common JSON error body
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
