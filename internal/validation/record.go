// Package validation checks pulled sync records against the engine's
// shape contract. The engine enforces only presence of id, owner, version
// and updated_at; payload contracts belong to the content pipeline.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

// ErrInvalidRecord indicates a pulled record that fails the shape contract.
// Such records are skipped and logged; they never abort a page.
var ErrInvalidRecord = errors.New("invalid sync record")

// Envelope carries the minimum fields needed to track a cursor candidate
// past a record, even when the record fails full validation.
type Envelope struct {
	ID        string    `json:"id"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExtractEnvelope leniently parses just (id, updated_at) out of a raw
// record. Success here is what "structurally parseable" means for cursor
// advancement: a malformed record must not block skipping past it.
func ExtractEnvelope(raw json.RawMessage) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("envelope parse: %w", err)
	}
	if env.ID == "" {
		return nil, errors.New("envelope parse: missing id")
	}
	if env.UpdatedAt.IsZero() {
		return nil, errors.New("envelope parse: missing updated_at")
	}
	return &env, nil
}

// DecodeRecord strictly decodes a raw record and validates the required
// fields. When the record carries a resource label it must match the
// requested stream; a mismatched record is remote data the engine refuses
// to apply.
func DecodeRecord(raw json.RawMessage, resource string) (*api.SyncRecord, error) {
	var rec api.SyncRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	switch {
	case rec.ID == "":
		return nil, fmt.Errorf("%w: missing id", ErrInvalidRecord)
	case rec.Owner == "":
		return nil, fmt.Errorf("%w: missing owner", ErrInvalidRecord)
	case rec.Version < 1:
		return nil, fmt.Errorf("%w: version %d out of range", ErrInvalidRecord, rec.Version)
	case rec.UpdatedAt.IsZero():
		return nil, fmt.Errorf("%w: missing updated_at", ErrInvalidRecord)
	case rec.Resource != "" && rec.Resource != resource:
		return nil, fmt.Errorf("%w: resource %q does not match stream %q", ErrInvalidRecord, rec.Resource, resource)
	}

	return &rec, nil
}
