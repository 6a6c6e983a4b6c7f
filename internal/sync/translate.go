package sync

import (
	"github.com/TJZine/CertPrep.ai-sub000/internal/models"
	"github.com/TJZine/CertPrep.ai-sub000/pkg/api"
)

// entityFromRecord converts a validated wire record into the local entity
// form. Client-only bookkeeping starts empty; the resolver fills it in.
func entityFromRecord(rec *api.SyncRecord, resource string) *models.Entity {
	entity := &models.Entity{
		ID:          rec.ID,
		Owner:       rec.Owner,
		Resource:    resource,
		Version:     rec.Version,
		ContentHash: rec.ContentHash,
		UpdatedAt:   rec.UpdatedAt,
	}

	if rec.Payload != nil {
		entity.Payload = append(entity.Payload, rec.Payload...)
	}
	if rec.DeletedAt != nil {
		t := *rec.DeletedAt
		entity.DeletedAt = &t
	}

	return entity
}

// recordFromEntity converts a local entity into its wire form for push.
// last_synced_at and last_synced_version never cross the wire.
func recordFromEntity(entity *models.Entity) api.SyncRecord {
	rec := api.SyncRecord{
		ID:          entity.ID,
		Owner:       entity.Owner,
		Resource:    entity.Resource,
		Version:     entity.Version,
		ContentHash: entity.ContentHash,
		UpdatedAt:   entity.UpdatedAt,
	}

	if entity.Payload != nil {
		rec.Payload = append(rec.Payload, entity.Payload...)
	}
	if entity.DeletedAt != nil {
		t := *entity.DeletedAt
		rec.DeletedAt = &t
	}

	return rec
}
