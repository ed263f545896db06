package carriers

import (
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/functions"
)

// CarrierDTO is the API shape of a carrier. ID is nil for registry results
// that have not been imported.
type CarrierDTO struct {
	ID           *uuid.UUID          `json:"id,omitempty"`
	Name         string              `json:"name"`
	DOTNumber    int64               `json:"dot_number"`
	MCNumber     *string             `json:"mc_number,omitempty"`
	Status       enums.CarrierStatus `json:"status"`
	SafetyRating *string             `json:"safety_rating,omitempty"`
	Phone        *string             `json:"phone,omitempty"`
	LastSyncedAt *time.Time          `json:"last_synced_at,omitempty"`
}

// Page is one cursor page of carriers.
type Page struct {
	Carriers   []CarrierDTO `json:"carriers"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// LookupResult pairs the registry record with the tenant's stored copy, if any.
type LookupResult struct {
	Carrier  CarrierDTO  `json:"carrier"`
	Existing *CarrierDTO `json:"existing,omitempty"`
}

// SyncSummary reports a registry-wide refresh.
type SyncSummary struct {
	Synced   int       `json:"synced"`
	SyncedAt time.Time `json:"synced_at"`
}

func FromModel(c models.Carrier) CarrierDTO {
	id := c.ID
	return CarrierDTO{
		ID:           &id,
		Name:         c.Name,
		DOTNumber:    c.DOTNumber,
		MCNumber:     c.MCNumber,
		Status:       c.Status,
		SafetyRating: c.SafetyRating,
		Phone:        c.Phone,
		LastSyncedAt: c.LastSyncedAt,
	}
}

func FromRecord(r functions.CarrierRecord) CarrierDTO {
	return CarrierDTO{
		Name:         r.Name,
		DOTNumber:    r.DOTNumber,
		MCNumber:     r.MCNumber,
		Status:       r.Status,
		SafetyRating: r.SafetyRating,
		Phone:        r.Phone,
	}
}
