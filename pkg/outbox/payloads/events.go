package payloads

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/enums"
)

// LoadCreatedEvent is emitted when a load enters the board.
type LoadCreatedEvent struct {
	LoadID     uuid.UUID        `json:"load_id"`
	LoadNumber string           `json:"load_number"`
	Status     enums.LoadStatus `json:"status"`
	Source     string           `json:"source"`
}

// LoadUpdatedEvent lists the columns an edit touched.
type LoadUpdatedEvent struct {
	LoadID     uuid.UUID `json:"load_id"`
	LoadNumber string    `json:"load_number"`
	Fields     []string  `json:"fields"`
}

// LoadStatusChangedEvent is emitted once per load on single and bulk transitions.
type LoadStatusChangedEvent struct {
	LoadID     uuid.UUID        `json:"load_id"`
	LoadNumber string           `json:"load_number"`
	From       enums.LoadStatus `json:"from"`
	To         enums.LoadStatus `json:"to"`
	Bulk       bool             `json:"bulk"`
}

// LoadApprovedEvent records the payload a carrier approval locked in.
type LoadApprovedEvent struct {
	LoadID          uuid.UUID        `json:"load_id"`
	LoadNumber      string           `json:"load_number"`
	ApprovedPayload decimal.Decimal  `json:"approved_payload"`
	CarrierRate     *decimal.Decimal `json:"carrier_rate,omitempty"`
	ApprovedBy      uuid.UUID        `json:"approved_by"`
}

// LoadApprovalResetEvent is emitted when a vehicle change voids an approval.
type LoadApprovalResetEvent struct {
	LoadID     uuid.UUID `json:"load_id"`
	LoadNumber string    `json:"load_number"`
	VehicleID  uuid.UUID `json:"vehicle_id"`
}

// LoadAssignedEvent is emitted for driver or vehicle assignment.
type LoadAssignedEvent struct {
	LoadID     uuid.UUID  `json:"load_id"`
	LoadNumber string     `json:"load_number"`
	Field      string     `json:"field"`
	TargetID   *uuid.UUID `json:"target_id,omitempty"`
}

// LoadDeletedEvent is emitted after a load row is removed.
type LoadDeletedEvent struct {
	LoadID     uuid.UUID `json:"load_id"`
	LoadNumber string    `json:"load_number"`
}

// CarrierImportedEvent is emitted when a registry lookup is saved as a carrier.
type CarrierImportedEvent struct {
	CarrierID uuid.UUID           `json:"carrier_id"`
	DOTNumber int64               `json:"dot_number"`
	Name      string              `json:"name"`
	Status    enums.CarrierStatus `json:"status"`
}
