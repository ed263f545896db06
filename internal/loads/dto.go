package loads

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

// CarrierPayView is the rendered carrier pay column.
type CarrierPayView struct {
	Amount decimal.Decimal `json:"amount"`
	State  PayState        `json:"state"`
	Tag    string          `json:"tag,omitempty"`
	Struck bool            `json:"struck"`
}

// AssigneeSummary names the driver or vehicle on a load.
type AssigneeSummary struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label"`
}

// LoadView is the API representation of a board row.
type LoadView struct {
	ID         uuid.UUID        `json:"id"`
	LoadNumber string           `json:"load_number"`
	Status     enums.LoadStatus `json:"status"`

	PickupLocation   *string    `json:"pickup_location,omitempty"`
	PickupCity       *string    `json:"pickup_city,omitempty"`
	PickupState      *string    `json:"pickup_state,omitempty"`
	PickupAt         *time.Time `json:"pickup_at,omitempty"`
	DeliveryLocation *string    `json:"delivery_location,omitempty"`
	DeliveryCity     *string    `json:"delivery_city,omitempty"`
	DeliveryState    *string    `json:"delivery_state,omitempty"`
	DeliveryAt       *time.Time `json:"delivery_at,omitempty"`

	Driver       *AssigneeSummary `json:"driver,omitempty"`
	Vehicle      *AssigneeSummary `json:"vehicle,omitempty"`
	DispatcherID *uuid.UUID       `json:"dispatcher_id,omitempty"`
	LoadOwnerID  *uuid.UUID       `json:"load_owner_id,omitempty"`
	CarrierID    *uuid.UUID       `json:"carrier_id,omitempty"`

	Rate              *decimal.Decimal `json:"rate,omitempty"`
	CarrierRate       *decimal.Decimal `json:"carrier_rate,omitempty"`
	EstimatedMiles    *int             `json:"estimated_miles,omitempty"`
	EmptyMiles        *int             `json:"empty_miles,omitempty"`
	CustomerReference *string          `json:"customer_reference,omitempty"`
	BrokerName        *string          `json:"broker_name,omitempty"`

	CarrierApproved bool             `json:"carrier_approved"`
	ApprovedPayload *decimal.Decimal `json:"approved_payload,omitempty"`
	ApprovedAt      *time.Time       `json:"approved_at,omitempty"`
	NeedsApproval   bool             `json:"needs_approval"`
	CarrierPay      CarrierPayView   `json:"carrier_pay"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BoardView is one page of the board.
type BoardView struct {
	Loads      []LoadView      `json:"loads"`
	Pagination pagination.Page `json:"pagination"`
	Sort       *Sort           `json:"sort,omitempty"`
}

// NewLoadView renders a row for the API.
func NewLoadView(row Row) LoadView {
	load := row.Load
	view := LoadView{
		ID:                load.ID,
		LoadNumber:        load.LoadNumber,
		Status:            load.Status,
		PickupLocation:    load.PickupLocation,
		PickupCity:        load.PickupCity,
		PickupState:       load.PickupState,
		PickupAt:          load.PickupAt,
		DeliveryLocation:  load.DeliveryLocation,
		DeliveryCity:      load.DeliveryCity,
		DeliveryState:     load.DeliveryState,
		DeliveryAt:        load.DeliveryAt,
		DispatcherID:      load.DispatcherID,
		LoadOwnerID:       load.LoadOwnerID,
		CarrierID:         load.CarrierID,
		Rate:              load.Rate,
		CarrierRate:       load.CarrierRate,
		EstimatedMiles:    load.EstimatedMiles,
		EmptyMiles:        load.EmptyMiles,
		CustomerReference: load.CustomerReference,
		BrokerName:        load.BrokerName,
		CarrierApproved:   load.CarrierApproved,
		ApprovedPayload:   load.ApprovedPayload,
		ApprovedAt:        load.ApprovedAt,
		NeedsApproval:     row.NeedsApproval,
		CarrierPay: CarrierPayView{
			Amount: row.CarrierPay.Amount,
			State:  row.CarrierPay.State,
			Tag:    row.CarrierPay.Tag(),
			Struck: row.CarrierPay.Struck(),
		},
		CreatedAt: load.CreatedAt,
		UpdatedAt: load.UpdatedAt,
	}
	if load.Driver != nil {
		view.Driver = &AssigneeSummary{ID: load.Driver.ID, Label: load.Driver.FirstName + " " + load.Driver.LastName}
	} else if load.DriverID != nil {
		view.Driver = &AssigneeSummary{ID: *load.DriverID}
	}
	if load.Vehicle != nil {
		view.Vehicle = &AssigneeSummary{ID: load.Vehicle.ID, Label: load.Vehicle.UnitNumber}
	} else if load.VehicleID != nil {
		view.Vehicle = &AssigneeSummary{ID: *load.VehicleID}
	}
	return view
}

// NewLoadViews renders rows in order.
func NewLoadViews(rows []Row) []LoadView {
	out := make([]LoadView, 0, len(rows))
	for _, row := range rows {
		out = append(out, NewLoadView(row))
	}
	return out
}

// NewBoardView renders a board page.
func NewBoardView(board Board) BoardView {
	view := BoardView{
		Loads:      NewLoadViews(board.Rows),
		Pagination: board.Page,
	}
	if !board.Sort.IsZero() {
		s := board.Sort
		view.Sort = &s
	}
	return view
}
