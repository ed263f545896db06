package loads

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	internalloads "github.com/freightdesk/backoffice/internal/loads"
	"github.com/freightdesk/backoffice/pkg/enums"
)

type loadFieldsRequest struct {
	PickupLocation   *string    `json:"pickup_location" validate:"omitempty,max=255"`
	PickupCity       *string    `json:"pickup_city" validate:"omitempty,max=128"`
	PickupState      *string    `json:"pickup_state" validate:"omitempty,max=32"`
	PickupAt         *time.Time `json:"pickup_at"`
	DeliveryLocation *string    `json:"delivery_location" validate:"omitempty,max=255"`
	DeliveryCity     *string    `json:"delivery_city" validate:"omitempty,max=128"`
	DeliveryState    *string    `json:"delivery_state" validate:"omitempty,max=32"`
	DeliveryAt       *time.Time `json:"delivery_at"`

	DriverID     *uuid.UUID `json:"driver_id"`
	VehicleID    *uuid.UUID `json:"vehicle_id"`
	DispatcherID *uuid.UUID `json:"dispatcher_id"`
	LoadOwnerID  *uuid.UUID `json:"load_owner_id"`
	CarrierID    *uuid.UUID `json:"carrier_id"`

	Rate              *decimal.Decimal `json:"rate"`
	CarrierRate       *decimal.Decimal `json:"carrier_rate"`
	EstimatedMiles    *int             `json:"estimated_miles" validate:"omitempty,min=0"`
	EmptyMiles        *int             `json:"empty_miles" validate:"omitempty,min=0"`
	CustomerReference *string          `json:"customer_reference" validate:"omitempty,max=128"`
	BrokerName        *string          `json:"broker_name" validate:"omitempty,max=255"`
}

func (r loadFieldsRequest) toFields() internalloads.LoadFields {
	return internalloads.LoadFields{
		PickupLocation:    r.PickupLocation,
		PickupCity:        r.PickupCity,
		PickupState:       r.PickupState,
		PickupAt:          r.PickupAt,
		DeliveryLocation:  r.DeliveryLocation,
		DeliveryCity:      r.DeliveryCity,
		DeliveryState:     r.DeliveryState,
		DeliveryAt:        r.DeliveryAt,
		DriverID:          r.DriverID,
		VehicleID:         r.VehicleID,
		DispatcherID:      r.DispatcherID,
		LoadOwnerID:       r.LoadOwnerID,
		CarrierID:         r.CarrierID,
		Rate:              r.Rate,
		CarrierRate:       r.CarrierRate,
		EstimatedMiles:    r.EstimatedMiles,
		EmptyMiles:        r.EmptyMiles,
		CustomerReference: r.CustomerReference,
		BrokerName:        r.BrokerName,
	}
}

type createLoadRequest struct {
	LoadNumber string `json:"load_number" validate:"required,max=64"`
	Source     string `json:"source" validate:"omitempty,oneof=manual import"`
	loadFieldsRequest
}

type updateLoadRequest struct {
	LoadNumber *string `json:"load_number" validate:"omitempty,min=1,max=64"`
	loadFieldsRequest
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (r statusRequest) status() enums.LoadStatus {
	return enums.LoadStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}

type approveRequest struct {
	CarrierRate *decimal.Decimal `json:"carrier_rate"`
}

type loadIDsRequest struct {
	LoadIDs []uuid.UUID `json:"load_ids" validate:"required,min=1,max=500"`
}

type bulkStatusRequest struct {
	LoadIDs []uuid.UUID `json:"load_ids" validate:"required,min=1,max=500"`
	Status  string      `json:"status" validate:"required"`
}

type bulkAssignRequest struct {
	LoadIDs  []uuid.UUID `json:"load_ids" validate:"required,min=1,max=500"`
	Field    string      `json:"field" validate:"required,oneof=driver vehicle"`
	TargetID *uuid.UUID  `json:"target_id"`
}
