package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/enums"
)

// Load is a single freight shipment moving through the dispatch board.
type Load struct {
	ID         uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID   uuid.UUID        `gorm:"column:tenant_id;type:uuid;not null"`
	LoadNumber string           `gorm:"column:load_number;not null"`
	Status     enums.LoadStatus `gorm:"column:status;type:text;not null;default:'available'"`

	PickupLocation   *string    `gorm:"column:pickup_location"`
	PickupCity       *string    `gorm:"column:pickup_city"`
	PickupState      *string    `gorm:"column:pickup_state"`
	PickupAt         *time.Time `gorm:"column:pickup_at"`
	DeliveryLocation *string    `gorm:"column:delivery_location"`
	DeliveryCity     *string    `gorm:"column:delivery_city"`
	DeliveryState    *string    `gorm:"column:delivery_state"`
	DeliveryAt       *time.Time `gorm:"column:delivery_at"`

	DriverID     *uuid.UUID `gorm:"column:driver_id;type:uuid"`
	VehicleID    *uuid.UUID `gorm:"column:vehicle_id;type:uuid"`
	DispatcherID *uuid.UUID `gorm:"column:dispatcher_id;type:uuid"`
	LoadOwnerID  *uuid.UUID `gorm:"column:load_owner_id;type:uuid"`
	CarrierID    *uuid.UUID `gorm:"column:carrier_id;type:uuid"`

	Rate              *decimal.Decimal `gorm:"column:rate;type:numeric(12,2)"`
	CarrierRate       *decimal.Decimal `gorm:"column:carrier_rate;type:numeric(12,2)"`
	EstimatedMiles    *int             `gorm:"column:estimated_miles"`
	EmptyMiles        *int             `gorm:"column:empty_miles"`
	CustomerReference *string          `gorm:"column:customer_reference"`
	BrokerName        *string          `gorm:"column:broker_name"`

	CarrierApproved bool             `gorm:"column:carrier_approved;not null;default:false"`
	ApprovedPayload *decimal.Decimal `gorm:"column:approved_payload;type:numeric(12,2)"`
	ApprovedAt      *time.Time       `gorm:"column:approved_at"`
	ApprovedBy      *uuid.UUID       `gorm:"column:approved_by;type:uuid"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	Vehicle *Vehicle `gorm:"foreignKey:VehicleID"`
	Driver  *Driver  `gorm:"foreignKey:DriverID"`
	Carrier *Carrier `gorm:"foreignKey:CarrierID"`
}

func (Load) TableName() string { return "loads" }
