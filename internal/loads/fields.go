package loads

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/db/models"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
)

// LoadFields carries the editable columns of a load. A nil field is left alone.
type LoadFields struct {
	PickupLocation   *string
	PickupCity       *string
	PickupState      *string
	PickupAt         *time.Time
	DeliveryLocation *string
	DeliveryCity     *string
	DeliveryState    *string
	DeliveryAt       *time.Time

	DriverID     *uuid.UUID
	VehicleID    *uuid.UUID
	DispatcherID *uuid.UUID
	LoadOwnerID  *uuid.UUID
	CarrierID    *uuid.UUID

	Rate              *decimal.Decimal
	CarrierRate       *decimal.Decimal
	EstimatedMiles    *int
	EmptyMiles        *int
	CustomerReference *string
	BrokerName        *string
}

func (f LoadFields) validate() error {
	for name, amount := range map[string]*decimal.Decimal{"rate": f.Rate, "carrier_rate": f.CarrierRate} {
		if amount != nil && amount.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, name+" must not be negative")
		}
	}
	for name, miles := range map[string]*int{"estimated_miles": f.EstimatedMiles, "empty_miles": f.EmptyMiles} {
		if miles != nil && *miles < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, name+" must not be negative")
		}
	}
	if f.PickupAt != nil && f.DeliveryAt != nil && f.DeliveryAt.Before(*f.PickupAt) {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery must not be before pickup")
	}
	return nil
}

// columns maps the populated fields to their column values.
func (f LoadFields) columns() map[string]any {
	cols := map[string]any{}
	setString := func(name string, v *string) {
		if v != nil {
			cols[name] = trimmedOrNil(*v)
		}
	}
	setString("pickup_location", f.PickupLocation)
	setString("pickup_city", f.PickupCity)
	setString("pickup_state", f.PickupState)
	setString("delivery_location", f.DeliveryLocation)
	setString("delivery_city", f.DeliveryCity)
	setString("delivery_state", f.DeliveryState)
	setString("customer_reference", f.CustomerReference)
	setString("broker_name", f.BrokerName)

	if f.PickupAt != nil {
		cols["pickup_at"] = f.PickupAt.UTC()
	}
	if f.DeliveryAt != nil {
		cols["delivery_at"] = f.DeliveryAt.UTC()
	}
	for name, id := range map[string]*uuid.UUID{
		"driver_id":     f.DriverID,
		"vehicle_id":    f.VehicleID,
		"dispatcher_id": f.DispatcherID,
		"load_owner_id": f.LoadOwnerID,
		"carrier_id":    f.CarrierID,
	} {
		if id != nil {
			cols[name] = *id
		}
	}
	if f.Rate != nil {
		cols["rate"] = f.Rate.Round(2)
	}
	if f.CarrierRate != nil {
		cols["carrier_rate"] = f.CarrierRate.Round(2)
	}
	if f.EstimatedMiles != nil {
		cols["estimated_miles"] = *f.EstimatedMiles
	}
	if f.EmptyMiles != nil {
		cols["empty_miles"] = *f.EmptyMiles
	}
	return cols
}

// applyTo copies the populated fields onto a new load.
func (f LoadFields) applyTo(load *models.Load) {
	load.PickupLocation = trimmedPtr(f.PickupLocation)
	load.PickupCity = trimmedPtr(f.PickupCity)
	load.PickupState = trimmedPtr(f.PickupState)
	load.DeliveryLocation = trimmedPtr(f.DeliveryLocation)
	load.DeliveryCity = trimmedPtr(f.DeliveryCity)
	load.DeliveryState = trimmedPtr(f.DeliveryState)
	load.CustomerReference = trimmedPtr(f.CustomerReference)
	load.BrokerName = trimmedPtr(f.BrokerName)
	if f.PickupAt != nil {
		t := f.PickupAt.UTC()
		load.PickupAt = &t
	}
	if f.DeliveryAt != nil {
		t := f.DeliveryAt.UTC()
		load.DeliveryAt = &t
	}
	load.DriverID = f.DriverID
	load.VehicleID = f.VehicleID
	load.DispatcherID = f.DispatcherID
	load.LoadOwnerID = f.LoadOwnerID
	load.CarrierID = f.CarrierID
	if f.Rate != nil {
		r := f.Rate.Round(2)
		load.Rate = &r
	}
	if f.CarrierRate != nil {
		r := f.CarrierRate.Round(2)
		load.CarrierRate = &r
	}
	load.EstimatedMiles = f.EstimatedMiles
	load.EmptyMiles = f.EmptyMiles
}

func sortedKeys(cols map[string]any) []string {
	keys := make([]string, 0, len(cols))
	for k := range cols {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func trimmedOrNil(v string) any {
	if t := strings.TrimSpace(v); t != "" {
		return t
	}
	return nil
}

func trimmedPtr(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
