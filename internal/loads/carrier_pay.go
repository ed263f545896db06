package loads

import (
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
)

// PayState tells the board how to render carrier pay.
type PayState string

const (
	PayNotRequired     PayState = "not_required"
	PayPendingApproval PayState = "pending_approval"
	PayPayloadChanged  PayState = "payload_changed"
	PayConfirmed       PayState = "confirmed"
)

// LoadApprovalTag marks pay that went through the carrier approval gate.
const LoadApprovalTag = "LA"

var hundred = decimal.NewFromInt(100)

// PayDisplay is the derived carrier pay for one load.
type PayDisplay struct {
	Amount decimal.Decimal
	State  PayState
}

// Tag returns "LA" for loads gated by carrier approval.
func (p PayDisplay) Tag() string {
	if p.State == PayNotRequired {
		return ""
	}
	return LoadApprovalTag
}

// Struck reports whether the amount should be shown struck through: the rate
// moved after it was approved.
func (p PayDisplay) Struck() bool {
	return p.State == PayPayloadChanged
}

// RequiresApproval reports whether loads on vehicle go through the approval gate.
func RequiresApproval(vehicle *models.Vehicle) bool {
	return vehicle != nil && vehicle.RequiresLoadApproval
}

// PayloadChanged reports whether an approved load's rate no longer matches the
// approved payload. Unapproved loads never report a change.
func PayloadChanged(load models.Load) bool {
	if !load.CarrierApproved {
		return false
	}
	if load.ApprovedPayload == nil {
		return true
	}
	return !load.ApprovedPayload.Equal(decimalOrZero(load.Rate))
}

// NeedsApproval reports whether the load is waiting on a carrier approval
// decision: the vehicle requires approval and the load is either unapproved or
// its rate changed since approval.
func NeedsApproval(load models.Load, vehicle *models.Vehicle) bool {
	if !RequiresApproval(vehicle) {
		return false
	}
	return !load.CarrierApproved || PayloadChanged(load)
}

// CarrierPayDisplay derives the carrier pay amount and its approval state.
func CarrierPayDisplay(load models.Load, vehicle *models.Vehicle) PayDisplay {
	if !RequiresApproval(vehicle) {
		return PayDisplay{Amount: unapprovedPay(load, vehicle), State: PayNotRequired}
	}

	amount := estimatedCarrierPay(load, vehicle)
	switch {
	case !load.CarrierApproved:
		return PayDisplay{Amount: amount, State: PayPendingApproval}
	case PayloadChanged(load):
		return PayDisplay{Amount: amount, State: PayPayloadChanged}
	default:
		return PayDisplay{Amount: amount, State: PayConfirmed}
	}
}

// unapprovedPay covers vehicles outside the approval gate. Own trucks always
// earn the full rate; other types prefer a stored carrier rate, then the
// contractor percentage.
func unapprovedPay(load models.Load, vehicle *models.Vehicle) decimal.Decimal {
	rate := decimalOrZero(load.Rate)
	truckType := enums.TruckTypeUnset
	if vehicle != nil {
		truckType = vehicle.TruckType
	}
	if truckType == enums.TruckTypeMyTruck || truckType == enums.TruckTypeUnset {
		return rate
	}
	if load.CarrierRate != nil {
		return *load.CarrierRate
	}
	if pay, ok := contractorPay(rate, vehicle); ok {
		return pay
	}
	return rate
}

// estimatedCarrierPay is the amount shown on approval-gated loads: the stored
// carrier rate when present, else what the contractor split would produce.
func estimatedCarrierPay(load models.Load, vehicle *models.Vehicle) decimal.Decimal {
	if load.CarrierRate != nil {
		return *load.CarrierRate
	}
	rate := decimalOrZero(load.Rate)
	if pay, ok := contractorPay(rate, vehicle); ok {
		return pay
	}
	return rate
}

func contractorPay(rate decimal.Decimal, vehicle *models.Vehicle) (decimal.Decimal, bool) {
	if vehicle == nil || vehicle.TruckType != enums.TruckTypeContractor || vehicle.ContractorPercentage == nil {
		return decimal.Zero, false
	}
	pct := *vehicle.ContractorPercentage
	if !pct.IsPositive() {
		return decimal.Zero, false
	}
	return rate.Mul(pct).Div(hundred).Round(2), true
}
