package loads

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
)

var baseTime = time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

func dec(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func at(v string) *time.Time {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		panic(err)
	}
	return &t
}

func strPtr(v string) *string { return &v }

func intPtr(v int) *int { return &v }

func newLoad(number string, status enums.LoadStatus, minutesAgo int) models.Load {
	return models.Load{
		ID:         uuid.New(),
		TenantID:   uuid.Nil,
		LoadNumber: number,
		Status:     status,
		CreatedAt:  baseTime.Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

func numbers(loads []models.Load) []string {
	out := make([]string, 0, len(loads))
	for _, l := range loads {
		out = append(out, l.LoadNumber)
	}
	return out
}

func approvalVehicle() *models.Vehicle {
	return &models.Vehicle{
		ID:                   uuid.New(),
		UnitNumber:           "T-100",
		TruckType:            enums.TruckTypeContractor,
		ContractorPercentage: dec("70"),
		RequiresLoadApproval: true,
	}
}
