package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/enums"
)

// Vehicle is a power unit that can be assigned to loads.
type Vehicle struct {
	ID                   uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID             uuid.UUID        `gorm:"column:tenant_id;type:uuid;not null"`
	UnitNumber           string           `gorm:"column:unit_number;not null"`
	TruckType            enums.TruckType  `gorm:"column:truck_type;type:text"`
	ContractorPercentage *decimal.Decimal `gorm:"column:contractor_percentage;type:numeric(5,2)"`
	RequiresLoadApproval bool             `gorm:"column:requires_load_approval;not null;default:false"`
	Status               string           `gorm:"column:status;not null;default:'active'"`
	CreatedAt            time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Vehicle) TableName() string { return "vehicles" }
