package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/pkg/enums"
)

// Carrier is a motor carrier known to the tenant, keyed by DOT number.
type Carrier struct {
	ID           uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID     uuid.UUID           `gorm:"column:tenant_id;type:uuid;not null"`
	Name         string              `gorm:"column:name;not null"`
	DOTNumber    int64               `gorm:"column:dot_number;not null"`
	MCNumber     *string             `gorm:"column:mc_number"`
	Status       enums.CarrierStatus `gorm:"column:status;type:text;not null;default:'active'"`
	SafetyRating *string             `gorm:"column:safety_rating"`
	Phone        *string             `gorm:"column:phone"`
	LastSyncedAt *time.Time          `gorm:"column:last_synced_at"`
	CreatedAt    time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

func (Carrier) TableName() string { return "carriers" }
