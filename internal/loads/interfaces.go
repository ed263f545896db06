package loads

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/db/models"
)

// Repository defines persistence operations for the loads table. Every read and
// write is scoped to a tenant.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Load, error)
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Load, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Load, error)
	Create(ctx context.Context, load *models.Load) error
	Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) error
	UpdateMany(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, updates map[string]any) (int64, error)
	DeleteMany(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// VehicleReader resolves assignment targets.
type VehicleReader interface {
	FindVehicle(ctx context.Context, tenantID, id uuid.UUID) (*models.Vehicle, error)
}

// DriverReader resolves assignment targets.
type DriverReader interface {
	FindDriver(ctx context.Context, tenantID, id uuid.UUID) (*models.Driver, error)
}
