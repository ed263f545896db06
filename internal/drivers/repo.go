package drivers

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/db/models"
)

// Repository reads tenant drivers.
type Repository struct {
	repo.Base
}

// NewRepository constructs a drivers repository.
func NewRepository(base repo.Base) *Repository {
	return &Repository{Base: base}
}

// FindDriver returns gorm.ErrRecordNotFound when the driver is missing or
// belongs to another tenant.
func (r *Repository) FindDriver(ctx context.Context, tenantID, id uuid.UUID) (*models.Driver, error) {
	var driver models.Driver
	err := r.DB(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&driver).Error
	if err != nil {
		return nil, err
	}
	return &driver, nil
}
