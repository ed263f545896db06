package loads

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a loads repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Vehicle").
		Preload("Driver").
		Preload("Carrier")
}

// ListByTenant returns every load of the tenant. Filtering, ordering and paging
// happen in memory on the board.
func (r *repository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Load, error) {
	var rows []models.Load
	err := r.withAssociations(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Load, error) {
	var load models.Load
	err := r.withAssociations(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&load).Error
	if err != nil {
		return nil, err
	}
	return &load, nil
}

func (r *repository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Load, error) {
	if len(ids) == 0 {
		return []models.Load{}, nil
	}
	var rows []models.Load
	err := r.withAssociations(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) Create(ctx context.Context, load *models.Load) error {
	return r.db.WithContext(ctx).Omit("Vehicle", "Driver", "Carrier").Create(load).Error
}

func (r *repository) Update(ctx context.Context, tenantID, id uuid.UUID, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Load{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		Updates(updates).Error
}

// UpdateMany applies the same column values to every listed load in a single
// statement.
func (r *repository) UpdateMany(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, updates map[string]any) (int64, error) {
	if len(ids) == 0 || len(updates) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Model(&models.Load{}).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteMany(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Delete(&models.Load{})
	return res.RowsAffected, res.Error
}
