package vehicles

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/db/models"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

// Repository reads tenant vehicles.
type Repository struct {
	repo.Base
}

// NewRepository constructs a vehicles repository.
func NewRepository(base repo.Base) *Repository {
	return &Repository{Base: base}
}

// FindVehicle returns gorm.ErrRecordNotFound when the vehicle is missing or
// belongs to another tenant.
func (r *Repository) FindVehicle(ctx context.Context, tenantID, id uuid.UUID) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.DB(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&vehicle).Error
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// List returns one cursor page of the tenant's vehicles, newest first.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, params pagination.Params) ([]models.Vehicle, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.DB(ctx).Where("tenant_id = ?", tenantID)
	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Vehicle
	if err := query.Order("created_at DESC").Order("id DESC").Limit(pagination.LimitWithBuffer(params.Limit)).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return rows, next, nil
}
