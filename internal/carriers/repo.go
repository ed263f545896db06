package carriers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/db/models"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

// Repository persists tenant carriers.
type Repository struct {
	repo.Base
}

// NewRepository constructs a carriers repository.
func NewRepository(base repo.Base) *Repository {
	return &Repository{Base: base}
}

// WithTx binds the repository to tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{Base: r.Base.WithTx(tx)}
}

// List returns one cursor page of the tenant's carriers, newest first.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, params pagination.Params) ([]models.Carrier, string, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	limit := pagination.NormalizeLimit(params.Limit)

	query := r.DB(ctx).Where("tenant_id = ?", tenantID)
	if cursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Carrier
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

// FindByDOT returns gorm.ErrRecordNotFound when the tenant has no carrier with
// that DOT number.
func (r *Repository) FindByDOT(ctx context.Context, tenantID uuid.UUID, dotNumber int64) (*models.Carrier, error) {
	var carrier models.Carrier
	err := r.DB(ctx).
		Where("tenant_id = ? AND dot_number = ?", tenantID, dotNumber).
		First(&carrier).Error
	if err != nil {
		return nil, err
	}
	return &carrier, nil
}

// UpsertByDOT inserts the carrier or refreshes the registry columns of the
// existing row with the same tenant and DOT number.
func (r *Repository) UpsertByDOT(ctx context.Context, carrier *models.Carrier) error {
	return r.DB(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "tenant_id"}, {Name: "dot_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"mc_number",
			"status",
			"safety_rating",
			"phone",
			"last_synced_at",
			"updated_at",
		}),
	}).Create(carrier).Error
}

// MarkSynced stamps every carrier refreshed by a registry-wide sync.
func (r *Repository) MarkSynced(ctx context.Context, at time.Time) (int64, error) {
	res := r.DB(ctx).
		Model(&models.Carrier{}).
		Where("1 = 1").
		Update("last_synced_at", at)
	return res.RowsAffected, res.Error
}
