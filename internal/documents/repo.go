package documents

import (
	"context"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
)

// Repository persists load document metadata.
type Repository struct {
	repo.Base
}

// NewRepository constructs a documents repository.
func NewRepository(base repo.Base) *Repository {
	return &Repository{Base: base}
}

// ListByLoad returns a load's documents, newest first.
func (r *Repository) ListByLoad(ctx context.Context, tenantID, loadID uuid.UUID) ([]models.LoadDocument, error) {
	var rows []models.LoadDocument
	err := r.DB(ctx).
		Where("tenant_id = ? AND load_id = ?", tenantID, loadID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// LatestByType returns the most recent document of docType on the load, or
// gorm.ErrRecordNotFound.
func (r *Repository) LatestByType(ctx context.Context, tenantID, loadID uuid.UUID, docType enums.DocumentType) (*models.LoadDocument, error) {
	var doc models.LoadDocument
	err := r.DB(ctx).
		Where("tenant_id = ? AND load_id = ? AND document_type = ?", tenantID, loadID, docType).
		Order("created_at DESC").
		First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *Repository) Create(ctx context.Context, doc *models.LoadDocument) error {
	return r.DB(ctx).Create(doc).Error
}
