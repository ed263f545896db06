package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/pkg/enums"
)

// LoadDocument points at a file in object storage attached to a load.
type LoadDocument struct {
	ID           uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	TenantID     uuid.UUID          `gorm:"column:tenant_id;type:uuid;not null"`
	LoadID       uuid.UUID          `gorm:"column:load_id;type:uuid;not null"`
	DocumentType enums.DocumentType `gorm:"column:document_type;type:text;not null"`
	ObjectKey    string             `gorm:"column:object_key;not null"`
	FileName     string             `gorm:"column:file_name;not null"`
	ContentType  string             `gorm:"column:content_type;not null"`
	UploadedBy   *uuid.UUID         `gorm:"column:uploaded_by;type:uuid"`
	CreatedAt    time.Time          `gorm:"column:created_at;autoCreateTime"`
}

func (LoadDocument) TableName() string { return "load_documents" }
