package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
)

// AttachInput is the metadata of a file about to be uploaded.
type AttachInput struct {
	DocumentType enums.DocumentType
	FileName     string
	ContentType  string
}

type DocumentDTO struct {
	ID           uuid.UUID          `json:"id"`
	LoadID       uuid.UUID          `json:"load_id"`
	DocumentType enums.DocumentType `json:"document_type"`
	FileName     string             `json:"file_name"`
	ContentType  string             `json:"content_type"`
	UploadedBy   *uuid.UUID         `json:"uploaded_by,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// SignedURL is a time-limited object URL.
type SignedURL struct {
	URL       string       `json:"url"`
	Method    string       `json:"method"`
	ExpiresAt time.Time    `json:"expires_at"`
	Document  *DocumentDTO `json:"document,omitempty"`
}

// AttachResult carries the stored metadata and where to PUT the file.
type AttachResult struct {
	Document DocumentDTO `json:"document"`
	Upload   SignedURL   `json:"upload"`
}

func FromModel(doc models.LoadDocument) DocumentDTO {
	return DocumentDTO{
		ID:           doc.ID,
		LoadID:       doc.LoadID,
		DocumentType: doc.DocumentType,
		FileName:     doc.FileName,
		ContentType:  doc.ContentType,
		UploadedBy:   doc.UploadedBy,
		CreatedAt:    doc.CreatedAt,
	}
}
