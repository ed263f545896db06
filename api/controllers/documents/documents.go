package documents

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/api/middleware"
	"github.com/freightdesk/backoffice/api/responses"
	"github.com/freightdesk/backoffice/api/validators"
	internaldocuments "github.com/freightdesk/backoffice/internal/documents"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/logger"
)

type attachRequest struct {
	DocumentType string `json:"document_type" validate:"required"`
	FileName     string `json:"file_name" validate:"required,max=255"`
	ContentType  string `json:"content_type" validate:"required,max=128"`
}

// List returns the documents attached to a load.
func List(svc internaldocuments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadID, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		docs, err := svc.List(r.Context(), middleware.ActorFromContext(r.Context()), loadID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"documents": docs})
	}
}

// Attach records a document and returns a signed upload URL for its bytes.
func Attach(svc internaldocuments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadID, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body attachRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.Attach(r.Context(), middleware.ActorFromContext(r.Context()), loadID, internaldocuments.AttachInput{
			DocumentType: enums.DocumentType(strings.ToLower(strings.TrimSpace(body.DocumentType))),
			FileName:     body.FileName,
			ContentType:  body.ContentType,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, result)
	}
}

// DownloadURL signs a read URL for the latest document of a type.
func DownloadURL(svc internaldocuments.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		loadID, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		docType := enums.DocumentType(strings.ToLower(strings.TrimSpace(chi.URLParam(r, "documentType"))))
		signed, err := svc.DownloadURL(r.Context(), middleware.ActorFromContext(r.Context()), loadID, docType)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, signed)
	}
}

func parseLoadID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(chi.URLParam(r, "loadId")))
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid load id").WithDetails(map[string]any{"field": "loadId"})
	}
	return id, nil
}
