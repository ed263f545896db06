package carriers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/backoffice/api/middleware"
	"github.com/freightdesk/backoffice/api/responses"
	"github.com/freightdesk/backoffice/api/validators"
	internalcarriers "github.com/freightdesk/backoffice/internal/carriers"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/logger"
)

type importRequest struct {
	DOTNumber int64 `json:"dot_number" validate:"required,gt=0"`
}

// List pages through the tenant's carrier directory.
func List(svc internalcarriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validators.ParsePageParams(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		page, err := svc.List(r.Context(), middleware.ActorFromContext(r.Context()), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, page)
	}
}

// Lookup fetches a carrier from the registry by DOT number.
func Lookup(svc internalcarriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dot, err := parseDOTNumber(chi.URLParam(r, "dotNumber"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		result, err := svc.Lookup(r.Context(), middleware.ActorFromContext(r.Context()), dot)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, result)
	}
}

// Import stores the registry record for a DOT number in the directory.
func Import(svc internalcarriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body importRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		carrier, err := svc.Import(r.Context(), middleware.ActorFromContext(r.Context()), body.DOTNumber)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, carrier)
	}
}

// Sync refreshes every stored carrier from the registry.
func Sync(svc internalcarriers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Sync(r.Context(), middleware.ActorFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

func parseDOTNumber(raw string) (int64, error) {
	dot, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || dot <= 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "dot number must be a positive integer").WithDetails(map[string]any{"field": "dotNumber"})
	}
	return dot, nil
}
