package vehicles

import (
	"net/http"

	"github.com/freightdesk/backoffice/api/middleware"
	"github.com/freightdesk/backoffice/api/responses"
	"github.com/freightdesk/backoffice/api/validators"
	internalvehicles "github.com/freightdesk/backoffice/internal/vehicles"
	"github.com/freightdesk/backoffice/pkg/logger"
)

// List pages through the tenant's vehicles.
func List(svc internalvehicles.Service, logg *logger.Logger) http.HandlerFunc {
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
