package middleware

import (
	"net/http"

	"github.com/freightdesk/backoffice/api/responses"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/logger"
)

// RequirePermission rejects requests whose actor lacks perm before the body is
// read.
func RequirePermission(perm enums.Permission, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := ActorFromContext(r.Context()).Require(perm); err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
