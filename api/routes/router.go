package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/freightdesk/backoffice/api/controllers"
	carriercontrollers "github.com/freightdesk/backoffice/api/controllers/carriers"
	documentcontrollers "github.com/freightdesk/backoffice/api/controllers/documents"
	loadcontrollers "github.com/freightdesk/backoffice/api/controllers/loads"
	vehiclecontrollers "github.com/freightdesk/backoffice/api/controllers/vehicles"
	"github.com/freightdesk/backoffice/api/middleware"
	"github.com/freightdesk/backoffice/internal/carriers"
	"github.com/freightdesk/backoffice/internal/documents"
	"github.com/freightdesk/backoffice/internal/loads"
	"github.com/freightdesk/backoffice/internal/vehicles"
	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/db"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/freightdesk/backoffice/pkg/logger"
	"github.com/freightdesk/backoffice/pkg/redis"
	"github.com/freightdesk/backoffice/pkg/storage/gcs"
)

// Services bundles the domain services the API exposes.
type Services struct {
	Loads     loads.Service
	Documents documents.Service
	Carriers  carriers.Service
	Vehicles  vehicles.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	gcsClient gcs.Pinger,
	metricsHandler http.Handler,
	svc Services,
	clock func() time.Time,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	// A nil client must reach the middleware as a nil interface.
	var (
		idempotencyStore middleware.IdempotencyStore
		rateStore        middleware.RateLimiterStore
		redisPinger      controllers.Pinger
	)
	if redisClient != nil {
		idempotencyStore = redisClient
		rateStore = redisClient
		redisPinger = redisClient
	}
	readiness := map[string]controllers.Pinger{"redis": redisPinger}
	if dbP != nil {
		readiness["db"] = dbP
	}
	if gcsClient != nil {
		readiness["gcs"] = gcsClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg.App.Env))
		r.Get("/ready", controllers.HealthReady(cfg.App.Env, logg, readiness))
	})
	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	carrierPolicy := middleware.NewRateLimitPolicy("carriers", cfg.RateLimit.CarrierWindow, cfg.RateLimit.CarrierLimit)
	require := func(perm enums.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(perm, logg)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(idempotencyStore, cfg.Idempotency.TTL, logg))

		r.Route("/loads", func(r chi.Router) {
			r.With(require(enums.PermissionLoadsRead)).Get("/", loadcontrollers.List(svc.Loads, logg))
			r.With(require(enums.PermissionLoadsWrite)).Post("/", loadcontrollers.Create(svc.Loads, logg))
			r.With(require(enums.PermissionLoadsRead)).Post("/export", loadcontrollers.Export(svc.Loads, logg, clock))

			r.Route("/bulk", func(r chi.Router) {
				r.With(require(enums.PermissionLoadsWrite)).Post("/status", loadcontrollers.BulkStatus(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsWrite)).Post("/assign", loadcontrollers.BulkAssign(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsDelete)).Post("/delete", loadcontrollers.BulkDelete(svc.Loads, logg))
			})

			r.Route("/{loadId}", func(r chi.Router) {
				r.With(require(enums.PermissionLoadsRead)).Get("/", loadcontrollers.Get(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsWrite)).Patch("/", loadcontrollers.Update(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsDelete)).Delete("/", loadcontrollers.Delete(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsWrite)).Post("/status", loadcontrollers.ChangeStatus(svc.Loads, logg))
				r.With(require(enums.PermissionLoadsApprove)).Post("/approve", loadcontrollers.Approve(svc.Loads, logg))

				r.Route("/documents", func(r chi.Router) {
					r.With(require(enums.PermissionLoadsRead)).Get("/", documentcontrollers.List(svc.Documents, logg))
					r.With(require(enums.PermissionLoadsWrite)).Post("/", documentcontrollers.Attach(svc.Documents, logg))
					r.With(require(enums.PermissionLoadsRead)).Get("/{documentType}/url", documentcontrollers.DownloadURL(svc.Documents, logg))
				})
			})
		})

		r.Route("/carriers", func(r chi.Router) {
			r.With(require(enums.PermissionCarriersRead)).Get("/", carriercontrollers.List(svc.Carriers, logg))
			r.With(require(enums.PermissionCarriersRead), middleware.TenantRateLimit(carrierPolicy, rateStore, logg)).
				Get("/lookup/{dotNumber}", carriercontrollers.Lookup(svc.Carriers, logg))
			r.With(require(enums.PermissionCarriersWrite), middleware.TenantRateLimit(carrierPolicy, rateStore, logg)).
				Post("/import", carriercontrollers.Import(svc.Carriers, logg))
			r.With(require(enums.PermissionCarriersWrite), middleware.TenantRateLimit(carrierPolicy, rateStore, logg)).
				Post("/sync", carriercontrollers.Sync(svc.Carriers, logg))
		})

		r.With(require(enums.PermissionLoadsRead)).Get("/vehicles", vehiclecontrollers.List(svc.Vehicles, logg))
	})

	return r
}
