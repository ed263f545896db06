package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"

	"github.com/freightdesk/backoffice/api/routes"
	"github.com/freightdesk/backoffice/internal/carriers"
	"github.com/freightdesk/backoffice/internal/documents"
	"github.com/freightdesk/backoffice/internal/drivers"
	"github.com/freightdesk/backoffice/internal/loads"
	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/internal/vehicles"
	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/db"
	"github.com/freightdesk/backoffice/pkg/functions"
	"github.com/freightdesk/backoffice/pkg/instance"
	"github.com/freightdesk/backoffice/pkg/logger"
	"github.com/freightdesk/backoffice/pkg/metrics"
	"github.com/freightdesk/backoffice/pkg/migrate"
	"github.com/freightdesk/backoffice/pkg/outbox"
	"github.com/freightdesk/backoffice/pkg/redis"
	"github.com/freightdesk/backoffice/pkg/storage/gcs"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}

	gcsClient, err := gcs.NewClient(context.Background(), cfg.GCS, cfg.GCP, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap gcs", err)
		os.Exit(1)
	}

	functionsClient, err := functions.NewClient(cfg.Functions.BaseURL, cfg.Functions.APIKey, functions.WithTimeout(cfg.Functions.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create functions client", err)
		os.Exit(1)
	}

	policy, err := loads.PolicyFromConfig(cfg.Loads)
	if err != nil {
		logg.Error(context.Background(), "invalid loads policy", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	loadMetrics := metrics.NewLoadMetrics(registry)

	base := repo.NewBase(dbClient.DB())
	outboxService := outbox.NewService(outbox.NewRepository(dbClient.DB()), logg)
	vehiclesRepo := vehicles.NewRepository(base)
	loadsRepo := loads.NewRepository(dbClient.DB())

	loadsService, err := loads.NewService(loads.ServiceParams{
		Repo:     loadsRepo,
		Vehicles: vehiclesRepo,
		Drivers:  drivers.NewRepository(base),
		Tx:       dbClient,
		Outbox:   outboxService,
		Metrics:  loadMetrics,
		Logger:   logg,
		Policy:   policy,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create loads service", err)
		os.Exit(1)
	}

	vehiclesService, err := vehicles.NewService(vehiclesRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create vehicles service", err)
		os.Exit(1)
	}

	carriersService, err := carriers.NewService(carriers.ServiceParams{
		Repo:     carriers.NewRepository(base),
		Registry: functionsClient,
		Tx:       dbClient,
		Outbox:   outboxService,
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create carriers service", err)
		os.Exit(1)
	}

	documentsService, err := documents.NewService(documents.ServiceParams{
		Repo:      documents.NewRepository(base),
		Loads:     loadsRepo,
		Signer:    gcsClient,
		URLExpiry: cfg.GCS.DownloadURLExpiry,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create documents service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID("api"),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			gcsClient,
			promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			routes.Services{
				Loads:     loadsService,
				Documents: documentsService,
				Carriers:  carriersService,
				Vehicles:  vehiclesService,
			},
			time.Now,
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-sigCtx.Done():
		logg.Info(ctx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "api server shutdown failed", err)
			exitCode = 1
		}
		cancel()
	}

	if err := multierr.Combine(gcsClient.Close(), redisClient.Close(), dbClient.Close()); err != nil {
		logg.Error(ctx, "error closing dependencies", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}
