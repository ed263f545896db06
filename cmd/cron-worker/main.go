package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/freightdesk/backoffice/internal/carriers"
	"github.com/freightdesk/backoffice/internal/cron"
	"github.com/freightdesk/backoffice/internal/repo"
	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/db"
	"github.com/freightdesk/backoffice/pkg/functions"
	"github.com/freightdesk/backoffice/pkg/instance"
	"github.com/freightdesk/backoffice/pkg/logger"
	"github.com/freightdesk/backoffice/pkg/metrics"
	"github.com/freightdesk/backoffice/pkg/migrate"
	"github.com/freightdesk/backoffice/pkg/outbox"
	"github.com/freightdesk/backoffice/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cron-worker"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	cfg.Service.Kind = "cron-worker"

	logg = logger.New(logger.Options{
		ServiceName: "cron-worker",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	functionsClient, err := functions.NewClient(cfg.Functions.BaseURL, cfg.Functions.APIKey, functions.WithTimeout(cfg.Functions.Timeout))
	if err != nil {
		logg.Error(context.Background(), "failed to create functions client", err)
		os.Exit(1)
	}

	outboxRepo := outbox.NewRepository(dbClient.DB())
	carriersService, err := carriers.NewService(carriers.ServiceParams{
		Repo:     carriers.NewRepository(repo.NewBase(dbClient.DB())),
		Registry: functionsClient,
		Tx:       dbClient,
		Outbox:   outbox.NewService(outboxRepo, logg),
		Logger:   logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create carriers service", err)
		os.Exit(1)
	}

	carrierSync, err := cron.NewCarrierSyncJob(cron.CarrierSyncJobParams{Logger: logg, Carrier: carriersService})
	if err != nil {
		logg.Error(context.Background(), "failed to create carrier sync job", err)
		os.Exit(1)
	}
	retention, err := cron.NewOutboxRetentionJob(cron.OutboxRetentionJobParams{
		Logger:      logg,
		DB:          dbClient,
		Repository:  outboxRepo,
		MinAttempts: cfg.Outbox.MaxAttempts,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create outbox retention job", err)
		os.Exit(1)
	}

	lock, err := cron.NewRedisLock(redisClient, redisClient.LockKey("cron-worker", cfg.App.Env), cfg.Cron.LockTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cron lock", err)
		os.Exit(1)
	}

	service, err := cron.NewService(cron.ServiceParams{
		Logger:   logg,
		Registry: cron.NewRegistry(carrierSync, retention),
		Lock:     lock,
		Metrics:  metrics.NewCronJobMetrics(prometheus.DefaultRegisterer),
		Interval: cfg.Cron.Interval,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cron service", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"instance":    instance.GetID("cron-worker"),
		"serviceKind": cfg.Service.Kind,
		"interval":    cfg.Cron.Interval.String(),
	})
	logg.Info(ctx, "starting cron worker")

	if err := service.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logg.Error(ctx, "cron worker stopped unexpectedly", err)
		os.Exit(1)
	}

	logg.Info(ctx, "cron worker shutting down gracefully")
}
