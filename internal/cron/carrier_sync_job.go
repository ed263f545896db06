package cron

import (
	"context"
	"fmt"

	"github.com/freightdesk/backoffice/internal/carriers"
	"github.com/freightdesk/backoffice/pkg/logger"
)

type carrierSyncer interface {
	SyncRegistry(ctx context.Context) (*carriers.SyncSummary, error)
}

// CarrierSyncJobParams wires the scheduled carrier registry sync.
type CarrierSyncJobParams struct {
	Logger  *logger.Logger
	Carrier carrierSyncer
}

// NewCarrierSyncJob builds the job that refreshes carriers from the registry
// function.
func NewCarrierSyncJob(params CarrierSyncJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Carrier == nil {
		return nil, fmt.Errorf("carrier syncer required")
	}
	return &carrierSyncJob{logg: params.Logger, carriers: params.Carrier}, nil
}

type carrierSyncJob struct {
	logg     *logger.Logger
	carriers carrierSyncer
}

func (j *carrierSyncJob) Name() string { return "carrier-sync" }

func (j *carrierSyncJob) Run(ctx context.Context) error {
	summary, err := j.carriers.SyncRegistry(ctx)
	if err != nil {
		return fmt.Errorf("carrier sync: %w", err)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"synced":    summary.Synced,
		"synced_at": summary.SyncedAt,
	})
	j.logg.Info(logCtx, "carrier sync complete")
	return nil
}
