package carriers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/functions"
	"github.com/freightdesk/backoffice/pkg/logger"
	"github.com/freightdesk/backoffice/pkg/outbox"
	"github.com/freightdesk/backoffice/pkg/outbox/payloads"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

// Store is the carrier persistence used by the service.
type Store interface {
	List(ctx context.Context, tenantID uuid.UUID, params pagination.Params) ([]models.Carrier, string, error)
	FindByDOT(ctx context.Context, tenantID uuid.UUID, dotNumber int64) (*models.Carrier, error)
	UpsertByDOT(ctx context.Context, carrier *models.Carrier) error
	MarkSynced(ctx context.Context, at time.Time) (int64, error)
}

// registry is the serverless carrier registry.
type registry interface {
	LookupCarrier(ctx context.Context, dotNumber int64) (*functions.CarrierRecord, error)
	SyncCarriers(ctx context.Context) (*functions.SyncResult, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service covers the carrier directory and its registry integration.
type Service interface {
	List(ctx context.Context, actor auth.Actor, params pagination.Params) (*Page, error)
	Lookup(ctx context.Context, actor auth.Actor, dotNumber int64) (*LookupResult, error)
	Import(ctx context.Context, actor auth.Actor, dotNumber int64) (*CarrierDTO, error)
	Sync(ctx context.Context, actor auth.Actor) (*SyncSummary, error)
	// SyncRegistry runs the registry-wide refresh without an actor. The cron
	// worker calls it.
	SyncRegistry(ctx context.Context) (*SyncSummary, error)
}

// ServiceParams wires the carriers service.
type ServiceParams struct {
	Repo     Store
	TxRepo   func(tx *gorm.DB) Store
	Registry registry
	Tx       txRunner
	Outbox   outboxPublisher
	Logger   *logger.Logger
	Clock    func() time.Time
}

type service struct {
	repo     Store
	txRepo   func(tx *gorm.DB) Store
	registry registry
	tx       txRunner
	outbox   outboxPublisher
	logg     *logger.Logger
	now      func() time.Time
}

// NewService builds the carriers service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("carriers repository required")
	}
	if params.Registry == nil {
		return nil, errors.New("carrier registry required")
	}
	if params.Tx == nil {
		return nil, errors.New("transaction runner required")
	}
	if params.Outbox == nil {
		return nil, errors.New("outbox publisher required")
	}
	txRepo := params.TxRepo
	if txRepo == nil {
		if bound, ok := params.Repo.(*Repository); ok {
			txRepo = func(tx *gorm.DB) Store { return bound.WithTx(tx) }
		} else {
			repo := params.Repo
			txRepo = func(*gorm.DB) Store { return repo }
		}
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:     params.Repo,
		txRepo:   txRepo,
		registry: params.Registry,
		tx:       params.Tx,
		outbox:   params.Outbox,
		logg:     params.Logger,
		now:      clock,
	}, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, params pagination.Params) (*Page, error) {
	if err := actor.Require(enums.PermissionCarriersRead); err != nil {
		return nil, err
	}
	rows, next, err := s.repo.List(ctx, actor.TenantID, params)
	if err != nil {
		return nil, readError(err, "list carriers")
	}
	page := &Page{Carriers: make([]CarrierDTO, 0, len(rows)), NextCursor: next}
	for _, c := range rows {
		page.Carriers = append(page.Carriers, FromModel(c))
	}
	return page, nil
}

func (s *service) Lookup(ctx context.Context, actor auth.Actor, dotNumber int64) (*LookupResult, error) {
	if err := actor.Require(enums.PermissionCarriersRead); err != nil {
		return nil, err
	}
	record, err := s.registry.LookupCarrier(ctx, dotNumber)
	if err != nil {
		return nil, err
	}
	result := &LookupResult{Carrier: FromRecord(*record)}
	existing, err := s.repo.FindByDOT(ctx, actor.TenantID, record.DOTNumber)
	switch {
	case err == nil:
		dto := FromModel(*existing)
		result.Existing = &dto
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, readError(err, "find carrier")
	}
	return result, nil
}

func (s *service) Import(ctx context.Context, actor auth.Actor, dotNumber int64) (*CarrierDTO, error) {
	if err := actor.Require(enums.PermissionCarriersWrite); err != nil {
		return nil, err
	}
	record, err := s.registry.LookupCarrier(ctx, dotNumber)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	carrier := models.Carrier{
		ID:           uuid.New(),
		TenantID:     actor.TenantID,
		Name:         record.Name,
		DOTNumber:    record.DOTNumber,
		MCNumber:     record.MCNumber,
		Status:       record.Status,
		SafetyRating: record.SafetyRating,
		Phone:        record.Phone,
		LastSyncedAt: &now,
		UpdatedAt:    now,
	}

	var saved *models.Carrier
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.txRepo(tx)
		if err := repo.UpsertByDOT(ctx, &carrier); err != nil {
			return err
		}
		// On conflict the generated id is discarded; read back the stored row.
		stored, err := repo.FindByDOT(ctx, actor.TenantID, record.DOTNumber)
		if err != nil {
			return err
		}
		saved = stored
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventCarrierImported,
			AggregateType: enums.AggregateCarrier,
			AggregateID:   stored.ID,
			TenantID:      actor.TenantID,
			Actor:         &outbox.ActorRef{UserID: actor.UserID, TenantID: actor.TenantID},
			Data: payloads.CarrierImportedEvent{
				CarrierID: stored.ID,
				DOTNumber: stored.DOTNumber,
				Name:      stored.Name,
				Status:    stored.Status,
			},
			OccurredAt: now,
		})
	})
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil {
			return nil, typed
		}
		if s.logg != nil {
			s.logg.Error(s.logg.WithField(ctx, "dot_number", dotNumber), "carrier import failed", err)
		}
		return nil, pkgerrors.StoreFailure(err, "import carrier")
	}
	dto := FromModel(*saved)
	return &dto, nil
}

func (s *service) Sync(ctx context.Context, actor auth.Actor) (*SyncSummary, error) {
	if err := actor.Require(enums.PermissionCarriersWrite); err != nil {
		return nil, err
	}
	return s.SyncRegistry(ctx)
}

func (s *service) SyncRegistry(ctx context.Context) (*SyncSummary, error) {
	result, err := s.registry.SyncCarriers(ctx)
	if err != nil {
		return nil, err
	}
	at := s.now().UTC()
	stamped, err := s.repo.MarkSynced(ctx, at)
	if err != nil {
		return nil, pkgerrors.StoreFailure(err, "mark carriers synced")
	}
	if s.logg != nil {
		s.logg.Info(s.logg.WithFields(ctx, map[string]any{
			"synced":  result.Synced,
			"stamped": stamped,
		}), "carrier registry sync complete")
	}
	return &SyncSummary{Synced: result.Synced, SyncedAt: at}, nil
}

func readError(err error, action string) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, fmt.Sprintf("%s failed", action))
}
