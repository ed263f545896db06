package carriers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/functions"
	"github.com/freightdesk/backoffice/pkg/outbox"
	"github.com/freightdesk/backoffice/pkg/outbox/payloads"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

type stubStore struct {
	byDOT     map[int64]models.Carrier
	upsertErr error
	marked    time.Time
	markErr   error
}

func newStubStore() *stubStore {
	return &stubStore{byDOT: map[int64]models.Carrier{}}
}

func (s *stubStore) List(ctx context.Context, tenantID uuid.UUID, params pagination.Params) ([]models.Carrier, string, error) {
	out := []models.Carrier{}
	for _, c := range s.byDOT {
		if c.TenantID == tenantID {
			out = append(out, c)
		}
	}
	return out, "", nil
}

func (s *stubStore) FindByDOT(ctx context.Context, tenantID uuid.UUID, dotNumber int64) (*models.Carrier, error) {
	c, ok := s.byDOT[dotNumber]
	if !ok || c.TenantID != tenantID {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (s *stubStore) UpsertByDOT(ctx context.Context, carrier *models.Carrier) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	if existing, ok := s.byDOT[carrier.DOTNumber]; ok {
		carrier.ID = existing.ID
	}
	s.byDOT[carrier.DOTNumber] = *carrier
	return nil
}

func (s *stubStore) MarkSynced(ctx context.Context, at time.Time) (int64, error) {
	if s.markErr != nil {
		return 0, s.markErr
	}
	s.marked = at
	return int64(len(s.byDOT)), nil
}

type stubRegistry struct {
	records map[int64]functions.CarrierRecord
	synced  int
	err     error
}

func (s stubRegistry) LookupCarrier(ctx context.Context, dotNumber int64) (*functions.CarrierRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	rec, ok := s.records[dotNumber]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "carrier not found")
	}
	return &rec, nil
}

func (s stubRegistry) SyncCarriers(ctx context.Context) (*functions.SyncResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &functions.SyncResult{Synced: s.synced}, nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error { return fn(nil) }

type stubOutbox struct {
	events []outbox.DomainEvent
}

func (s *stubOutbox) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	s.events = append(s.events, event)
	return nil
}

var fixedNow = time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, store *stubStore, reg stubRegistry, out *stubOutbox) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		Repo:     store,
		Registry: reg,
		Tx:       stubTx{},
		Outbox:   out,
		Clock:    func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return svc
}

func carrierActor(perms ...enums.Permission) auth.Actor {
	return auth.Actor{UserID: uuid.New(), TenantID: uuid.New(), Permissions: perms}
}

func TestImportUpsertsAndEmits(t *testing.T) {
	mc := "765432"
	store := newStubStore()
	out := &stubOutbox{}
	svc := newTestService(t, store, stubRegistry{records: map[int64]functions.CarrierRecord{
		1234567: {DOTNumber: 1234567, Name: "Lone Star Haulers", MCNumber: &mc, Status: enums.CarrierStatusActive},
	}}, out)
	actor := carrierActor(enums.PermissionCarriersWrite)

	dto, err := svc.Import(context.Background(), actor, 1234567)
	require.NoError(t, err)
	require.NotNil(t, dto.ID)
	assert.Equal(t, "Lone Star Haulers", dto.Name)
	require.NotNil(t, dto.LastSyncedAt)
	assert.True(t, dto.LastSyncedAt.Equal(fixedNow))

	require.Len(t, out.events, 1)
	assert.Equal(t, enums.EventCarrierImported, out.events[0].EventType)
	assert.Equal(t, *dto.ID, out.events[0].AggregateID)
	assert.Equal(t, int64(1234567), out.events[0].Data.(payloads.CarrierImportedEvent).DOTNumber)

	again, err := svc.Import(context.Background(), actor, 1234567)
	require.NoError(t, err)
	assert.Equal(t, *dto.ID, *again.ID)
}

func TestImportStoreFailure(t *testing.T) {
	store := newStubStore()
	store.upsertErr = errors.New("connection refused")
	svc := newTestService(t, store, stubRegistry{records: map[int64]functions.CarrierRecord{
		42: {DOTNumber: 42, Name: "Acme", Status: enums.CarrierStatusActive},
	}}, &stubOutbox{})

	_, err := svc.Import(context.Background(), carrierActor(enums.PermissionCarriersWrite), 42)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
}

func TestLookupReportsExistingCopy(t *testing.T) {
	store := newStubStore()
	actor := carrierActor(enums.PermissionCarriersRead)
	store.byDOT[42] = models.Carrier{ID: uuid.New(), TenantID: actor.TenantID, Name: "Acme Old", DOTNumber: 42}
	svc := newTestService(t, store, stubRegistry{records: map[int64]functions.CarrierRecord{
		42: {DOTNumber: 42, Name: "Acme", Status: enums.CarrierStatusActive},
		43: {DOTNumber: 43, Name: "Beta", Status: enums.CarrierStatusInactive},
	}}, &stubOutbox{})

	res, err := svc.Lookup(context.Background(), actor, 42)
	require.NoError(t, err)
	assert.Nil(t, res.Carrier.ID)
	assert.Equal(t, "Acme", res.Carrier.Name)
	require.NotNil(t, res.Existing)
	assert.Equal(t, "Acme Old", res.Existing.Name)

	res, err = svc.Lookup(context.Background(), actor, 43)
	require.NoError(t, err)
	assert.Nil(t, res.Existing)

	_, err = svc.Lookup(context.Background(), actor, 99)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestSyncRequiresWriteAndStampsCarriers(t *testing.T) {
	store := newStubStore()
	svc := newTestService(t, store, stubRegistry{synced: 12}, &stubOutbox{})

	_, err := svc.Sync(context.Background(), carrierActor(enums.PermissionCarriersRead))
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeForbidden))

	summary, err := svc.Sync(context.Background(), carrierActor(enums.PermissionCarriersWrite))
	require.NoError(t, err)
	assert.Equal(t, 12, summary.Synced)
	assert.True(t, store.marked.Equal(fixedNow))
}

func TestSyncRegistryFailureSkipsStamp(t *testing.T) {
	store := newStubStore()
	svc := newTestService(t, store, stubRegistry{err: pkgerrors.New(pkgerrors.CodeDependency, "registry down")}, &stubOutbox{})

	_, err := svc.SyncRegistry(context.Background())
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
	assert.True(t, store.marked.IsZero())
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{})
	require.Error(t, err)
}
