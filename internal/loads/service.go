package loads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/db"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/logger"
	"github.com/freightdesk/backoffice/pkg/metrics"
	"github.com/freightdesk/backoffice/pkg/outbox"
	"github.com/freightdesk/backoffice/pkg/outbox/payloads"
)

const referencedByInvoiceMessage = "load is referenced by an invoice and cannot be deleted"

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type outboxPublisher interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

// Service is the load board: tenant-scoped queries and the lifecycle mutations.
type Service interface {
	List(ctx context.Context, actor auth.Actor, q Query) (*Board, error)
	Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Row, error)
	Create(ctx context.Context, actor auth.Actor, input CreateInput) (*Row, error)
	Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input UpdateInput) (*Row, error)
	ChangeStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status enums.LoadStatus) (*Row, error)
	Approve(ctx context.Context, actor auth.Actor, id uuid.UUID, input ApproveInput) (*Row, error)
	BulkUpdateStatus(ctx context.Context, actor auth.Actor, ids []uuid.UUID, status enums.LoadStatus) ([]Row, error)
	BulkAssign(ctx context.Context, actor auth.Actor, input BulkAssignInput) ([]Row, error)
	Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error
	BulkDelete(ctx context.Context, actor auth.Actor, ids []uuid.UUID) (int, error)
	Export(ctx context.Context, actor auth.Actor, ids []uuid.UUID, w io.Writer) (int, error)
}

// CreateInput describes a new load.
type CreateInput struct {
	LoadNumber string
	Source     Source
	Fields     LoadFields
}

// UpdateInput patches an existing load.
type UpdateInput struct {
	LoadNumber *string
	Fields     LoadFields
}

// ApproveInput optionally pins the carrier rate at approval time.
type ApproveInput struct {
	CarrierRate *decimal.Decimal
}

// AssignField is the column a bulk assignment writes.
type AssignField string

const (
	AssignDriver  AssignField = "driver"
	AssignVehicle AssignField = "vehicle"
)

func (f AssignField) column() string {
	switch f {
	case AssignDriver:
		return "driver_id"
	case AssignVehicle:
		return "vehicle_id"
	}
	return ""
}

// BulkAssignInput sets the driver or vehicle of every listed load. A nil
// TargetID clears the assignment.
type BulkAssignInput struct {
	IDs      []uuid.UUID
	Field    AssignField
	TargetID *uuid.UUID
}

// ServiceParams wires the load service.
type ServiceParams struct {
	Repo     Repository
	Vehicles VehicleReader
	Drivers  DriverReader
	Tx       txRunner
	Outbox   outboxPublisher
	Metrics  *metrics.LoadMetrics
	Logger   *logger.Logger
	Policy   Policy
	Clock    func() time.Time
}

type service struct {
	repo     Repository
	vehicles VehicleReader
	drivers  DriverReader
	tx       txRunner
	outbox   outboxPublisher
	metrics  *metrics.LoadMetrics
	logg     *logger.Logger
	policy   Policy
	now      func() time.Time
}

// NewService builds the load service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("loads repository required")
	}
	if params.Vehicles == nil {
		return nil, fmt.Errorf("vehicle reader required")
	}
	if params.Drivers == nil {
		return nil, fmt.Errorf("driver reader required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if params.Outbox == nil {
		return nil, fmt.Errorf("outbox publisher required")
	}
	policy := params.Policy
	if policy.PageSize <= 0 {
		policy.PageSize = defaultPageSize
	}
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.StatusOrder.rank == nil {
		policy.StatusOrder = DefaultStatusOrder
	}
	if !policy.InitialStatus.IsValid() {
		policy.InitialStatus = enums.LoadStatusAvailable
	}
	if !policy.ImportInitialStatus.IsValid() {
		policy.ImportInitialStatus = enums.LoadStatusActionNeeded
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:     params.Repo,
		vehicles: params.Vehicles,
		drivers:  params.Drivers,
		tx:       params.Tx,
		outbox:   params.Outbox,
		metrics:  params.Metrics,
		logg:     params.Logger,
		policy:   policy,
		now:      clock,
	}, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, q Query) (*Board, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return nil, err
	}
	if q.Filter.Location == nil {
		q.Filter.Location = s.policy.Location
	}
	rows, err := s.repo.ListByTenant(ctx, actor.TenantID)
	if err != nil {
		return nil, s.storeError(ctx, err, "list loads")
	}
	board := Arrange(rows, q, s.policy.StatusOrder, s.policy.PageSize)
	return &board, nil
}

func (s *service) Get(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Row, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return nil, err
	}
	return s.reload(ctx, actor, id)
}

func (s *service) Create(ctx context.Context, actor auth.Actor, input CreateInput) (row *Row, err error) {
	defer func() { s.observe("create", 1, err) }()

	if err := actor.Require(enums.PermissionLoadsWrite); err != nil {
		return nil, err
	}
	number := strings.TrimSpace(input.LoadNumber)
	if number == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "load number required")
	}
	source := input.Source
	if source == "" {
		source = SourceManual
	}
	if !source.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown load source %q", source))
	}
	if err := input.Fields.validate(); err != nil {
		return nil, err
	}
	if err := s.checkTargets(ctx, actor, input.Fields.DriverID, input.Fields.VehicleID); err != nil {
		return nil, err
	}

	load := models.Load{
		ID:         uuid.New(),
		TenantID:   actor.TenantID,
		LoadNumber: number,
		Status:     s.policy.InitialStatusFor(source),
	}
	input.Fields.applyTo(&load)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, &load); err != nil {
			return err
		}
		return s.emit(ctx, tx, actor, enums.EventLoadCreated, load.ID, payloads.LoadCreatedEvent{
			LoadID:     load.ID,
			LoadNumber: load.LoadNumber,
			Status:     load.Status,
			Source:     string(source),
		})
	})
	if err != nil {
		return nil, s.mutationError(ctx, err, "create load")
	}
	return s.reload(ctx, actor, load.ID)
}

func (s *service) Update(ctx context.Context, actor auth.Actor, id uuid.UUID, input UpdateInput) (row *Row, err error) {
	defer func() { s.observe("update", 1, err) }()

	if err := actor.Require(enums.PermissionLoadsWrite); err != nil {
		return nil, err
	}
	if err := input.Fields.validate(); err != nil {
		return nil, err
	}
	cols := input.Fields.columns()
	if input.LoadNumber != nil {
		number := strings.TrimSpace(*input.LoadNumber)
		if number == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "load number required")
		}
		cols["load_number"] = number
	}
	if len(cols) == 0 {
		return s.Get(ctx, actor, id)
	}
	if err := s.checkTargets(ctx, actor, input.Fields.DriverID, nil); err != nil {
		return nil, err
	}
	var vehicle *models.Vehicle
	if input.Fields.VehicleID != nil {
		vehicle, err = s.findVehicle(ctx, actor, *input.Fields.VehicleID)
		if err != nil {
			return nil, err
		}
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		current, err := repo.FindByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		fields := sortedKeys(cols)
		// Resending the current vehicle keeps the approval; BulkAssign always re-gates.
		reset := vehicle != nil && RequiresApproval(vehicle) && !sameID(current.VehicleID, &vehicle.ID)
		if reset {
			for k, v := range approvalResetColumns() {
				cols[k] = v
			}
		}
		cols["updated_at"] = s.now().UTC()
		if err := repo.Update(ctx, actor.TenantID, id, cols); err != nil {
			return err
		}
		if err := s.emit(ctx, tx, actor, enums.EventLoadUpdated, id, payloads.LoadUpdatedEvent{
			LoadID:     id,
			LoadNumber: current.LoadNumber,
			Fields:     fields,
		}); err != nil {
			return err
		}
		if reset && current.CarrierApproved {
			return s.emit(ctx, tx, actor, enums.EventLoadApprovalReset, id, payloads.LoadApprovalResetEvent{
				LoadID:     id,
				LoadNumber: current.LoadNumber,
				VehicleID:  vehicle.ID,
			})
		}
		return nil
	})
	if err != nil {
		return nil, s.mutationError(ctx, err, "update load")
	}
	return s.reload(ctx, actor, id)
}

func (s *service) ChangeStatus(ctx context.Context, actor auth.Actor, id uuid.UUID, status enums.LoadStatus) (*Row, error) {
	rows, err := s.changeStatus(ctx, actor, []uuid.UUID{id}, status, false)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
	}
	return &rows[0], nil
}

func (s *service) BulkUpdateStatus(ctx context.Context, actor auth.Actor, ids []uuid.UUID, status enums.LoadStatus) ([]Row, error) {
	return s.changeStatus(ctx, actor, ids, status, true)
}

func (s *service) changeStatus(ctx context.Context, actor auth.Actor, ids []uuid.UUID, status enums.LoadStatus, bulk bool) (out []Row, err error) {
	op := "status"
	if bulk {
		op = "bulk_status"
	}
	ids = uniqueIDs(ids)
	defer func() { s.observe(op, len(ids), err) }()

	if err := actor.Require(enums.PermissionLoadsWrite); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one load id required")
	}
	if !status.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid load status %q", status))
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		current, err := s.lockedSet(ctx, repo, actor, ids)
		if err != nil {
			return err
		}
		for _, load := range current {
			if !s.policy.AllowsTransition(load.Status, status) {
				return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("load %s is %s and cannot change status", load.LoadNumber, load.Status)).
					WithDetails(map[string]any{"load_id": load.ID, "status": load.Status})
			}
		}
		if _, err := repo.UpdateMany(ctx, actor.TenantID, ids, map[string]any{
			"status":     status,
			"updated_at": s.now().UTC(),
		}); err != nil {
			return err
		}
		for _, load := range current {
			if load.Status == status {
				continue
			}
			if err := s.emit(ctx, tx, actor, enums.EventLoadStatusChanged, load.ID, payloads.LoadStatusChangedEvent{
				LoadID:     load.ID,
				LoadNumber: load.LoadNumber,
				From:       load.Status,
				To:         status,
				Bulk:       bulk,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.mutationError(ctx, err, "update load status")
	}
	return s.reloadMany(ctx, actor, ids)
}

func (s *service) Approve(ctx context.Context, actor auth.Actor, id uuid.UUID, input ApproveInput) (row *Row, err error) {
	defer func() { s.observe("approve", 1, err) }()

	if err := actor.Require(enums.PermissionLoadsApprove); err != nil {
		return nil, err
	}
	if input.CarrierRate != nil && input.CarrierRate.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "carrier_rate must not be negative")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		load, err := repo.FindByID(ctx, actor.TenantID, id)
		if err != nil {
			return err
		}
		if !RequiresApproval(load.Vehicle) {
			return pkgerrors.New(pkgerrors.CodeStateConflict, "load does not require carrier approval")
		}
		if load.Rate == nil {
			return pkgerrors.New(pkgerrors.CodeValidation, "load has no rate to approve")
		}
		now := s.now().UTC()
		payload := load.Rate.Round(2)
		cols := map[string]any{
			"carrier_approved": true,
			"approved_payload": payload,
			"approved_at":      now,
			"approved_by":      actor.UserID,
			"updated_at":       now,
		}
		var carrierRate *decimal.Decimal
		if input.CarrierRate != nil {
			r := input.CarrierRate.Round(2)
			carrierRate = &r
			cols["carrier_rate"] = r
		}
		if err := repo.Update(ctx, actor.TenantID, id, cols); err != nil {
			return err
		}
		return s.emit(ctx, tx, actor, enums.EventLoadApproved, id, payloads.LoadApprovedEvent{
			LoadID:          id,
			LoadNumber:      load.LoadNumber,
			ApprovedPayload: payload,
			CarrierRate:     carrierRate,
			ApprovedBy:      actor.UserID,
		})
	})
	if err != nil {
		return nil, s.mutationError(ctx, err, "approve load")
	}
	return s.reload(ctx, actor, id)
}

func (s *service) BulkAssign(ctx context.Context, actor auth.Actor, input BulkAssignInput) (out []Row, err error) {
	ids := uniqueIDs(input.IDs)
	defer func() { s.observe("bulk_assign", len(ids), err) }()

	if err := actor.Require(enums.PermissionLoadsWrite); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one load id required")
	}
	column := input.Field.column()
	if column == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown assignment field %q", input.Field))
	}

	var vehicle *models.Vehicle
	if input.TargetID != nil {
		switch input.Field {
		case AssignDriver:
			if err := s.checkTargets(ctx, actor, input.TargetID, nil); err != nil {
				return nil, err
			}
		case AssignVehicle:
			if vehicle, err = s.findVehicle(ctx, actor, *input.TargetID); err != nil {
				return nil, err
			}
		}
	}
	reset := RequiresApproval(vehicle)

	cols := map[string]any{
		column:       nil,
		"updated_at": s.now().UTC(),
	}
	if input.TargetID != nil {
		cols[column] = *input.TargetID
	}
	if reset {
		for k, v := range approvalResetColumns() {
			cols[k] = v
		}
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		current, err := s.lockedSet(ctx, repo, actor, ids)
		if err != nil {
			return err
		}
		if _, err := repo.UpdateMany(ctx, actor.TenantID, ids, cols); err != nil {
			return err
		}
		for _, load := range current {
			if err := s.emit(ctx, tx, actor, enums.EventLoadAssigned, load.ID, payloads.LoadAssignedEvent{
				LoadID:     load.ID,
				LoadNumber: load.LoadNumber,
				Field:      string(input.Field),
				TargetID:   input.TargetID,
			}); err != nil {
				return err
			}
			if reset && load.CarrierApproved {
				if err := s.emit(ctx, tx, actor, enums.EventLoadApprovalReset, load.ID, payloads.LoadApprovalResetEvent{
					LoadID:     load.ID,
					LoadNumber: load.LoadNumber,
					VehicleID:  vehicle.ID,
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, s.mutationError(ctx, err, "assign loads")
	}
	return s.reloadMany(ctx, actor, ids)
}

func (s *service) Delete(ctx context.Context, actor auth.Actor, id uuid.UUID) error {
	_, err := s.BulkDelete(ctx, actor, []uuid.UUID{id})
	return err
}

func (s *service) BulkDelete(ctx context.Context, actor auth.Actor, ids []uuid.UUID) (deleted int, err error) {
	ids = uniqueIDs(ids)
	defer func() { s.observe("delete", deleted, err) }()

	if err := actor.Require(enums.PermissionLoadsDelete); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "at least one load id required")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		current, err := s.lockedSet(ctx, repo, actor, ids)
		if err != nil {
			return err
		}
		for _, load := range current {
			if err := s.emit(ctx, tx, actor, enums.EventLoadDeleted, load.ID, payloads.LoadDeletedEvent{
				LoadID:     load.ID,
				LoadNumber: load.LoadNumber,
			}); err != nil {
				return err
			}
		}
		n, err := repo.DeleteMany(ctx, actor.TenantID, ids)
		if err != nil {
			return err
		}
		deleted = int(n)
		return nil
	})
	if err != nil {
		deleted = 0
		if db.IsForeignKeyViolation(err) {
			return 0, pkgerrors.Wrap(pkgerrors.CodeConflict, err, referencedByInvoiceMessage)
		}
		return 0, s.mutationError(ctx, err, "delete loads")
	}
	return deleted, nil
}

// Export writes the selected loads as CSV in the order the ids were given.
func (s *service) Export(ctx context.Context, actor auth.Actor, ids []uuid.UUID, w io.Writer) (int, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return 0, err
	}
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "at least one load id required")
	}
	rows, err := s.repo.FindByIDs(ctx, actor.TenantID, ids)
	if err != nil {
		return 0, s.storeError(ctx, err, "load export rows")
	}
	if len(rows) != len(ids) {
		return 0, pkgerrors.New(pkgerrors.CodeNotFound, "one or more loads not found")
	}
	byID := make(map[uuid.UUID]models.Load, len(rows))
	for _, load := range rows {
		byID[load.ID] = load
	}
	ordered := make([]models.Load, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	if err := WriteCSV(w, ordered, s.policy.Location); err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "write export")
	}
	return len(ordered), nil
}

// lockedSet loads every id inside the transaction and fails when any is
// missing for the tenant.
func (s *service) lockedSet(ctx context.Context, repo Repository, actor auth.Actor, ids []uuid.UUID) ([]models.Load, error) {
	current, err := repo.FindByIDs(ctx, actor.TenantID, ids)
	if err != nil {
		return nil, err
	}
	if len(current) != len(ids) {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "one or more loads not found").
			WithDetails(map[string]any{"requested": len(ids), "found": len(current)})
	}
	return current, nil
}

func (s *service) reload(ctx context.Context, actor auth.Actor, id uuid.UUID) (*Row, error) {
	load, err := s.repo.FindByID(ctx, actor.TenantID, id)
	if err != nil {
		return nil, s.storeError(ctx, err, "load load")
	}
	row := NewRow(*load)
	return &row, nil
}

func (s *service) reloadMany(ctx context.Context, actor auth.Actor, ids []uuid.UUID) ([]Row, error) {
	current, err := s.repo.FindByIDs(ctx, actor.TenantID, ids)
	if err != nil {
		return nil, s.storeError(ctx, err, "reload loads")
	}
	SortLoads(current, Sort{}, s.policy.StatusOrder)
	rows := make([]Row, 0, len(current))
	for _, load := range current {
		rows = append(rows, NewRow(load))
	}
	return rows, nil
}

func (s *service) checkTargets(ctx context.Context, actor auth.Actor, driverID, vehicleID *uuid.UUID) error {
	if driverID != nil {
		if _, err := s.drivers.FindDriver(ctx, actor.TenantID, *driverID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeValidation, "driver not found")
			}
			return s.storeError(ctx, err, "load driver")
		}
	}
	if vehicleID != nil {
		if _, err := s.findVehicle(ctx, actor, *vehicleID); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) findVehicle(ctx context.Context, actor auth.Actor, id uuid.UUID) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindVehicle(ctx, actor.TenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "vehicle not found")
		}
		return nil, s.storeError(ctx, err, "load vehicle")
	}
	return vehicle, nil
}

func (s *service) emit(ctx context.Context, tx *gorm.DB, actor auth.Actor, eventType enums.OutboxEventType, loadID uuid.UUID, data any) error {
	err := s.outbox.Emit(ctx, tx, outbox.DomainEvent{
		EventType:     eventType,
		AggregateType: enums.AggregateLoad,
		AggregateID:   loadID,
		TenantID:      actor.TenantID,
		Actor:         &outbox.ActorRef{UserID: actor.UserID, TenantID: actor.TenantID},
		Data:          data,
		OccurredAt:    s.now(),
	})
	if err != nil {
		return pkgerrors.StoreFailure(err, "queue load event")
	}
	return nil
}

// storeError maps a read failure.
func (s *service) storeError(ctx context.Context, err error, action string) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
	}
	if s.logg != nil {
		s.logg.Error(s.logg.WithField(ctx, "action", action), "load store read failed", err)
	}
	return pkgerrors.Wrap(pkgerrors.CodeDependency, err, action)
}

// mutationError maps a failed transaction. Nothing was applied.
func (s *service) mutationError(ctx context.Context, err error, action string) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
	}
	if db.IsUniqueViolation(err, "") {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "load number already exists")
	}
	if db.IsForeignKeyViolation(err) {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "referenced record does not exist")
	}
	if s.logg != nil {
		s.logg.Error(s.logg.WithField(ctx, "action", action), "load mutation failed", err)
	}
	return pkgerrors.StoreFailure(err, action)
}

func (s *service) observe(op string, affected int, err error) {
	s.metrics.Observe(op, affected, err)
}

func approvalResetColumns() map[string]any {
	return map[string]any{
		"carrier_approved": false,
		"approved_payload": nil,
		"approved_at":      nil,
		"approved_by":      nil,
	}
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
