package vehicles

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

type lister interface {
	List(ctx context.Context, tenantID uuid.UUID, params pagination.Params) ([]models.Vehicle, string, error)
}

// VehicleDTO is the API shape of a vehicle, including whether loads on it go
// through carrier approval.
type VehicleDTO struct {
	ID                   uuid.UUID        `json:"id"`
	UnitNumber           string           `json:"unit_number"`
	TruckType            enums.TruckType  `json:"truck_type,omitempty"`
	ContractorPercentage *decimal.Decimal `json:"contractor_percentage,omitempty"`
	RequiresLoadApproval bool             `json:"requires_load_approval"`
	Status               string           `json:"status"`
}

// Page is one cursor page of vehicles.
type Page struct {
	Vehicles   []VehicleDTO `json:"vehicles"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// Service exposes vehicle reads to the API.
type Service interface {
	List(ctx context.Context, actor auth.Actor, params pagination.Params) (*Page, error)
}

type service struct {
	repo lister
}

// NewService builds the vehicles service.
func NewService(repo lister) (Service, error) {
	if repo == nil {
		return nil, errors.New("vehicles repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, params pagination.Params) (*Page, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return nil, err
	}
	rows, next, err := s.repo.List(ctx, actor.TenantID, params)
	if err != nil {
		if pkgerrors.As(err) != nil {
			return nil, err
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list vehicles")
	}
	page := &Page{Vehicles: make([]VehicleDTO, 0, len(rows)), NextCursor: next}
	for _, v := range rows {
		page.Vehicles = append(page.Vehicles, FromModel(v))
	}
	return page, nil
}

// FromModel maps a stored vehicle to its DTO.
func FromModel(v models.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:                   v.ID,
		UnitNumber:           v.UnitNumber,
		TruckType:            v.TruckType,
		ContractorPercentage: v.ContractorPercentage,
		RequiresLoadApproval: v.RequiresLoadApproval,
		Status:               v.Status,
	}
}
