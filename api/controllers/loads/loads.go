package loads

import (
	"bytes"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/api/middleware"
	"github.com/freightdesk/backoffice/api/responses"
	"github.com/freightdesk/backoffice/api/validators"
	internalloads "github.com/freightdesk/backoffice/internal/loads"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/logger"
)

const maxSearchLen = 128

// List renders one page of the load board.
func List(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, err := parseBoardQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		board, err := svc.List(r.Context(), middleware.ActorFromContext(r.Context()), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalloads.NewBoardView(*board))
	}
}

func parseBoardQuery(r *http.Request) (internalloads.Query, error) {
	q := r.URL.Query()
	sort, err := internalloads.ParseSort(q.Get("sort"), q.Get("dir"))
	if err != nil {
		return internalloads.Query{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}
	from, err := validators.ParseQueryDate(r, "pickup_from")
	if err != nil {
		return internalloads.Query{}, err
	}
	to, err := validators.ParseQueryDate(r, "pickup_to")
	if err != nil {
		return internalloads.Query{}, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return internalloads.Query{}, pkgerrors.New(pkgerrors.CodeValidation, "pickup_to must not be before pickup_from")
	}
	approval, err := validators.ParseQueryBool(r, "approval_mode")
	if err != nil {
		return internalloads.Query{}, err
	}
	page, err := validators.ParseQueryPage(r, "page")
	if err != nil {
		return internalloads.Query{}, err
	}
	return internalloads.Query{
		Filter: internalloads.Filter{
			Status:       strings.ToLower(strings.TrimSpace(q.Get("status"))),
			Search:       validators.SanitizeString(q.Get("q"), maxSearchLen),
			PickupFrom:   from,
			PickupTo:     to,
			ApprovalMode: approval,
		},
		Sort: sort,
		Page: page,
	}, nil
}

// Get returns a single load.
func Get(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := svc.Get(r.Context(), middleware.ActorFromContext(r.Context()), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalloads.NewLoadView(*row))
	}
}

// Create adds a load through the manual or import entry path.
func Create(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body createLoadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := svc.Create(r.Context(), middleware.ActorFromContext(r.Context()), internalloads.CreateInput{
			LoadNumber: validators.SanitizeString(body.LoadNumber, 64),
			Source:     internalloads.Source(body.Source),
			Fields:     body.toFields(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, internalloads.NewLoadView(*row))
	}
}

// Update patches the supplied fields of a load.
func Update(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body updateLoadRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := svc.Update(r.Context(), middleware.ActorFromContext(r.Context()), id, internalloads.UpdateInput{
			LoadNumber: body.LoadNumber,
			Fields:     body.toFields(),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalloads.NewLoadView(*row))
	}
}

// ChangeStatus moves one load to a new status.
func ChangeStatus(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body statusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := svc.ChangeStatus(r.Context(), middleware.ActorFromContext(r.Context()), id, body.status())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalloads.NewLoadView(*row))
	}
}

// Approve records carrier approval and locks the current rate.
func Approve(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body approveRequest
		if err := validators.DecodeOptionalJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		row, err := svc.Approve(r.Context(), middleware.ActorFromContext(r.Context()), id, internalloads.ApproveInput{
			CarrierRate: body.CarrierRate,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, internalloads.NewLoadView(*row))
	}
}

// Delete removes one load.
func Delete(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseLoadID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if err := svc.Delete(r.Context(), middleware.ActorFromContext(r.Context()), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": 1})
	}
}

// BulkStatus moves every listed load to one status in a single write.
func BulkStatus(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bulkStatusRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.BulkUpdateStatus(r.Context(), middleware.ActorFromContext(r.Context()), body.LoadIDs, statusRequest{Status: body.Status}.status())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"loads": internalloads.NewLoadViews(rows), "updated": len(rows)})
	}
}

// BulkAssign sets the driver or vehicle of every listed load.
func BulkAssign(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body bulkAssignRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		rows, err := svc.BulkAssign(r.Context(), middleware.ActorFromContext(r.Context()), internalloads.BulkAssignInput{
			IDs:      body.LoadIDs,
			Field:    internalloads.AssignField(body.Field),
			TargetID: body.TargetID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"loads": internalloads.NewLoadViews(rows), "updated": len(rows)})
	}
}

// BulkDelete removes every listed load.
func BulkDelete(svc internalloads.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body loadIDsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		deleted, err := svc.BulkDelete(r.Context(), middleware.ActorFromContext(r.Context()), body.LoadIDs)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"deleted": deleted})
	}
}

// Export downloads the selected loads as CSV.
func Export(svc internalloads.Service, logg *logger.Logger, clock func() time.Time) http.HandlerFunc {
	if clock == nil {
		clock = time.Now
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var body loadIDsRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var buf bytes.Buffer
		if _, err := svc.Export(r.Context(), middleware.ActorFromContext(r.Context()), body.LoadIDs, &buf); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteCSV(w, internalloads.ExportFilename(clock()), buf.Bytes())
	}
}

func parseLoadID(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, "loadId"))
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid load id").WithDetails(map[string]any{"field": "loadId"})
	}
	return id, nil
}
