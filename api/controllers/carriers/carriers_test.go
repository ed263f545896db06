package carriers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freightdesk/backoffice/api/middleware"
	internalcarriers "github.com/freightdesk/backoffice/internal/carriers"
	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/pagination"
)

type stubService struct {
	internalcarriers.Service

	params pagination.Params
	dot    int64
	err    error
}

func (s *stubService) List(ctx context.Context, actor auth.Actor, params pagination.Params) (*internalcarriers.Page, error) {
	s.params = params
	return &internalcarriers.Page{Carriers: []internalcarriers.CarrierDTO{{Name: "Acme Haul", DOTNumber: 1234567}}}, s.err
}

func (s *stubService) Lookup(ctx context.Context, actor auth.Actor, dot int64) (*internalcarriers.LookupResult, error) {
	s.dot = dot
	if s.err != nil {
		return nil, s.err
	}
	return &internalcarriers.LookupResult{Carrier: internalcarriers.CarrierDTO{Name: "Acme Haul", DOTNumber: dot}}, nil
}

func (s *stubService) Import(ctx context.Context, actor auth.Actor, dot int64) (*internalcarriers.CarrierDTO, error) {
	s.dot = dot
	return &internalcarriers.CarrierDTO{Name: "Acme Haul", DOTNumber: dot}, s.err
}

func (s *stubService) Sync(ctx context.Context, actor auth.Actor) (*internalcarriers.SyncSummary, error) {
	return &internalcarriers.SyncSummary{Synced: 12, SyncedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)}, s.err
}

func newRequest(method, target, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rc := chi.NewRouteContext()
	for k, v := range params {
		rc.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rc)
	actor := auth.Actor{UserID: uuid.New(), TenantID: uuid.New(), Permissions: []enums.Permission{enums.PermissionCarriersWrite}}
	return req.WithContext(middleware.WithActor(ctx, actor))
}

func TestListParsesPageParams(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	List(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/api/v1/carriers?limit=10&cursor=abc", "", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pagination.Params{Limit: 10, Cursor: "abc"}, svc.params)

	rec = httptest.NewRecorder()
	List(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/api/v1/carriers?limit=500", "", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookupParsesDOTNumber(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	Lookup(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", map[string]string{"dotNumber": "1234567"}))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1234567), svc.dot)

	for _, raw := range []string{"abc", "0", "-5"} {
		rec = httptest.NewRecorder()
		Lookup(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", map[string]string{"dotNumber": raw}))
		assert.Equal(t, http.StatusBadRequest, rec.Code, raw)
	}

	svc.err = pkgerrors.New(pkgerrors.CodeDependency, "carrier lookup failed")
	rec = httptest.NewRecorder()
	Lookup(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/", "", map[string]string{"dotNumber": "42"}))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestImportRequiresDOTNumber(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	Import(svc, nil).ServeHTTP(rec, newRequest(http.MethodPost, "/", `{"dot_number":77}`, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(77), svc.dot)

	rec = httptest.NewRecorder()
	Import(svc, nil).ServeHTTP(rec, newRequest(http.MethodPost, "/", `{}`, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncReturnsSummary(t *testing.T) {
	rec := httptest.NewRecorder()
	Sync(&stubService{}, nil).ServeHTTP(rec, newRequest(http.MethodPost, "/", "", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"synced":12`)
}
