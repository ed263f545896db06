package documents

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
	internaldocuments "github.com/freightdesk/backoffice/internal/documents"
	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
)

type stubService struct {
	attach  internaldocuments.AttachInput
	docType enums.DocumentType
	loadID  uuid.UUID
	err     error
}

func (s *stubService) List(ctx context.Context, actor auth.Actor, loadID uuid.UUID) ([]internaldocuments.DocumentDTO, error) {
	s.loadID = loadID
	return []internaldocuments.DocumentDTO{{ID: uuid.New(), LoadID: loadID, DocumentType: enums.DocumentTypeBillOfLading, FileName: "bol.pdf"}}, s.err
}

func (s *stubService) Attach(ctx context.Context, actor auth.Actor, loadID uuid.UUID, input internaldocuments.AttachInput) (*internaldocuments.AttachResult, error) {
	s.loadID, s.attach = loadID, input
	if s.err != nil {
		return nil, s.err
	}
	return &internaldocuments.AttachResult{
		Document: internaldocuments.DocumentDTO{ID: uuid.New(), LoadID: loadID, DocumentType: input.DocumentType, FileName: input.FileName},
		Upload:   internaldocuments.SignedURL{URL: "https://storage.example/upload", Method: http.MethodPut, ExpiresAt: time.Now().Add(time.Minute)},
	}, nil
}

func (s *stubService) DownloadURL(ctx context.Context, actor auth.Actor, loadID uuid.UUID, docType enums.DocumentType) (*internaldocuments.SignedURL, error) {
	s.loadID, s.docType = loadID, docType
	if s.err != nil {
		return nil, s.err
	}
	return &internaldocuments.SignedURL{URL: "https://storage.example/get", Method: http.MethodGet}, nil
}

func newRequest(method, body string, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	rc := chi.NewRouteContext()
	for k, v := range params {
		rc.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rc)
	actor := auth.Actor{UserID: uuid.New(), TenantID: uuid.New(), Permissions: []enums.Permission{enums.PermissionLoadsWrite}}
	return req.WithContext(middleware.WithActor(ctx, actor))
}

func TestAttachNormalizesDocumentType(t *testing.T) {
	svc := &stubService{}
	loadID := uuid.New()
	rec := httptest.NewRecorder()
	body := `{"document_type":" Bill_Of_Lading ","file_name":"bol.pdf","content_type":"application/pdf"}`

	Attach(svc, nil).ServeHTTP(rec, newRequest(http.MethodPost, body, map[string]string{"loadId": loadID.String()}))

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, loadID, svc.loadID)
	assert.Equal(t, enums.DocumentTypeBillOfLading, svc.attach.DocumentType)
	assert.Equal(t, "application/pdf", svc.attach.ContentType)
	assert.Contains(t, rec.Body.String(), `"method":"PUT"`)
}

func TestAttachRejectsMissingFields(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	Attach(svc, nil).ServeHTTP(rec, newRequest(http.MethodPost, `{"document_type":"other"}`, map[string]string{"loadId": uuid.NewString()}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadURLReadsDocumentType(t *testing.T) {
	svc := &stubService{}
	loadID := uuid.New()
	rec := httptest.NewRecorder()

	DownloadURL(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "", map[string]string{"loadId": loadID.String(), "documentType": "rate_confirmation"}))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, enums.DocumentTypeRateConfirmation, svc.docType)

	svc.err = pkgerrors.New(pkgerrors.CodeNotFound, "no rate_confirmation attached to load")
	rec = httptest.NewRecorder()
	DownloadURL(svc, nil).ServeHTTP(rec, newRequest(http.MethodGet, "", map[string]string{"loadId": loadID.String(), "documentType": "rate_confirmation"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRejectsBadLoadID(t *testing.T) {
	rec := httptest.NewRecorder()
	List(&stubService{}, nil).ServeHTTP(rec, newRequest(http.MethodGet, "", map[string]string{"loadId": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	List(&stubService{}, nil).ServeHTTP(rec, newRequest(http.MethodGet, "", map[string]string{"loadId": uuid.NewString()}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"documents"`)
}
