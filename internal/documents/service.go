package documents

import (
	"context"
	"errors"
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/freightdesk/backoffice/pkg/auth"
	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
	"github.com/freightdesk/backoffice/pkg/logger"
)

const (
	defaultURLExpiry = 15 * time.Minute
	maxFileNameLen   = 200
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type store interface {
	ListByLoad(ctx context.Context, tenantID, loadID uuid.UUID) ([]models.LoadDocument, error)
	LatestByType(ctx context.Context, tenantID, loadID uuid.UUID, docType enums.DocumentType) (*models.LoadDocument, error)
	Create(ctx context.Context, doc *models.LoadDocument) error
}

type loadFinder interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Load, error)
}

// urlSigner issues time-limited object URLs.
type urlSigner interface {
	SignedURL(ctx context.Context, object string, expiry time.Duration) (string, error)
	SignedUploadURL(ctx context.Context, object, contentType string, expiry time.Duration) (string, error)
}

// Service manages the paperwork attached to loads.
type Service interface {
	List(ctx context.Context, actor auth.Actor, loadID uuid.UUID) ([]DocumentDTO, error)
	Attach(ctx context.Context, actor auth.Actor, loadID uuid.UUID, input AttachInput) (*AttachResult, error)
	DownloadURL(ctx context.Context, actor auth.Actor, loadID uuid.UUID, docType enums.DocumentType) (*SignedURL, error)
}

// ServiceParams wires the documents service.
type ServiceParams struct {
	Repo      store
	Loads     loadFinder
	Signer    urlSigner
	URLExpiry time.Duration
	Logger    *logger.Logger
	Clock     func() time.Time
}

type service struct {
	repo   store
	loads  loadFinder
	signer urlSigner
	expiry time.Duration
	logg   *logger.Logger
	now    func() time.Time
}

// NewService builds the documents service.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, errors.New("documents repository required")
	}
	if params.Loads == nil {
		return nil, errors.New("load finder required")
	}
	if params.Signer == nil {
		return nil, errors.New("url signer required")
	}
	expiry := params.URLExpiry
	if expiry <= 0 {
		expiry = defaultURLExpiry
	}
	clock := params.Clock
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:   params.Repo,
		loads:  params.Loads,
		signer: params.Signer,
		expiry: expiry,
		logg:   params.Logger,
		now:    clock,
	}, nil
}

func (s *service) List(ctx context.Context, actor auth.Actor, loadID uuid.UUID) ([]DocumentDTO, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return nil, err
	}
	if err := s.ensureLoad(ctx, actor, loadID); err != nil {
		return nil, err
	}
	rows, err := s.repo.ListByLoad(ctx, actor.TenantID, loadID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list documents")
	}
	out := make([]DocumentDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, FromModel(row))
	}
	return out, nil
}

func (s *service) Attach(ctx context.Context, actor auth.Actor, loadID uuid.UUID, input AttachInput) (*AttachResult, error) {
	if err := actor.Require(enums.PermissionLoadsWrite); err != nil {
		return nil, err
	}
	if !input.DocumentType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid document type %q", input.DocumentType))
	}
	contentType, err := normalizeContentType(input.ContentType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, err.Error())
	}
	if !contentTypeAllowed(input.DocumentType, contentType) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be %s", input.DocumentType, allowedMimeDescription(input.DocumentType)))
	}
	fileName := sanitizeFileName(input.FileName)
	if fileName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name required")
	}
	if err := s.ensureLoad(ctx, actor, loadID); err != nil {
		return nil, err
	}

	uploader := actor.UserID
	doc := models.LoadDocument{
		ID:           uuid.New(),
		TenantID:     actor.TenantID,
		LoadID:       loadID,
		DocumentType: input.DocumentType,
		FileName:     fileName,
		ContentType:  contentType,
		UploadedBy:   &uploader,
		CreatedAt:    s.now().UTC(),
	}
	doc.ObjectKey = ObjectKey(doc)

	uploadURL, err := s.signer.SignedUploadURL(ctx, doc.ObjectKey, contentType, s.expiry)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sign upload url")
	}
	if err := s.repo.Create(ctx, &doc); err != nil {
		if s.logg != nil {
			s.logg.Error(s.logg.WithField(ctx, "load_id", loadID.String()), "document attach failed", err)
		}
		return nil, pkgerrors.StoreFailure(err, "attach document")
	}
	return &AttachResult{
		Document: FromModel(doc),
		Upload: SignedURL{
			URL:       uploadURL,
			Method:    "PUT",
			ExpiresAt: doc.CreatedAt.Add(s.expiry),
		},
	}, nil
}

func (s *service) DownloadURL(ctx context.Context, actor auth.Actor, loadID uuid.UUID, docType enums.DocumentType) (*SignedURL, error) {
	if err := actor.Require(enums.PermissionLoadsRead); err != nil {
		return nil, err
	}
	if !docType.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid document type %q", docType))
	}
	doc, err := s.repo.LatestByType(ctx, actor.TenantID, loadID, docType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("no %s on this load", docType))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find document")
	}
	issued := s.now().UTC()
	url, err := s.signer.SignedURL(ctx, doc.ObjectKey, s.expiry)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sign download url")
	}
	dto := FromModel(*doc)
	return &SignedURL{URL: url, Method: "GET", ExpiresAt: issued.Add(s.expiry), Document: &dto}, nil
}

func (s *service) ensureLoad(ctx context.Context, actor auth.Actor, loadID uuid.UUID) error {
	if _, err := s.loads.FindByID(ctx, actor.TenantID, loadID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "find load")
	}
	return nil
}

// ObjectKey is the bucket path of a document:
// tenants/{tenant}/loads/{load}/{type}/{document}/{file}.
func ObjectKey(doc models.LoadDocument) string {
	return path.Join(
		"tenants", doc.TenantID.String(),
		"loads", doc.LoadID.String(),
		doc.DocumentType.String(),
		doc.ID.String(),
		doc.FileName,
	)
}

func sanitizeFileName(name string) string {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(name), "\\", "/"))
	if base == "." || base == "/" {
		return ""
	}
	clean := strings.Trim(unsafeFileNameChars.ReplaceAllString(base, "_"), "_.")
	if len(clean) > maxFileNameLen {
		clean = clean[len(clean)-maxFileNameLen:]
	}
	return clean
}
