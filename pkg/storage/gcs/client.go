package gcs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/logger"
)

const (
	pingTimeout          = 5 * time.Second
	maxSignedURLLifetime = 7 * 24 * time.Hour
)

var errBucketRequired = errors.New("gcs bucket name is required")

// Client issues V4 signed URLs for load documents.
type Client struct {
	storage       *storage.Client
	defaultBucket string
	signerEmail   string
	signer        *serviceAccountSigner
	now           func() time.Time
}

// Pinger is implemented by clients that can verify bucket access.
type Pinger interface {
	Ping(ctx context.Context) error
}

type serviceAccountSigner struct {
	clientEmail string
	privateKey  []byte
}

// NewClient builds the storage client from the GCP credentials config and
// verifies the bucket is reachable.
func NewClient(ctx context.Context, cfg config.GCSConfig, gcp config.GCPConfig, logg *logger.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.BucketName) == "" {
		return nil, errBucketRequired
	}

	var opts []option.ClientOption
	var credentials []byte
	switch {
	case gcp.CredentialsJSON != "":
		credentials = []byte(gcp.CredentialsJSON)
		opts = append(opts, option.WithCredentialsJSON(credentials))
	case gcp.ApplicationCredentials != "":
		raw, err := os.ReadFile(gcp.ApplicationCredentials)
		if err != nil {
			return nil, fmt.Errorf("reading credentials file: %w", err)
		}
		credentials = raw
		opts = append(opts, option.WithCredentialsJSON(credentials))
	}

	signer, err := signerFromCredentials(credentials)
	if err != nil {
		return nil, err
	}

	sc, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating gcs client: %w", err)
	}

	client := &Client{
		storage:       sc,
		defaultBucket: cfg.BucketName,
		signerEmail:   strings.TrimSpace(cfg.SignerEmail),
		signer:        signer,
		now:           time.Now,
	}

	if err := client.Ping(ctx); err != nil {
		_ = sc.Close()
		return nil, fmt.Errorf("gcs health check failed: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "gcs client initialized")
	}
	return client, nil
}

// signerFromCredentials extracts the service account key used for local
// signing. Without one, signing goes through the IAM credentials API.
func signerFromCredentials(raw []byte) (*serviceAccountSigner, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var creds struct {
		Type        string `json:"type"`
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
	}
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("parsing service account credentials: %w", err)
	}
	if creds.Type != "" && creds.Type != "service_account" {
		return nil, nil
	}
	if creds.ClientEmail == "" || creds.PrivateKey == "" {
		return nil, errors.New("invalid service account credentials")
	}
	return &serviceAccountSigner{clientEmail: creds.ClientEmail, privateKey: []byte(creds.PrivateKey)}, nil
}

func (c *Client) DefaultBucket() string {
	if c == nil {
		return ""
	}
	return c.defaultBucket
}

// SignedURL returns a V4 GET URL for object that expires after expiry.
func (c *Client) SignedURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	return c.sign(object, http.MethodGet, "", expiry)
}

// SignedUploadURL returns a V4 PUT URL. The uploader must send the same
// Content-Type header.
func (c *Client) SignedUploadURL(ctx context.Context, object, contentType string, expiry time.Duration) (string, error) {
	if strings.TrimSpace(contentType) == "" {
		return "", errors.New("content type is required")
	}
	return c.sign(object, http.MethodPut, contentType, expiry)
}

func (c *Client) sign(object, method, contentType string, expiry time.Duration) (string, error) {
	if c == nil {
		return "", errors.New("gcs client not initialized")
	}
	object = strings.TrimLeft(strings.TrimSpace(object), "/")
	if object == "" {
		return "", errors.New("object key is required")
	}
	if expiry <= 0 || expiry > maxSignedURLLifetime {
		return "", fmt.Errorf("signed url expiry must be within (0, %s]", maxSignedURLLifetime)
	}

	opts := &storage.SignedURLOptions{
		Scheme:      storage.SigningSchemeV4,
		Method:      method,
		ContentType: contentType,
		Expires:     c.now().Add(expiry),
	}
	if c.signer != nil {
		opts.GoogleAccessID = c.signer.clientEmail
		opts.PrivateKey = c.signer.privateKey
		return storage.SignedURL(c.defaultBucket, object, opts)
	}
	if c.storage == nil {
		return "", errors.New("gcs client has no signer")
	}
	if c.signerEmail != "" {
		opts.GoogleAccessID = c.signerEmail
	}
	return c.storage.Bucket(c.defaultBucket).SignedURL(object, opts)
}

// Ping checks that the default bucket exists and is readable.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.storage == nil {
		return errors.New("gcs client not initialized")
	}
	if c.defaultBucket == "" {
		return errors.New("gcs bucket not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if _, err := c.storage.Bucket(c.defaultBucket).Attrs(ctx); err != nil {
		return fmt.Errorf("gcs bucket check failed: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c == nil || c.storage == nil {
		return nil
	}
	return c.storage.Close()
}
