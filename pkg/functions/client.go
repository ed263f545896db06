package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
)

const (
	lookupPath                 = "carrier-lookup"
	syncPath                   = "carrier-sync"
	responseBodyReadLimit int64 = 1024
)

var (
	errBaseURLRequired = errors.New("functions base url is required")
)

// Client calls the serverless functions that front the carrier registry.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient builds the functions client. The API key is optional for local
// emulators.
func NewClient(baseURL, apiKey string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, errBaseURLRequired
	}

	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}
	return client, nil
}

// CarrierRecord is the normalized carrier returned by the registry lookup.
type CarrierRecord struct {
	DOTNumber    int64
	Name         string
	MCNumber     *string
	Status       enums.CarrierStatus
	SafetyRating *string
	Phone        *string
}

// SyncResult reports how many carriers the bulk sync refreshed.
type SyncResult struct {
	Synced int
}

// LookupCarrier fetches a carrier by DOT number. A registry miss is NOT_FOUND.
func (c *Client) LookupCarrier(ctx context.Context, dotNumber int64) (*CarrierRecord, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "functions client not configured")
	}
	if dotNumber <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "dot number must be positive")
	}

	var apiResp struct {
		DOTNumber    int64  `json:"dot_number"`
		LegalName    string `json:"legal_name"`
		DBAName      string `json:"dba_name"`
		MCNumber     string `json:"mc_number"`
		Status       string `json:"status"`
		SafetyRating string `json:"safety_rating"`
		Phone        string `json:"phone"`
	}
	status, err := c.post(ctx, lookupPath, map[string]any{"dot_number": dotNumber}, &apiResp)
	if status == http.StatusNotFound {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("carrier with dot number %d not found", dotNumber))
	}
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(apiResp.LegalName)
	if name == "" {
		name = strings.TrimSpace(apiResp.DBAName)
	}
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "carrier lookup returned no name")
	}
	carrierStatus, err := enums.ParseCarrierStatus(apiResp.Status)
	if err != nil {
		carrierStatus = enums.CarrierStatusInactive
	}
	dot := apiResp.DOTNumber
	if dot == 0 {
		dot = dotNumber
	}
	return &CarrierRecord{
		DOTNumber:    dot,
		Name:         name,
		MCNumber:     optional(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(apiResp.MCNumber)), "MC-")),
		Status:       carrierStatus,
		SafetyRating: optional(apiResp.SafetyRating),
		Phone:        optional(apiResp.Phone),
	}, nil
}

// SyncCarriers triggers the registry-wide refresh.
func (c *Client) SyncCarriers(ctx context.Context) (*SyncResult, error) {
	if c == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "functions client not configured")
	}
	var apiResp struct {
		Synced int `json:"synced"`
	}
	if _, err := c.post(ctx, syncPath, map[string]any{}, &apiResp); err != nil {
		return nil, err
	}
	return &SyncResult{Synced: apiResp.Synced}, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal "+path+" request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path), bytes.NewReader(payload))
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build "+path+" request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute "+path+" request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, responseBodyReadLimit))
		return resp.StatusCode, pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), path+" request failed")
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decode "+path+" response")
	}
	return resp.StatusCode, nil
}

func (c *Client) buildURL(path string) string {
	return fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(path, "/"))
}

func optional(v string) *string {
	trimmed := strings.TrimSpace(v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
