package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive("dev").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dev", rec.Header().Get("X-Freightdesk-Env"))
	assert.JSONEq(t, `{"data":{"status":"live"}}`, rec.Body.String())
}

func TestHealthReady(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })

	rec := httptest.NewRecorder()
	HealthReady("dev", nil, map[string]Pinger{"db": ok, "redis": ok, "gcs": nil}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	down := pingerFunc(func(context.Context) error { return errors.New("connection refused") })
	rec = httptest.NewRecorder()
	HealthReady("dev", nil, map[string]Pinger{"db": ok, "redis": down}).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "DEPENDENCY_ERROR", body.Error.Code)
	assert.Equal(t, "connection refused", body.Error.Details["redis"])
	assert.NotContains(t, body.Error.Details, "db")
}
