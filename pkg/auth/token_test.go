package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/freightdesk/backoffice/pkg/config"
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/google/uuid"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "freightdesk"}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := testJWTConfig()
	now := time.Now().UTC()
	userID := uuid.New()
	tenantID := uuid.New()

	token, err := MintAccessToken(cfg, now, 30*time.Minute, AccessTokenPayload{
		UserID:      userID,
		TenantID:    tenantID,
		Permissions: []enums.Permission{enums.PermissionLoadsRead, enums.PermissionLoadsApprove},
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}

	if claims.UserID != userID {
		t.Fatalf("expected user_id %s, got %s", userID, claims.UserID)
	}
	if claims.TenantID != tenantID {
		t.Fatalf("expected tenant_id %s, got %s", tenantID, claims.TenantID)
	}
	if claims.Issuer != cfg.Issuer {
		t.Fatalf("expected issuer %s, got %s", cfg.Issuer, claims.Issuer)
	}

	actor := claims.Actor()
	if !actor.Can(enums.PermissionLoadsApprove) {
		t.Fatalf("expected approve permission on actor")
	}
	if actor.Can(enums.PermissionLoadsDelete) {
		t.Fatalf("did not expect delete permission on actor")
	}

	exp := now.Add(30 * time.Minute)
	diff := claims.ExpiresAt.Sub(exp)
	if diff < 0 {
		diff = -diff
	}
	if diff >= time.Second {
		t.Fatalf("expected exp roughly %v, got %v (diff %v)", exp.UTC(), claims.ExpiresAt.UTC(), diff)
	}
}

func TestParseAccessTokenInvalidSignature(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), 10*time.Minute, AccessTokenPayload{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	if _, err := ParseAccessToken(cfg, token+"x"); err == nil {
		t.Fatal("expected invalid signature error")
	}
}

func TestParseAccessTokenExpired(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), 15*time.Minute, AccessTokenPayload{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}

	_, err = ParseAccessToken(cfg, token)
	if err == nil {
		t.Fatal("expected expiration error")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseAccessTokenWrongIssuer(t *testing.T) {
	token, err := MintAccessToken(config.JWTConfig{Secret: "secret", Issuer: "someone-else"}, time.Now(), time.Minute, AccessTokenPayload{
		UserID:   uuid.New(),
		TenantID: uuid.New(),
	})
	if err != nil {
		t.Fatalf("mint access token: %v", err)
	}
	if _, err := ParseAccessToken(testJWTConfig(), token); err == nil {
		t.Fatal("expected issuer mismatch error")
	}
}

func TestMintAccessTokenRequiresTenant(t *testing.T) {
	if _, err := MintAccessToken(testJWTConfig(), time.Now(), time.Minute, AccessTokenPayload{UserID: uuid.New()}); err == nil {
		t.Fatal("expected missing tenant error")
	}
}

func TestMintAccessTokenRejectsUnknownPermission(t *testing.T) {
	_, err := MintAccessToken(testJWTConfig(), time.Now(), time.Minute, AccessTokenPayload{
		UserID:      uuid.New(),
		TenantID:    uuid.New(),
		Permissions: []enums.Permission{"loads:everything"},
	})
	if err == nil {
		t.Fatal("expected invalid permission error")
	}
}
