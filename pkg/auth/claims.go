package auth

import (
	"github.com/freightdesk/backoffice/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	Permissions []enums.Permission
	JTI         string
}

// AccessTokenClaims represents the typed JWT presented by clients.
type AccessTokenClaims struct {
	UserID      uuid.UUID          `json:"user_id"`
	TenantID    uuid.UUID          `json:"tenant_id"`
	Permissions []enums.Permission `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// Actor converts verified claims into the explicit request principal.
func (c *AccessTokenClaims) Actor() Actor {
	perms := make([]enums.Permission, 0, len(c.Permissions))
	for _, p := range c.Permissions {
		if p.IsValid() {
			perms = append(perms, p)
		}
	}
	return Actor{UserID: c.UserID, TenantID: c.TenantID, Permissions: perms}
}
