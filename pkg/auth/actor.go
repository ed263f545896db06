package auth

import (
	"github.com/google/uuid"

	"github.com/freightdesk/backoffice/pkg/enums"
	pkgerrors "github.com/freightdesk/backoffice/pkg/errors"
)

// Actor is the tenant-scoped principal every service call runs as. It is built
// once per request and passed down explicitly.
type Actor struct {
	UserID      uuid.UUID
	TenantID    uuid.UUID
	Permissions []enums.Permission
}

// Can reports whether the actor holds the permission.
func (a Actor) Can(p enums.Permission) bool {
	for _, candidate := range a.Permissions {
		if candidate == p {
			return true
		}
	}
	return false
}

// Require returns a typed error when the actor has no tenant or lacks p.
func (a Actor) Require(p enums.Permission) error {
	if a.TenantID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "tenant context required")
	}
	if !a.Can(p) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "missing permission "+p.String())
	}
	return nil
}
