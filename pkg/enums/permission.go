package enums

import "fmt"

// Permission is a capability granted to a user inside a tenant.
type Permission string

const (
	PermissionLoadsRead     Permission = "loads:read"
	PermissionLoadsWrite    Permission = "loads:write"
	PermissionLoadsApprove  Permission = "loads:approve"
	PermissionLoadsDelete   Permission = "loads:delete"
	PermissionCarriersRead  Permission = "carriers:read"
	PermissionCarriersWrite Permission = "carriers:write"
)

var validPermissions = []Permission{
	PermissionLoadsRead,
	PermissionLoadsWrite,
	PermissionLoadsApprove,
	PermissionLoadsDelete,
	PermissionCarriersRead,
	PermissionCarriersWrite,
}

func (p Permission) String() string {
	return string(p)
}

// IsValid reports whether the value is a known Permission.
func (p Permission) IsValid() bool {
	for _, candidate := range validPermissions {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePermission converts raw input into a Permission.
func ParsePermission(value string) (Permission, error) {
	for _, candidate := range validPermissions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid permission %q", value)
}
