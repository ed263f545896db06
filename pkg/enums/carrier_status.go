package enums

import (
	"fmt"
	"strings"
)

// CarrierStatus mirrors the operating authority reported by the carrier registry.
type CarrierStatus string

const (
	CarrierStatusActive       CarrierStatus = "active"
	CarrierStatusInactive     CarrierStatus = "inactive"
	CarrierStatusOutOfService CarrierStatus = "out_of_service"
)

var validCarrierStatuses = []CarrierStatus{
	CarrierStatusActive,
	CarrierStatusInactive,
	CarrierStatusOutOfService,
}

func (c CarrierStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CarrierStatus.
func (c CarrierStatus) IsValid() bool {
	for _, candidate := range validCarrierStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCarrierStatus converts raw input into a CarrierStatus. The registry
// reports upper-case values with spaces ("OUT OF SERVICE"), so input is normalized.
func ParseCarrierStatus(value string) (CarrierStatus, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), " ", "_")
	for _, candidate := range validCarrierStatuses {
		if string(candidate) == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid carrier status %q", value)
}
