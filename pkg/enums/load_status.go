package enums

import "fmt"

// LoadStatus tracks where a load sits in the dispatch lifecycle.
type LoadStatus string

const (
	LoadStatusActionNeeded    LoadStatus = "action_needed"
	LoadStatusPendingDispatch LoadStatus = "pending_dispatch"
	LoadStatusAvailable       LoadStatus = "available"
	LoadStatusBooked          LoadStatus = "booked"
	LoadStatusDispatched      LoadStatus = "dispatched"
	LoadStatusAtPickup        LoadStatus = "at_pickup"
	LoadStatusInTransit       LoadStatus = "in_transit"
	LoadStatusAtDelivery      LoadStatus = "at_delivery"
	LoadStatusDelivered       LoadStatus = "delivered"
	LoadStatusCompleted       LoadStatus = "completed"
	LoadStatusClosed          LoadStatus = "closed"
	LoadStatusCancelled       LoadStatus = "cancelled"
	LoadStatusTONU            LoadStatus = "tonu"
	LoadStatusReadyForAudit   LoadStatus = "ready_for_audit"
)

// LoadStatusAll is the filter sentinel meaning "any status".
const LoadStatusAll = "all"

// validLoadStatuses is ordered: board position follows this slice.
var validLoadStatuses = []LoadStatus{
	LoadStatusActionNeeded,
	LoadStatusPendingDispatch,
	LoadStatusAvailable,
	LoadStatusBooked,
	LoadStatusDispatched,
	LoadStatusAtPickup,
	LoadStatusInTransit,
	LoadStatusAtDelivery,
	LoadStatusDelivered,
	LoadStatusCompleted,
	LoadStatusClosed,
	LoadStatusCancelled,
	LoadStatusTONU,
	LoadStatusReadyForAudit,
}

// LoadStatuses returns a copy of the known statuses in board order.
func LoadStatuses() []LoadStatus {
	out := make([]LoadStatus, len(validLoadStatuses))
	copy(out, validLoadStatuses)
	return out
}

// String implements fmt.Stringer.
func (s LoadStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known LoadStatus.
func (s LoadStatus) IsValid() bool {
	for _, candidate := range validLoadStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the load has left the active lifecycle.
func (s LoadStatus) IsTerminal() bool {
	switch s {
	case LoadStatusCompleted, LoadStatusClosed, LoadStatusCancelled, LoadStatusTONU:
		return true
	default:
		return false
	}
}

// ParseLoadStatus converts raw input into a LoadStatus.
func ParseLoadStatus(value string) (LoadStatus, error) {
	for _, candidate := range validLoadStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid load status %q", value)
}
