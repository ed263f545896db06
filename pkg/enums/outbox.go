package enums

import "fmt"

// OutboxAggregateType maps to the aggregate_type column in Postgres.
type OutboxAggregateType string

const (
	AggregateLoad    OutboxAggregateType = "load"
	AggregateCarrier OutboxAggregateType = "carrier"
)

var validAggregateTypes = []OutboxAggregateType{
	AggregateLoad,
	AggregateCarrier,
}

// IsValid reports whether the value matches a known aggregate type.
func (a OutboxAggregateType) IsValid() bool {
	for _, candidate := range validAggregateTypes {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseOutboxAggregateType converts raw input into OutboxAggregateType.
func ParseOutboxAggregateType(value string) (OutboxAggregateType, error) {
	for _, candidate := range validAggregateTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid aggregate type %q", value)
}

// OutboxEventType maps to the event_type column in Postgres.
type OutboxEventType string

const (
	EventLoadCreated       OutboxEventType = "load_created"
	EventLoadUpdated       OutboxEventType = "load_updated"
	EventLoadStatusChanged OutboxEventType = "load_status_changed"
	EventLoadApproved      OutboxEventType = "load_approved"
	EventLoadApprovalReset OutboxEventType = "load_approval_reset"
	EventLoadAssigned      OutboxEventType = "load_assigned"
	EventLoadDeleted       OutboxEventType = "load_deleted"
	EventCarrierImported   OutboxEventType = "carrier_imported"
)

var validOutboxEventTypes = []OutboxEventType{
	EventLoadCreated,
	EventLoadUpdated,
	EventLoadStatusChanged,
	EventLoadApproved,
	EventLoadApprovalReset,
	EventLoadAssigned,
	EventLoadDeleted,
	EventCarrierImported,
}

// IsValid reports whether the value matches a known event type.
func (e OutboxEventType) IsValid() bool {
	for _, candidate := range validOutboxEventTypes {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseOutboxEventType converts raw input into OutboxEventType.
func ParseOutboxEventType(value string) (OutboxEventType, error) {
	for _, candidate := range validOutboxEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid event type %q", value)
}
