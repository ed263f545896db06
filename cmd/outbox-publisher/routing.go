package main

import (
	"strconv"

	"github.com/freightdesk/backoffice/pkg/db/models"
	"github.com/freightdesk/backoffice/pkg/outbox/payloads"
)

// orderingKey groups the events of one aggregate so a load's status changes
// reach subscribers in the order they were committed.
func orderingKey(event models.OutboxEvent) string {
	return event.TenantID.String() + "/" + string(event.AggregateType) + "/" + event.AggregateID.String()
}

// domainAttributes lifts routing fields out of the typed payload so
// subscriptions can filter on them without decoding the message body.
func domainAttributes(payload any) map[string]string {
	attrs := map[string]string{}
	switch p := payload.(type) {
	case *payloads.LoadCreatedEvent:
		attrs["load_number"] = p.LoadNumber
		attrs["load_status"] = string(p.Status)
		attrs["source"] = p.Source
	case *payloads.LoadUpdatedEvent:
		attrs["load_number"] = p.LoadNumber
	case *payloads.LoadStatusChangedEvent:
		attrs["load_number"] = p.LoadNumber
		attrs["status_from"] = string(p.From)
		attrs["load_status"] = string(p.To)
		attrs["bulk"] = strconv.FormatBool(p.Bulk)
	case *payloads.LoadApprovedEvent:
		attrs["load_number"] = p.LoadNumber
		attrs["approved_payload"] = p.ApprovedPayload.StringFixed(2)
	case *payloads.LoadApprovalResetEvent:
		attrs["load_number"] = p.LoadNumber
		attrs["vehicle_id"] = p.VehicleID.String()
	case *payloads.LoadAssignedEvent:
		attrs["load_number"] = p.LoadNumber
		attrs["assign_field"] = p.Field
	case *payloads.LoadDeletedEvent:
		attrs["load_number"] = p.LoadNumber
	case *payloads.CarrierImportedEvent:
		attrs["dot_number"] = strconv.FormatInt(p.DOTNumber, 10)
		attrs["carrier_status"] = string(p.Status)
	}
	for k, v := range attrs {
		if v == "" {
			delete(attrs, k)
		}
	}
	return attrs
}
