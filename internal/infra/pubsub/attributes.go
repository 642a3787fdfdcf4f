package pubsub

import (
	"strconv"

	"equiptrack/internal/domain/service"
)

// transitionAttributes builds message attributes for filtering and tracing.
func transitionAttributes(event *service.TransitionEvent) map[string]string {
	attributes := map[string]string{
		"event_id":      event.EventID,
		"equipment_id":  strconv.FormatUint(uint64(event.EquipmentID), 10),
		"serial_number": event.SerialNumber,
		"status_after":  event.StatusAfter,
		"ordering_key":  orderingKey(event),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// orderingKey groups the events of one equipment. Serial numbers are stored
// normalized, so the key is stable across requests.
func orderingKey(event *service.TransitionEvent) string {
	return "equipment/" + event.SerialNumber
}
