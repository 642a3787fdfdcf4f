package service

import (
	"context"
	"time"
)

// TransitionEvent describes a committed ledger transition
type TransitionEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	CheckpointID uint      `json:"checkpoint_id"`
	EquipmentID  uint      `json:"equipment_id"`
	SerialNumber string    `json:"serial_number"`
	StatusBefore string    `json:"status_before"`
	StatusAfter  string    `json:"status_after"`
	TargetRoomID *uint     `json:"target_room_id,omitempty"`
	ActorID      uint      `json:"actor_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTransitionEvent publishes a transition event for downstream consumers
	PublishTransitionEvent(ctx context.Context, event *TransitionEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
