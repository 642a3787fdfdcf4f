// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"equiptrack/internal/domain/entity"
)

// RegisterEquipmentInput is the input for registering a single piece of equipment.
type RegisterEquipmentInput struct {
	SerialNumber string `json:"serial_number"`
	DisplayName  string `json:"display_name"`
}

// HistoryEntry is a checkpoint with its display labels resolved.
type HistoryEntry struct {
	*entity.Checkpoint
	StatusBeforeLabel string `json:"status_before_label"`
	StatusAfterLabel  string `json:"status_after_label"`
	Location          string `json:"location"`
	Responsible       string `json:"responsible"`
}

// EquipmentDetails is an equipment record with its location and history.
type EquipmentDetails struct {
	Equipment   *entity.Equipment `json:"equipment"`
	StatusLabel string            `json:"status_label"`
	Location    string            `json:"location"`
	History     []*HistoryEntry   `json:"history"`
}

// LedgerUsecase drives the equipment lifecycle. Every transition appends exactly one
// checkpoint in the same unit of work as the status change.
type LedgerUsecase interface {
	RegisterEquipment(ctx context.Context, input *RegisterEquipmentInput, actorID uint) (*entity.Equipment, error)
	Checkout(ctx context.Context, serial string, destinationRoomID, actorID uint) (*entity.Checkpoint, error)
	Checkin(ctx context.Context, serial string, actorID uint) (*entity.Checkpoint, error)
	ReturnToStock(ctx context.Context, serial string, actorID uint) (*entity.Checkpoint, error)

	// History returns the equipment's checkpoints newest-first.
	History(ctx context.Context, equipmentID uint) ([]*entity.Checkpoint, error)
	GetEquipment(ctx context.Context, equipmentID uint) (*EquipmentDetails, error)
	ListEquipment(ctx context.Context) ([]*entity.Equipment, error)
}
