package repository

import (
	"context"
	"errors"

	"equiptrack/internal/domain/entity"
)

// Domain-specific errors for equipment persistence.
var (
	// ErrEquipmentNotFound is returned when no equipment matches.
	ErrEquipmentNotFound = errors.New("equipment not found")
	// ErrEquipmentAlreadyExists is returned when the serial number is taken.
	ErrEquipmentAlreadyExists = errors.New("equipment already exists")
	// ErrEquipmentStatusChanged is returned by a conditional status update when the
	// stored status no longer matches the expected one.
	ErrEquipmentStatusChanged = errors.New("equipment status changed concurrently")
)

// EquipmentRepository defines persistence for the equipment ledger.
type EquipmentRepository interface {
	// CreateEquipment inserts a new record. ErrEquipmentAlreadyExists on serial conflict.
	CreateEquipment(ctx context.Context, equipment *entity.Equipment) error

	FindEquipmentByID(ctx context.Context, id uint) (*entity.Equipment, error)
	FindEquipmentBySerial(ctx context.Context, serial string) (*entity.Equipment, error)

	// FindEquipmentBySerialForUpdate reads the row under a row-level write lock where
	// the store supports it. Must be called inside a transaction.
	FindEquipmentBySerialForUpdate(ctx context.Context, serial string) (*entity.Equipment, error)

	// ListEquipment returns all equipment ordered by serial number.
	ListEquipment(ctx context.Context) ([]*entity.Equipment, error)

	// UpdateEquipmentStatus sets status and current room only if the stored status
	// still equals expected. ErrEquipmentStatusChanged otherwise.
	UpdateEquipmentStatus(ctx context.Context, id uint, expected, next entity.Status, currentRoomID *uint) error

	// CountEquipmentByRoom counts equipment whose current location is the room.
	CountEquipmentByRoom(ctx context.Context, roomID uint) (int64, error)

	// CountEquipmentByStatus groups equipment by status kind.
	CountEquipmentByStatus(ctx context.Context) (map[entity.StatusKind]int64, error)
}
