package repository

import (
	"context"
	"errors"

	"equiptrack/internal/domain/entity"
)

// ErrCheckpointNotFound is returned when an equipment has no checkpoint.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// CheckpointRepository is the append-only checkpoint log. It deliberately exposes no
// update or delete. Ordering is newest-first: timestamp DESC, then id DESC.
type CheckpointRepository interface {
	// AppendCheckpoint inserts one checkpoint and fills its ID.
	AppendCheckpoint(ctx context.Context, checkpoint *entity.Checkpoint) error

	// FindLatestCheckpoint returns the most recent checkpoint of the equipment.
	FindLatestCheckpoint(ctx context.Context, equipmentID uint) (*entity.Checkpoint, error)

	// FindCheckpointsByEquipment returns the equipment's history newest-first.
	FindCheckpointsByEquipment(ctx context.Context, equipmentID uint) ([]*entity.Checkpoint, error)

	// ListCheckpoints returns the full log newest-first.
	ListCheckpoints(ctx context.Context) ([]*entity.Checkpoint, error)
}
