package postgres

import (
	"context"

	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// checkpointRepository implements the append-only repository.CheckpointRepository.
type checkpointRepository struct {
	db *gorm.DB
}

// NewCheckpointRepository is the constructor for checkpointRepository.
func NewCheckpointRepository(db *gorm.DB) repository.CheckpointRepository {
	return &checkpointRepository{
		db: db,
	}
}

// AppendCheckpoint inserts one checkpoint row.
func (repo *checkpointRepository) AppendCheckpoint(ctx context.Context, checkpoint *entity.Checkpoint) error {
	checkpointM := fromCheckpointDomain(checkpoint)

	if err := repo.db.WithContext(ctx).Create(checkpointM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "checkpoint references a missing equipment, room or user")
		}

		return errors.Wrap(err, "failed to append checkpoint")
	}

	checkpoint.ID = checkpointM.ID

	return nil
}

// FindLatestCheckpoint returns the newest checkpoint of the equipment.
func (repo *checkpointRepository) FindLatestCheckpoint(ctx context.Context, equipmentID uint) (*entity.Checkpoint, error) {
	var checkpointM model.CheckpointModel

	if err := newestFirst(repo.db.WithContext(ctx)).
		Where("equipment_id = ?", equipmentID).
		First(&checkpointM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCheckpointNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest checkpoint")
	}

	return toCheckpointDomain(&checkpointM), nil
}

// FindCheckpointsByEquipment returns the equipment's history newest-first.
func (repo *checkpointRepository) FindCheckpointsByEquipment(ctx context.Context, equipmentID uint) ([]*entity.Checkpoint, error) {
	var checkpointModels []*model.CheckpointModel

	if err := newestFirst(repo.db.WithContext(ctx)).
		Where("equipment_id = ?", equipmentID).
		Find(&checkpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find checkpoints by equipment")
	}

	return toCheckpointsDomain(checkpointModels), nil
}

// ListCheckpoints returns the whole log newest-first.
func (repo *checkpointRepository) ListCheckpoints(ctx context.Context) ([]*entity.Checkpoint, error) {
	var checkpointModels []*model.CheckpointModel

	if err := newestFirst(repo.db.WithContext(ctx)).Find(&checkpointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list checkpoints")
	}

	return toCheckpointsDomain(checkpointModels), nil
}

// newestFirst orders by timestamp, breaking ties by insertion order.
func newestFirst(db *gorm.DB) *gorm.DB {
	return db.
		Order(clause.OrderByColumn{Column: clause.Column{Name: "timestamp"}, Desc: true}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: true})
}

func toCheckpointsDomain(data []*model.CheckpointModel) []*entity.Checkpoint {
	checkpoints := make([]*entity.Checkpoint, 0, len(data))
	for _, checkpointM := range data {
		checkpoints = append(checkpoints, toCheckpointDomain(checkpointM))
	}

	return checkpoints
}

func toCheckpointDomain(data *model.CheckpointModel) *entity.Checkpoint {
	if data == nil {
		return nil
	}

	return &entity.Checkpoint{
		ID:               data.ID,
		EquipmentID:      data.EquipmentID,
		StatusBefore:     toStatus(data.StatusBeforeKind, data.StatusBeforeRoomID),
		StatusAfter:      toStatus(data.StatusAfterKind, data.StatusAfterRoomID),
		TargetBuildingID: data.TargetBuildingID,
		TargetRoomID:     data.TargetRoomID,
		ChangedBy:        data.ChangedBy,
		Timestamp:        data.Timestamp,
	}
}

func fromCheckpointDomain(data *entity.Checkpoint) *model.CheckpointModel {
	if data == nil {
		return nil
	}

	return &model.CheckpointModel{
		ID:                 data.ID,
		EquipmentID:        data.EquipmentID,
		StatusBeforeKind:   data.StatusBefore.Kind.String(),
		StatusBeforeRoomID: data.StatusBefore.RoomID,
		StatusAfterKind:    data.StatusAfter.Kind.String(),
		StatusAfterRoomID:  data.StatusAfter.RoomID,
		TargetBuildingID:   data.TargetBuildingID,
		TargetRoomID:       data.TargetRoomID,
		ChangedBy:          data.ChangedBy,
		Timestamp:          data.Timestamp,
	}
}
