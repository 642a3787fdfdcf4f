package postgres

import (
	"context"
	"time"

	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// equipmentRepository implements the repository.EquipmentRepository interface.
type equipmentRepository struct {
	db *gorm.DB
}

// NewEquipmentRepository is the constructor for equipmentRepository.
func NewEquipmentRepository(db *gorm.DB) repository.EquipmentRepository {
	return &equipmentRepository{
		db: db,
	}
}

// CreateEquipment inserts a new equipment record.
func (repo *equipmentRepository) CreateEquipment(ctx context.Context, equipment *entity.Equipment) error {
	equipmentM := fromEquipmentDomain(equipment)

	if err := repo.db.WithContext(ctx).Create(equipmentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrEquipmentAlreadyExists
		}

		return errors.Wrap(err, "failed to create equipment")
	}

	equipment.ID = equipmentM.ID
	equipment.CreatedAt = equipmentM.CreatedAt
	equipment.UpdatedAt = equipmentM.UpdatedAt

	return nil
}

// FindEquipmentByID retrieves equipment by its unique ID.
func (repo *equipmentRepository) FindEquipmentByID(ctx context.Context, id uint) (*entity.Equipment, error) {
	return repo.first(repo.db.WithContext(ctx).Where("id = ?", id), "failed to find equipment by id")
}

// FindEquipmentBySerial retrieves equipment by its normalized serial number.
func (repo *equipmentRepository) FindEquipmentBySerial(ctx context.Context, serial string) (*entity.Equipment, error) {
	return repo.first(repo.db.WithContext(ctx).Where("serial_number = ?", serial), "failed to find equipment by serial")
}

// FindEquipmentBySerialForUpdate reads the row with SELECT ... FOR UPDATE.
// Locking reads always go to the primary. SQLite ignores the locking clause and
// serializes writers instead.
func (repo *equipmentRepository) FindEquipmentBySerialForUpdate(ctx context.Context, serial string) (*entity.Equipment, error) {
	query := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("serial_number = ?", serial)

	return repo.first(query, "failed to lock equipment by serial")
}

func (repo *equipmentRepository) first(query *gorm.DB, msg string) (*entity.Equipment, error) {
	var equipmentM model.EquipmentModel

	if err := query.First(&equipmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEquipmentNotFound
		}

		return nil, errors.Wrap(err, msg)
	}

	return toEquipmentDomain(&equipmentM), nil
}

// ListEquipment returns all equipment ordered by serial number.
func (repo *equipmentRepository) ListEquipment(ctx context.Context) ([]*entity.Equipment, error) {
	var equipmentModels []*model.EquipmentModel

	if err := repo.db.WithContext(ctx).Order("serial_number ASC").Find(&equipmentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	equipment := make([]*entity.Equipment, 0, len(equipmentModels))
	for _, equipmentM := range equipmentModels {
		equipment = append(equipment, toEquipmentDomain(equipmentM))
	}

	return equipment, nil
}

// UpdateEquipmentStatus is a compare-and-swap on the stored status.
func (repo *equipmentRepository) UpdateEquipmentStatus(ctx context.Context, id uint, expected, next entity.Status, currentRoomID *uint) error {
	query := repo.db.WithContext(ctx).
		Model(&model.EquipmentModel{}).
		Where("id = ? AND status_kind = ?", id, expected.Kind.String())

	if expected.RoomID == nil {
		query = query.Where("status_room_id IS NULL")
	} else {
		query = query.Where("status_room_id = ?", *expected.RoomID)
	}

	result := query.Updates(map[string]any{
		"status_kind":     next.Kind.String(),
		"status_room_id":  next.RoomID,
		"current_room_id": currentRoomID,
		"updated_at":      time.Now().UTC(),
	})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrRoomNotFound
		}

		return errors.Wrap(result.Error, "failed to update equipment status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrEquipmentStatusChanged
	}

	return nil
}

// CountEquipmentByRoom counts equipment currently located in the room.
func (repo *equipmentRepository) CountEquipmentByRoom(ctx context.Context, roomID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EquipmentModel{}).
		Where("current_room_id = ?", roomID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count equipment by room")
	}

	return count, nil
}

// CountEquipmentByStatus groups equipment by status kind.
func (repo *equipmentRepository) CountEquipmentByStatus(ctx context.Context) (map[entity.StatusKind]int64, error) {
	var rows []struct {
		StatusKind string
		Total      int64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.EquipmentModel{}).
		Select("status_kind, COUNT(*) AS total").
		Group("status_kind").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to count equipment by status")
	}

	counts := make(map[entity.StatusKind]int64, len(rows))
	for _, row := range rows {
		counts[entity.StatusKind(row.StatusKind)] = row.Total
	}

	return counts, nil
}

func toStatus(kind string, roomID *uint) entity.Status {
	return entity.Status{Kind: entity.StatusKind(kind), RoomID: roomID}
}

func toEquipmentDomain(data *model.EquipmentModel) *entity.Equipment {
	if data == nil {
		return nil
	}

	return &entity.Equipment{
		ID:            data.ID,
		SerialNumber:  data.SerialNumber,
		DisplayName:   data.DisplayName,
		Status:        toStatus(data.StatusKind, data.StatusRoomID),
		CurrentRoomID: data.CurrentRoomID,
		RegisteredBy:  data.RegisteredBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromEquipmentDomain(data *entity.Equipment) *model.EquipmentModel {
	if data == nil {
		return nil
	}

	return &model.EquipmentModel{
		ID:            data.ID,
		SerialNumber:  data.SerialNumber,
		DisplayName:   data.DisplayName,
		StatusKind:    data.Status.Kind.String(),
		StatusRoomID:  data.Status.RoomID,
		CurrentRoomID: data.CurrentRoomID,
		RegisteredBy:  data.RegisteredBy,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
