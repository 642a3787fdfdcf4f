package postgres

import (
	"context"

	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// CreateBuilding persists a new building.
func (repo *locationRepository) CreateBuilding(ctx context.Context, building *entity.Building) error {
	buildingM := &model.BuildingModel{Name: building.Name}

	if err := repo.db.WithContext(ctx).Create(buildingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrBuildingAlreadyExists
		}

		return errors.Wrap(err, "failed to create building")
	}

	building.ID = buildingM.ID
	building.CreatedAt = buildingM.CreatedAt

	return nil
}

// FindBuildingByID retrieves a building without its rooms.
func (repo *locationRepository) FindBuildingByID(ctx context.Context, id uint) (*entity.Building, error) {
	var buildingM model.BuildingModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&buildingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBuildingNotFound
		}

		return nil, errors.Wrap(err, "failed to find building by id")
	}

	return toBuildingDomain(&buildingM), nil
}

// ListBuildings returns buildings with their rooms, both ordered by name.
func (repo *locationRepository) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	var buildingModels []*model.BuildingModel

	if err := repo.db.WithContext(ctx).
		Preload("Rooms", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC")
		}).
		Order("name ASC").
		Find(&buildingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list buildings")
	}

	buildings := make([]*entity.Building, 0, len(buildingModels))
	for _, buildingM := range buildingModels {
		buildings = append(buildings, toBuildingDomain(buildingM))
	}

	return buildings, nil
}

// DeleteBuilding removes a building. Rooms referencing it block the delete.
func (repo *locationRepository) DeleteBuilding(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BuildingModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrBuildingInUse
		}

		return errors.Wrap(result.Error, "failed to delete building")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBuildingNotFound
	}

	return nil
}

// CountRoomsByBuilding counts the rooms owned by a building.
func (repo *locationRepository) CountRoomsByBuilding(ctx context.Context, buildingID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RoomModel{}).
		Where("building_id = ?", buildingID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rooms by building")
	}

	return count, nil
}

// CreateRoom persists a new room.
func (repo *locationRepository) CreateRoom(ctx context.Context, room *entity.Room) error {
	roomM := fromRoomDomain(room)

	if err := repo.db.WithContext(ctx).Create(roomM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrRoomAlreadyExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrBuildingNotFound
		}

		return errors.Wrap(err, "failed to create room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt

	return nil
}

// FindRoomByID retrieves a room by its unique ID.
func (repo *locationRepository) FindRoomByID(ctx context.Context, id uint) (*entity.Room, error) {
	var roomM model.RoomModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&roomM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find room by id")
	}

	return toRoomDomain(&roomM), nil
}

// ListRooms returns every room.
func (repo *locationRepository) ListRooms(ctx context.Context) ([]*entity.Room, error) {
	var roomModels []*model.RoomModel

	if err := repo.db.WithContext(ctx).Order("id ASC").Find(&roomModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list rooms")
	}

	rooms := make([]*entity.Room, 0, len(roomModels))
	for _, roomM := range roomModels {
		rooms = append(rooms, toRoomDomain(roomM))
	}

	return rooms, nil
}

// DeleteRoom removes a room. Equipment located there blocks the delete; history
// references are nulled by the store.
func (repo *locationRepository) DeleteRoom(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RoomModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrRoomInUse
		}

		return errors.Wrap(result.Error, "failed to delete room")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRoomNotFound
	}

	return nil
}

func toBuildingDomain(data *model.BuildingModel) *entity.Building {
	if data == nil {
		return nil
	}

	building := &entity.Building{
		ID:        data.ID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
	}
	if len(data.Rooms) > 0 {
		building.Rooms = make([]*entity.Room, 0, len(data.Rooms))
		for i := range data.Rooms {
			building.Rooms = append(building.Rooms, toRoomDomain(&data.Rooms[i]))
		}
	}

	return building
}

func toRoomDomain(data *model.RoomModel) *entity.Room {
	if data == nil {
		return nil
	}

	return &entity.Room{
		ID:         data.ID,
		Name:       data.Name,
		BuildingID: data.BuildingID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromRoomDomain(data *entity.Room) *model.RoomModel {
	if data == nil {
		return nil
	}

	return &model.RoomModel{
		ID:         data.ID,
		Name:       data.Name,
		BuildingID: data.BuildingID,
		CreatedAt:  data.CreatedAt,
	}
}
