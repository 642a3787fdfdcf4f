package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
)

type locationService struct {
	locationRepo  repository.LocationRepository
	equipmentRepo repository.EquipmentRepository
	logger        *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(
	locationRepo repository.LocationRepository,
	equipmentRepo repository.EquipmentRepository,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		locationRepo:  locationRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

func (s *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// AddBuilding creates a building with a unique name
func (s *locationService) AddBuilding(ctx context.Context, name string) (*entity.Building, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("building name is required")
	}

	building := &entity.Building{Name: name}
	if err := s.locationRepo.CreateBuilding(ctx, building); err != nil {
		if errors.Is(err, repository.ErrBuildingAlreadyExists) {
			return nil, domainerrors.ErrDuplicateBuilding.WrapMessage(fmt.Sprintf("building %q already exists", name))
		}

		return nil, fmt.Errorf("failed to create building: %w", err)
	}

	s.log(ctx).Info("Building added", slog.Uint64("building_id", uint64(building.ID)), slog.String("name", name))

	return building, nil
}

// AddRoom creates a room inside an existing building
func (s *locationService) AddRoom(ctx context.Context, name string, buildingID uint) (*entity.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" || buildingID == 0 {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("room name and building are required")
	}

	if _, err := s.locationRepo.FindBuildingByID(ctx, buildingID); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return nil, domainerrors.ErrBuildingNotFound
		}

		return nil, fmt.Errorf("failed to find building by ID: %w", err)
	}

	room := &entity.Room{Name: name, BuildingID: buildingID}
	if err := s.locationRepo.CreateRoom(ctx, room); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomAlreadyExists):
			return nil, domainerrors.ErrDuplicateRoom.WrapMessage(fmt.Sprintf("room %q already exists in building %d", name, buildingID))
		case errors.Is(err, repository.ErrBuildingNotFound):
			return nil, domainerrors.ErrBuildingNotFound
		default:
			return nil, fmt.Errorf("failed to create room: %w", err)
		}
	}

	s.log(ctx).Info("Room added",
		slog.Uint64("room_id", uint64(room.ID)),
		slog.Uint64("building_id", uint64(buildingID)),
		slog.String("name", name),
	)

	return room, nil
}

// DeleteBuilding removes a building that owns no rooms
func (s *locationService) DeleteBuilding(ctx context.Context, buildingID uint) error {
	if _, err := s.locationRepo.FindBuildingByID(ctx, buildingID); err != nil {
		if errors.Is(err, repository.ErrBuildingNotFound) {
			return domainerrors.ErrBuildingNotFound
		}

		return fmt.Errorf("failed to find building by ID: %w", err)
	}

	rooms, err := s.locationRepo.CountRoomsByBuilding(ctx, buildingID)
	if err != nil {
		return fmt.Errorf("failed to count rooms by building: %w", err)
	}
	if rooms > 0 {
		return domainerrors.ErrBuildingHasRooms.WithDetails(fmt.Sprintf("%d room(s) remain", rooms))
	}

	if err := s.locationRepo.DeleteBuilding(ctx, buildingID); err != nil {
		switch {
		case errors.Is(err, repository.ErrBuildingInUse):
			return domainerrors.ErrBuildingHasRooms
		case errors.Is(err, repository.ErrBuildingNotFound):
			return domainerrors.ErrBuildingNotFound
		default:
			return fmt.Errorf("failed to delete building: %w", err)
		}
	}

	s.log(ctx).Info("Building deleted", slog.Uint64("building_id", uint64(buildingID)))

	return nil
}

// DeleteRoom removes a room where no equipment is currently located.
// Rooms referenced only by history may be deleted.
func (s *locationService) DeleteRoom(ctx context.Context, roomID uint) error {
	if _, err := s.locationRepo.FindRoomByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return domainerrors.ErrRoomNotFound
		}

		return fmt.Errorf("failed to find room by ID: %w", err)
	}

	located, err := s.equipmentRepo.CountEquipmentByRoom(ctx, roomID)
	if err != nil {
		return fmt.Errorf("failed to count equipment by room: %w", err)
	}
	if located > 0 {
		return domainerrors.ErrRoomHasEquipment.WithDetails(fmt.Sprintf("%d equipment item(s) located here", located))
	}

	if err := s.locationRepo.DeleteRoom(ctx, roomID); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomInUse):
			return domainerrors.ErrRoomHasEquipment
		case errors.Is(err, repository.ErrRoomNotFound):
			return domainerrors.ErrRoomNotFound
		default:
			return fmt.Errorf("failed to delete room: %w", err)
		}
	}

	s.log(ctx).Info("Room deleted", slog.Uint64("room_id", uint64(roomID)))

	return nil
}

// ListBuildings returns buildings with their rooms
func (s *locationService) ListBuildings(ctx context.Context) ([]*entity.Building, error) {
	buildings, err := s.locationRepo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	return buildings, nil
}
