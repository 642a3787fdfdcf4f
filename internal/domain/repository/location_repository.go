package repository

import (
	"context"
	"errors"

	"equiptrack/internal/domain/entity"
)

// Domain-specific errors for location persistence.
var (
	// ErrBuildingNotFound is returned when a building is not found.
	ErrBuildingNotFound = errors.New("building not found")
	// ErrRoomNotFound is returned when a room is not found.
	ErrRoomNotFound = errors.New("room not found")
	// ErrBuildingAlreadyExists is returned when the building name is taken.
	ErrBuildingAlreadyExists = errors.New("building already exists")
	// ErrRoomAlreadyExists is returned when the room name is taken within its building.
	ErrRoomAlreadyExists = errors.New("room already exists")
	// ErrBuildingInUse is returned when a building is still referenced by rooms.
	ErrBuildingInUse = errors.New("building is referenced by rooms")
	// ErrRoomInUse is returned when a room is still referenced as a current location.
	ErrRoomInUse = errors.New("room is referenced by equipment")
)

// LocationRepository defines persistence for buildings and rooms.
type LocationRepository interface {
	CreateBuilding(ctx context.Context, building *entity.Building) error
	FindBuildingByID(ctx context.Context, id uint) (*entity.Building, error)
	// ListBuildings returns buildings ordered by name, with their rooms ordered by name.
	ListBuildings(ctx context.Context) ([]*entity.Building, error)
	DeleteBuilding(ctx context.Context, id uint) error
	CountRoomsByBuilding(ctx context.Context, buildingID uint) (int64, error)

	CreateRoom(ctx context.Context, room *entity.Room) error
	FindRoomByID(ctx context.Context, id uint) (*entity.Room, error)
	ListRooms(ctx context.Context) ([]*entity.Room, error)
	DeleteRoom(ctx context.Context, id uint) error
}
