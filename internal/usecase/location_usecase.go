package usecase

import (
	"context"

	"equiptrack/internal/domain/entity"
)

// LocationUsecase manages the building and room hierarchy.
type LocationUsecase interface {
	AddBuilding(ctx context.Context, name string) (*entity.Building, error)
	AddRoom(ctx context.Context, name string, buildingID uint) (*entity.Room, error)

	// DeleteBuilding fails while the building still owns rooms.
	DeleteBuilding(ctx context.Context, buildingID uint) error

	// DeleteRoom fails while equipment is currently located in the room.
	DeleteRoom(ctx context.Context, roomID uint) error

	// ListBuildings returns buildings with their rooms, ordered by name.
	ListBuildings(ctx context.Context) ([]*entity.Building, error)
}
