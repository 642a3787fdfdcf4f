package impl

import (
	"context"
	"fmt"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"

	"github.com/pkg/errors"
)

const notApplicable = "N/A"

// requireUser resolves the acting user, translating a missing row to USER_NOT_FOUND.
func requireUser(ctx context.Context, userRepo repository.UserRepository, userID uint) (*entity.User, error) {
	user, err := userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(fmt.Sprintf("user %d does not exist", userID))
		}

		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}

	return user, nil
}

// locationIndex resolves room and building names for display.
type locationIndex struct {
	rooms     map[uint]*entity.Room
	buildings map[uint]*entity.Building
}

func loadLocationIndex(ctx context.Context, locationRepo repository.LocationRepository) (*locationIndex, error) {
	buildings, err := locationRepo.ListBuildings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	index := &locationIndex{
		rooms:     make(map[uint]*entity.Room),
		buildings: make(map[uint]*entity.Building, len(buildings)),
	}
	for _, building := range buildings {
		index.buildings[building.ID] = building
		for _, room := range building.Rooms {
			index.rooms[room.ID] = room
		}
	}

	return index, nil
}

func (idx *locationIndex) roomName(id uint) (string, bool) {
	room, ok := idx.rooms[id]
	if !ok {
		return "", false
	}

	return room.Name, true
}

// label renders "room (building)" or N/A. buildingID overrides the room's own
// building when set, as recorded on checkpoints.
func (idx *locationIndex) label(roomID, buildingID *uint) string {
	if roomID == nil {
		return notApplicable
	}

	room, ok := idx.rooms[*roomID]
	if !ok {
		return notApplicable
	}

	owner := room.BuildingID
	if buildingID != nil {
		owner = *buildingID
	}

	building, ok := idx.buildings[owner]
	if !ok {
		return notApplicable
	}

	return entity.LocationLabel(room.Name, building.Name)
}

func (idx *locationIndex) statusLabel(status entity.Status) string {
	return status.Label(idx.roomName)
}

// usernames maps user ids to usernames.
func usernames(ctx context.Context, userRepo repository.UserRepository) (map[uint]string, error) {
	users, err := userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	names := make(map[uint]string, len(users))
	for _, user := range users {
		names[user.ID] = user.Username
	}

	return names, nil
}

func nameOrNA(names map[uint]string, id uint) string {
	if name, ok := names[id]; ok {
		return name
	}

	return notApplicable
}
