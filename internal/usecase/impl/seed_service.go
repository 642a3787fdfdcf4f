package impl

import (
	"context"
	"log/slog"
	"strings"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type seedService struct {
	users     usecase.UserUsecase
	locations usecase.LocationUsecase
	logger    *slog.Logger
}

// SeedServiceParams holds dependencies for the seeder, injected by Fx.
type SeedServiceParams struct {
	fx.In

	Users     usecase.UserUsecase
	Locations usecase.LocationUsecase
	Logger    *slog.Logger
}

// NewSeedService creates the bootstrap seeder.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		users:     params.Users,
		locations: params.Locations,
		logger:    params.Logger,
	}
}

func (s *seedService) Seed(ctx context.Context, input *usecase.SeedInput) (*usecase.SeedResult, error) {
	result := &usecase.SeedResult{RoomIDs: make(map[string]uint)}

	if input.Admin != nil && strings.TrimSpace(input.Admin.Username) != "" {
		admin := *input.Admin
		admin.IsAdmin = true
		user, err := s.users.CreateUser(ctx, &admin)
		switch {
		case errors.Is(err, domainerrors.ErrDuplicateUsername):
			s.logger.Info("Seed admin already exists", slog.String("username", admin.Username))
		case err != nil:
			return nil, err
		default:
			result.AdminCreated = true
			s.logger.Info("Seed admin created", slog.Uint64("user_id", uint64(user.ID)))
		}
	}

	existing, err := s.locations.ListBuildings(ctx)
	if err != nil {
		return nil, err
	}
	buildings := make(map[string]*entity.Building, len(existing))
	for _, building := range existing {
		buildings[building.Name] = building
	}

	for _, location := range input.Locations {
		buildingName := strings.TrimSpace(location.Building)
		roomName := strings.TrimSpace(location.Room)

		building, ok := buildings[buildingName]
		if !ok {
			building, err = s.locations.AddBuilding(ctx, buildingName)
			if err != nil {
				return nil, err
			}
			buildings[building.Name] = building
			result.BuildingsCreated++
		}

		room := findRoom(building, roomName)
		if room == nil {
			room, err = s.locations.AddRoom(ctx, roomName, building.ID)
			if err != nil {
				return nil, err
			}
			building.Rooms = append(building.Rooms, room)
			result.RoomsCreated++
		}

		result.RoomIDs[entity.LocationLabel(room.Name, building.Name)] = room.ID
	}

	s.logger.Info("Seed completed",
		slog.Bool("admin_created", result.AdminCreated),
		slog.Int("buildings_created", result.BuildingsCreated),
		slog.Int("rooms_created", result.RoomsCreated),
	)

	return result, nil
}

func findRoom(building *entity.Building, name string) *entity.Room {
	for _, room := range building.Rooms {
		if room.Name == name {
			return room
		}
	}

	return nil
}
