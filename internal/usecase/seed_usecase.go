package usecase

import "context"

// SeedLocation names one room and the building it belongs to.
type SeedLocation struct {
	Building string
	Room     string
}

// SeedInput is the bootstrap data applied by the seed command.
type SeedInput struct {
	Admin     *CreateUserInput
	Locations []SeedLocation
}

// SeedResult reports what a seed run created. Existing rows are left untouched.
type SeedResult struct {
	AdminCreated     bool
	BuildingsCreated int
	RoomsCreated     int
	// RoomIDs maps "room (building)" labels to room IDs, including pre-existing rooms.
	RoomIDs map[string]uint
}

// SeedUsecase applies bootstrap data idempotently.
type SeedUsecase interface {
	Seed(ctx context.Context, input *SeedInput) (*SeedResult, error)
}
