package main

import (
	"context"
	"log/slog"

	"equiptrack/config"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/infra/auth"
	logs "equiptrack/internal/infra/log"
	"equiptrack/internal/infra/persistence/postgres"
	"equiptrack/internal/usecase"
	"equiptrack/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

type seedParams struct {
	fx.In
	fx.Shutdowner

	Config *config.Config
	Logger *slog.Logger
	Seeder usecase.SeedUsecase
}

func main() {
	fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewEquipmentRepository,
			newPasswordHasher,
			impl.NewUserService,
			impl.NewLocationService,
			impl.NewSeedService,
		),
		fx.Invoke(runSeed),
	).Run()
}

func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(bcrypt.DefaultCost)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

func runSeed(ctx context.Context, params seedParams) error {
	input := seedInput(params.Config)

	result, err := params.Seeder.Seed(ctx, input)
	if err != nil {
		params.Logger.Error("Seed failed", slog.Any("error", err))

		return params.Shutdown(fx.ExitCode(1))
	}

	for label, id := range result.RoomIDs {
		params.Logger.Info("Room available", slog.String("location", label), slog.Uint64("room_id", uint64(id)))
	}

	return params.Shutdown()
}

func seedInput(cfg *config.Config) *usecase.SeedInput {
	input := &usecase.SeedInput{}
	if cfg.Seed == nil {
		return input
	}

	input.Admin = &usecase.CreateUserInput{
		Username: cfg.Seed.Admin.Username,
		Password: cfg.Seed.Admin.Password,
		Email:    cfg.Seed.Admin.Email,
	}
	for _, location := range cfg.Seed.Locations {
		input.Locations = append(input.Locations, usecase.SeedLocation{
			Building: location.Building,
			Room:     location.Room,
		})
	}

	return input
}
