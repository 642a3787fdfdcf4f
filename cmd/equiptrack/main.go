package main

import (
	"context"
	"log/slog"
	"os"

	"equiptrack/config"
	"equiptrack/internal/delivery"
	"equiptrack/internal/delivery/api"
	apimiddleware "equiptrack/internal/delivery/api/middleware"
	"equiptrack/internal/delivery/api/router/handler"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/infra/auth"
	logs "equiptrack/internal/infra/log"
	"equiptrack/internal/infra/persistence/postgres"
	"equiptrack/internal/infra/pubsub"
	"equiptrack/internal/infra/qrcode"
	"equiptrack/internal/infra/spreadsheet"
	"equiptrack/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewLocationRepository,
			postgres.NewEquipmentRepository,
			postgres.NewCheckpointRepository,
			postgres.NewNotificationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			newQRCodeService,
			spreadsheet.NewExcelCodec,
		),
	)
}

// newPasswordHasher creates the bcrypt hasher with the configured cost
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth == nil {
		return auth.NewBcryptHasher(bcrypt.DefaultCost)
	}

	return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewLocationService,
			impl.NewLedgerService,
			impl.NewLabelService,
			impl.NewBatchService,
			impl.NewNotificationService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewActorMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewLocationHandler,
			handler.NewEquipmentHandler,
			handler.NewBatchHandler,
			handler.NewNotificationHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
