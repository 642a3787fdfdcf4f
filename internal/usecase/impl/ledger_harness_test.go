package impl

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"equiptrack/config"
	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/infra/auth"
	"equiptrack/internal/infra/persistence/model"
	"equiptrack/internal/infra/persistence/postgres"
	"equiptrack/internal/infra/persistence/sqlite"
	"equiptrack/internal/infra/spreadsheet"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// recordingPublisher collects transition events and can be told to fail.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.TransitionEvent
	err    error
}

func (p *recordingPublisher) PublishTransitionEvent(_ context.Context, event *service.TransitionEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error {
	return nil
}

func (p *recordingPublisher) published() []*service.TransitionEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]*service.TransitionEvent(nil), p.events...)
}

// ledgerHarness wires the real services over an in-memory SQLite store.
type ledgerHarness struct {
	db             *gorm.DB
	users          usecase.UserUsecase
	ledger         usecase.LedgerUsecase
	batch          usecase.BatchUsecase
	locations      usecase.LocationUsecase
	notifications  usecase.NotificationUsecase
	checkpointRepo repository.CheckpointRepository
	equipmentRepo  repository.EquipmentRepository
	publisher      *recordingPublisher

	admin      *entity.User
	otherAdmin *entity.User
	operator   *entity.User
	building   *entity.Building
	stock      *entity.Room
	room       *entity.Room
}

func newLedgerHarness(t *testing.T) *ledgerHarness {
	t.Helper()

	db, err := sqlite.OpenInMemory()
	require.NoError(t, err)
	require.NoError(t, model.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	logger := newDiscardLogger()

	userRepo := postgres.NewUserRepository(db)
	locationRepo := postgres.NewLocationRepository(db)
	equipmentRepo := postgres.NewEquipmentRepository(db)
	checkpointRepo := postgres.NewCheckpointRepository(db)
	notificationRepo := postgres.NewNotificationRepository(db)

	h := &ledgerHarness{
		db:             db,
		checkpointRepo: checkpointRepo,
		equipmentRepo:  equipmentRepo,
		publisher:      &recordingPublisher{},
	}

	users := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   auth.NewBcryptHasher(bcrypt.MinCost),
		Logger:   logger,
	})
	h.users = users
	h.admin, err = users.CreateUser(ctx, &usecase.CreateUserInput{Username: "admin", Password: "admin-pass", IsAdmin: true})
	require.NoError(t, err)
	h.otherAdmin, err = users.CreateUser(ctx, &usecase.CreateUserInput{Username: "supervisor", Password: "super-pass", IsAdmin: true})
	require.NoError(t, err)
	h.operator, err = users.CreateUser(ctx, &usecase.CreateUserInput{Username: "tecnico", Password: "tec-pass"})
	require.NoError(t, err)

	h.locations = NewLocationService(locationRepo, equipmentRepo, logger)
	h.building, err = h.locations.AddBuilding(ctx, "Sede Principal")
	require.NoError(t, err)
	h.stock, err = h.locations.AddRoom(ctx, "Estoque TI Central", h.building.ID)
	require.NoError(t, err)
	h.room, err = h.locations.AddRoom(ctx, "Sala 101 - TI", h.building.ID)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Ledger.DefaultStockRoomID = h.stock.ID

	ledger := NewLedgerService(LedgerServiceParams{
		TxManager:      postgres.NewTransactionManager(db),
		UserRepo:       userRepo,
		LocationRepo:   locationRepo,
		EquipmentRepo:  equipmentRepo,
		CheckpointRepo: checkpointRepo,
		Publisher:      h.publisher,
		Config:         cfg,
		Logger:         logger,
	})

	// Strictly increasing timestamps keep "most recent" unambiguous.
	var tick int64
	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	ledger.(*ledgerService).now = func() time.Time {
		return base.Add(time.Duration(atomic.AddInt64(&tick, 1)) * time.Second)
	}
	h.ledger = ledger

	h.batch = NewBatchService(BatchServiceParams{
		Ledger:         ledger,
		UserRepo:       userRepo,
		LocationRepo:   locationRepo,
		EquipmentRepo:  equipmentRepo,
		CheckpointRepo: checkpointRepo,
		Codec:          spreadsheet.NewExcelCodec(cfg),
		Logger:         logger,
	})
	h.notifications = NewNotificationService(logger, notificationRepo, userRepo)

	return h
}

func (h *ledgerHarness) register(t *testing.T, serial, name string) *entity.Equipment {
	t.Helper()

	equipment, err := h.ledger.RegisterEquipment(context.Background(), &usecase.RegisterEquipmentInput{
		SerialNumber: serial,
		DisplayName:  name,
	}, h.operator.ID)
	require.NoError(t, err)

	return equipment
}

func (h *ledgerHarness) reload(t *testing.T, id uint) *entity.Equipment {
	t.Helper()

	equipment, err := h.equipmentRepo.FindEquipmentByID(context.Background(), id)
	require.NoError(t, err)

	return equipment
}

// requireStatusMatchesLog checks that the stored status equals the after-status of
// the most recent checkpoint.
func (h *ledgerHarness) requireStatusMatchesLog(t *testing.T, id uint) {
	t.Helper()

	equipment := h.reload(t, id)
	latest, err := h.checkpointRepo.FindLatestCheckpoint(context.Background(), id)
	require.NoError(t, err)
	require.True(t, equipment.Status.Equal(latest.StatusAfter),
		"status %+v does not match latest checkpoint %+v", equipment.Status, latest.StatusAfter)
}

func (h *ledgerHarness) checkpointCount(t *testing.T, id uint) int {
	t.Helper()

	checkpoints, err := h.checkpointRepo.FindCheckpointsByEquipment(context.Background(), id)
	require.NoError(t, err)

	return len(checkpoints)
}

var errPublishUnavailable = errors.New("broker unavailable")
