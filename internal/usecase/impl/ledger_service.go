package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"equiptrack/config"
	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// returnedToStockMessage is the administrator notification for ReturnToStock.
const returnedToStockMessage = "Equipment %s (%s) returned to stock."

type ledgerService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	equipmentRepo  repository.EquipmentRepository
	checkpointRepo repository.CheckpointRepository
	publisher      service.EventPublisher
	stockRoomID    uint
	now            func() time.Time
	logger         *slog.Logger
}

// LedgerServiceParams holds dependencies for the ledger, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	EquipmentRepo  repository.EquipmentRepository
	CheckpointRepo repository.CheckpointRepository
	Publisher      service.EventPublisher `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewLedgerService creates the equipment ledger.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		locationRepo:   params.LocationRepo,
		equipmentRepo:  params.EquipmentRepo,
		checkpointRepo: params.CheckpointRepo,
		publisher:      params.Publisher,
		stockRoomID:    params.Config.Ledger.DefaultStockRoomID,
		now:            func() time.Time { return time.Now().UTC() },
		logger:         params.Logger,
	}
}

func (s *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// transitionPlan is what a validated transition writes.
type transitionPlan struct {
	next          entity.Status
	currentRoomID *uint
	target        *entity.Room
	recipients    []uint
	message       string
}

type planFunc func(ctx context.Context, repos repository.RepositoryFactory, equipment *entity.Equipment) (*transitionPlan, error)

// RegisterEquipment creates equipment in the default stock room and appends its first checkpoint.
func (s *ledgerService) RegisterEquipment(ctx context.Context, input *usecase.RegisterEquipmentInput, actorID uint) (*entity.Equipment, error) {
	serial := entity.NormalizeSerial(input.SerialNumber)
	name := strings.TrimSpace(input.DisplayName)
	if serial == "" || name == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("serial number and display name are required")
	}
	if utf8.RuneCountInString(serial) > entity.MaxSerialNumberLength || utf8.RuneCountInString(name) > entity.MaxDisplayNameLength {
		return nil, domainerrors.ErrInvalidInput.WrapMessage(fmt.Sprintf(
			"serial number is limited to %d characters and display name to %d",
			entity.MaxSerialNumberLength, entity.MaxDisplayNameLength,
		))
	}

	var equipment *entity.Equipment
	var checkpoint *entity.Checkpoint

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireUser(ctx, repos.NewUserRepository(), actorID); err != nil {
			return err
		}

		stock, err := s.stockRoom(ctx, repos.NewLocationRepository())
		if err != nil {
			return err
		}

		equipmentRepo := repos.NewEquipmentRepository()
		if _, err := equipmentRepo.FindEquipmentBySerial(ctx, serial); err == nil {
			return domainerrors.ErrDuplicateSerial.WrapMessage(fmt.Sprintf("serial %s already registered", serial))
		} else if !errors.Is(err, repository.ErrEquipmentNotFound) {
			return fmt.Errorf("failed to find equipment by serial: %w", err)
		}

		now := s.now()
		equipment = &entity.Equipment{
			SerialNumber:  serial,
			DisplayName:   name,
			Status:        entity.InStockStatus(),
			CurrentRoomID: &stock.ID,
			RegisteredBy:  actorID,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := equipmentRepo.CreateEquipment(ctx, equipment); err != nil {
			if errors.Is(err, repository.ErrEquipmentAlreadyExists) {
				return domainerrors.ErrDuplicateSerial.WrapMessage(fmt.Sprintf("serial %s already registered", serial))
			}

			return fmt.Errorf("failed to create equipment: %w", err)
		}

		checkpoint = &entity.Checkpoint{
			EquipmentID:      equipment.ID,
			StatusBefore:     entity.NotApplicableStatus(),
			StatusAfter:      entity.InStockStatus(),
			TargetBuildingID: &stock.BuildingID,
			TargetRoomID:     &stock.ID,
			ChangedBy:        actorID,
			Timestamp:        now,
		}
		if err := repos.NewCheckpointRepository().AppendCheckpoint(ctx, checkpoint); err != nil {
			return fmt.Errorf("failed to append checkpoint: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Equipment registered",
		slog.String("serial", serial),
		slog.Uint64("checkpoint_id", uint64(checkpoint.ID)),
		slog.Uint64("actor_id", uint64(actorID)),
	)
	s.publish(ctx, equipment, checkpoint)

	return equipment, nil
}

// Checkout marks equipment in transit toward a destination room. The current location
// is unchanged until Checkin confirms arrival.
func (s *ledgerService) Checkout(ctx context.Context, serial string, destinationRoomID, actorID uint) (*entity.Checkpoint, error) {
	return s.transition(ctx, serial, actorID, func(ctx context.Context, repos repository.RepositoryFactory, equipment *entity.Equipment) (*transitionPlan, error) {
		if equipment.Status.Is(entity.StatusInTransit) {
			return nil, domainerrors.ErrInvalidState.WrapMessage(fmt.Sprintf("equipment %s is already in transit", equipment.SerialNumber))
		}

		room, err := repos.NewLocationRepository().FindRoomByID(ctx, destinationRoomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return nil, domainerrors.ErrInvalidDestination.WrapMessage(fmt.Sprintf("room %d does not exist", destinationRoomID))
			}

			return nil, fmt.Errorf("failed to find room by ID: %w", err)
		}

		return &transitionPlan{
			next:          entity.InTransitStatus(),
			currentRoomID: equipment.CurrentRoomID,
			target:        room,
		}, nil
	})
}

// Checkin confirms arrival at the destination recorded by the latest checkpoint.
func (s *ledgerService) Checkin(ctx context.Context, serial string, actorID uint) (*entity.Checkpoint, error) {
	return s.transition(ctx, serial, actorID, func(ctx context.Context, repos repository.RepositoryFactory, equipment *entity.Equipment) (*transitionPlan, error) {
		if !equipment.Status.Is(entity.StatusInTransit) {
			return nil, domainerrors.ErrInvalidState.WrapMessage(fmt.Sprintf("equipment %s is not in transit", equipment.SerialNumber))
		}

		latest, err := repos.NewCheckpointRepository().FindLatestCheckpoint(ctx, equipment.ID)
		if err != nil && !errors.Is(err, repository.ErrCheckpointNotFound) {
			return nil, fmt.Errorf("failed to find latest checkpoint: %w", err)
		}
		if latest == nil || latest.TargetRoomID == nil {
			return nil, domainerrors.ErrDestinationMissing
		}

		room, err := repos.NewLocationRepository().FindRoomByID(ctx, *latest.TargetRoomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return nil, domainerrors.ErrDestinationMissing.WrapMessage(fmt.Sprintf("room %d no longer exists", *latest.TargetRoomID))
			}

			return nil, fmt.Errorf("failed to find room by ID: %w", err)
		}

		return &transitionPlan{
			next:          entity.InUseStatus(room.ID),
			currentRoomID: &room.ID,
			target:        room,
		}, nil
	})
}

// ReturnToStock moves equipment back to the default stock room and notifies every
// administrator in the same transaction. Recipients are read inside it.
func (s *ledgerService) ReturnToStock(ctx context.Context, serial string, actorID uint) (*entity.Checkpoint, error) {
	return s.transition(ctx, serial, actorID, func(ctx context.Context, repos repository.RepositoryFactory, equipment *entity.Equipment) (*transitionPlan, error) {
		if equipment.Status.Is(entity.StatusInStock) {
			return nil, domainerrors.ErrInvalidState.WrapMessage(fmt.Sprintf("equipment %s is already in stock", equipment.SerialNumber))
		}

		stock, err := s.stockRoom(ctx, repos.NewLocationRepository())
		if err != nil {
			return nil, err
		}

		recipients, err := repos.NewUserRepository().FindAdminIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find admin IDs: %w", err)
		}

		return &transitionPlan{
			next:          entity.InStockStatus(),
			currentRoomID: &stock.ID,
			target:        stock,
			recipients:    recipients,
			message:       fmt.Sprintf(returnedToStockMessage, equipment.SerialNumber, equipment.DisplayName),
		}, nil
	})
}

// transition runs one ledger transition: lock, validate, conditional update, append.
func (s *ledgerService) transition(ctx context.Context, serial string, actorID uint, plan planFunc) (*entity.Checkpoint, error) {
	serial = entity.NormalizeSerial(serial)
	if serial == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("serial number is required")
	}

	var equipment *entity.Equipment
	var checkpoint *entity.Checkpoint

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := requireUser(ctx, repos.NewUserRepository(), actorID); err != nil {
			return err
		}

		equipmentRepo := repos.NewEquipmentRepository()
		current, err := equipmentRepo.FindEquipmentBySerialForUpdate(ctx, serial)
		if err != nil {
			if errors.Is(err, repository.ErrEquipmentNotFound) {
				return domainerrors.ErrEquipmentNotFound.WrapMessage(fmt.Sprintf("serial %s is not registered", serial))
			}

			return fmt.Errorf("failed to lock equipment: %w", err)
		}

		p, err := plan(ctx, repos, current)
		if err != nil {
			return err
		}

		if err := equipmentRepo.UpdateEquipmentStatus(ctx, current.ID, current.Status, p.next, p.currentRoomID); err != nil {
			switch {
			case errors.Is(err, repository.ErrEquipmentStatusChanged):
				return domainerrors.ErrInvalidState.WrapMessage(fmt.Sprintf("equipment %s changed concurrently", serial))
			case errors.Is(err, repository.ErrRoomNotFound):
				return domainerrors.ErrRoomNotFound
			default:
				return fmt.Errorf("failed to update equipment status: %w", err)
			}
		}

		checkpoint = &entity.Checkpoint{
			EquipmentID:      current.ID,
			StatusBefore:     current.Status,
			StatusAfter:      p.next,
			TargetBuildingID: &p.target.BuildingID,
			TargetRoomID:     &p.target.ID,
			ChangedBy:        actorID,
			Timestamp:        s.now(),
		}
		if err := repos.NewCheckpointRepository().AppendCheckpoint(ctx, checkpoint); err != nil {
			return fmt.Errorf("failed to append checkpoint: %w", err)
		}

		if len(p.recipients) > 0 {
			if _, err := broadcast(ctx, repos.NewNotificationRepository(), p.recipients, p.message, &current.ID); err != nil {
				return err
			}
		}

		current.Status = p.next
		current.CurrentRoomID = p.currentRoomID
		equipment = current

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("Equipment transition committed",
		slog.String("serial", serial),
		slog.String("status_before", checkpoint.StatusBefore.Kind.String()),
		slog.String("status_after", checkpoint.StatusAfter.Kind.String()),
		slog.Uint64("checkpoint_id", uint64(checkpoint.ID)),
		slog.Uint64("actor_id", uint64(actorID)),
	)
	s.publish(ctx, equipment, checkpoint)

	return checkpoint, nil
}

// stockRoom loads the configured default stock room.
func (s *ledgerService) stockRoom(ctx context.Context, locationRepo repository.LocationRepository) (*entity.Room, error) {
	if s.stockRoomID == 0 {
		return nil, domainerrors.ErrStockRoomMissing
	}

	room, err := locationRepo.FindRoomByID(ctx, s.stockRoomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrStockRoomMissing.WrapMessage(fmt.Sprintf("stock room %d does not exist", s.stockRoomID))
		}

		return nil, fmt.Errorf("failed to find stock room: %w", err)
	}

	return room, nil
}

// publish emits the committed transition. Failures are logged and never undo the transition.
func (s *ledgerService) publish(ctx context.Context, equipment *entity.Equipment, checkpoint *entity.Checkpoint) {
	if s.publisher == nil {
		return
	}

	event := &service.TransitionEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		EventID:      uuid.New().String(),
		CheckpointID: checkpoint.ID,
		EquipmentID:  equipment.ID,
		SerialNumber: equipment.SerialNumber,
		StatusBefore: checkpoint.StatusBefore.Kind.String(),
		StatusAfter:  checkpoint.StatusAfter.Kind.String(),
		TargetRoomID: checkpoint.TargetRoomID,
		ActorID:      checkpoint.ChangedBy,
		OccurredAt:   checkpoint.Timestamp,
	}

	if err := s.publisher.PublishTransitionEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish transition event",
			slog.String("serial", equipment.SerialNumber),
			slog.Uint64("checkpoint_id", uint64(checkpoint.ID)),
			slog.Any("error", err),
		)
	}
}

// History returns the equipment's checkpoints newest-first.
func (s *ledgerService) History(ctx context.Context, equipmentID uint) ([]*entity.Checkpoint, error) {
	if _, err := s.findEquipment(ctx, equipmentID); err != nil {
		return nil, err
	}

	checkpoints, err := s.checkpointRepo.FindCheckpointsByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find checkpoints by equipment: %w", err)
	}

	return checkpoints, nil
}

// GetEquipment returns the equipment with its resolved location and labelled history.
func (s *ledgerService) GetEquipment(ctx context.Context, equipmentID uint) (*usecase.EquipmentDetails, error) {
	equipment, err := s.findEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	checkpoints, err := s.checkpointRepo.FindCheckpointsByEquipment(ctx, equipmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to find checkpoints by equipment: %w", err)
	}

	locations, err := loadLocationIndex(ctx, s.locationRepo)
	if err != nil {
		return nil, err
	}

	names, err := usernames(ctx, s.userRepo)
	if err != nil {
		return nil, err
	}

	history := make([]*usecase.HistoryEntry, 0, len(checkpoints))
	for _, checkpoint := range checkpoints {
		history = append(history, &usecase.HistoryEntry{
			Checkpoint:        checkpoint,
			StatusBeforeLabel: locations.statusLabel(checkpoint.StatusBefore),
			StatusAfterLabel:  locations.statusLabel(checkpoint.StatusAfter),
			Location:          locations.label(checkpoint.TargetRoomID, checkpoint.TargetBuildingID),
			Responsible:       nameOrNA(names, checkpoint.ChangedBy),
		})
	}

	return &usecase.EquipmentDetails{
		Equipment:   equipment,
		StatusLabel: locations.statusLabel(equipment.Status),
		Location:    locations.label(equipment.CurrentRoomID, nil),
		History:     history,
	}, nil
}

// ListEquipment returns all equipment ordered by serial number.
func (s *ledgerService) ListEquipment(ctx context.Context) ([]*entity.Equipment, error) {
	equipment, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}

	return equipment, nil
}

func (s *ledgerService) findEquipment(ctx context.Context, equipmentID uint) (*entity.Equipment, error) {
	equipment, err := s.equipmentRepo.FindEquipmentByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrEquipmentNotFound
		}

		return nil, fmt.Errorf("failed to find equipment by ID: %w", err)
	}

	return equipment, nil
}
