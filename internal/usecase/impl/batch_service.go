package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Skip reasons reported by ImportBatch.
const (
	SkipReasonEmptyField      = "serial number or display name is empty"
	SkipReasonInvalidField    = "serial number or display name is too long"
	SkipReasonAlreadyInLedger = "serial number already registered"
	SkipReasonDuplicateInFile = "duplicate of row %d"
)

type batchService struct {
	ledger         usecase.LedgerUsecase
	userRepo       repository.UserRepository
	locationRepo   repository.LocationRepository
	equipmentRepo  repository.EquipmentRepository
	checkpointRepo repository.CheckpointRepository
	codec          service.SpreadsheetCodec
	logger         *slog.Logger
}

// BatchServiceParams holds dependencies for the batch importer, injected by Fx.
type BatchServiceParams struct {
	fx.In

	Ledger         usecase.LedgerUsecase
	UserRepo       repository.UserRepository
	LocationRepo   repository.LocationRepository
	EquipmentRepo  repository.EquipmentRepository
	CheckpointRepo repository.CheckpointRepository
	Codec          service.SpreadsheetCodec
	Logger         *slog.Logger
}

// NewBatchService creates the batch importer and exporter.
func NewBatchService(params BatchServiceParams) usecase.BatchUsecase {
	return &batchService{
		ledger:         params.Ledger,
		userRepo:       params.UserRepo,
		locationRepo:   params.LocationRepo,
		equipmentRepo:  params.EquipmentRepo,
		checkpointRepo: params.CheckpointRepo,
		codec:          params.Codec,
		logger:         params.Logger,
	}
}

func (s *batchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ImportBatch registers each row through the ledger. Every registration commits on
// its own, so rows before an aborting failure stay registered.
func (s *batchService) ImportBatch(ctx context.Context, rows []entity.ImportRow, actorID uint) (*entity.ImportResult, error) {
	if _, err := requireUser(ctx, s.userRepo, actorID); err != nil {
		return nil, err
	}

	result := &entity.ImportResult{Skipped: []entity.ImportSkip{}}
	seen := make(map[string]int, len(rows))

	for i, row := range rows {
		index := i + 1
		serial := entity.NormalizeSerial(row.SerialNumber)
		name := strings.TrimSpace(row.DisplayName)

		if serial == "" || name == "" {
			result.Skipped = append(result.Skipped, entity.ImportSkip{Row: index, SerialNumber: serial, Reason: SkipReasonEmptyField})

			continue
		}

		if first, ok := seen[serial]; ok {
			result.Skipped = append(result.Skipped, entity.ImportSkip{Row: index, SerialNumber: serial, Reason: fmt.Sprintf(SkipReasonDuplicateInFile, first)})

			continue
		}
		seen[serial] = index

		_, err := s.ledger.RegisterEquipment(ctx, &usecase.RegisterEquipmentInput{SerialNumber: serial, DisplayName: name}, actorID)
		switch {
		case err == nil:
			result.RegisteredCount++
		case errors.Is(err, domainerrors.ErrDuplicateSerial):
			result.Skipped = append(result.Skipped, entity.ImportSkip{Row: index, SerialNumber: serial, Reason: SkipReasonAlreadyInLedger})
		case errors.Is(err, domainerrors.ErrInvalidInput):
			result.Skipped = append(result.Skipped, entity.ImportSkip{Row: index, SerialNumber: serial, Reason: SkipReasonInvalidField})
		default:
			s.log(ctx).Error("Import aborted",
				slog.Int("row", index),
				slog.Int("registered", result.RegisteredCount),
				slog.Any("error", err),
			)

			return nil, errors.Wrapf(err, "import aborted at row %d after %d registered", index, result.RegisteredCount)
		}
	}

	s.log(ctx).Info("Import finished",
		slog.Int("rows", len(rows)),
		slog.Int("registered", result.RegisteredCount),
		slog.Int("skipped", len(result.Skipped)),
		slog.Uint64("actor_id", uint64(actorID)),
	)

	return result, nil
}

// ImportWorkbook decodes the first sheet of an .xlsx file and imports it.
func (s *batchService) ImportWorkbook(ctx context.Context, r io.Reader, actorID uint) (*entity.ImportResult, error) {
	rows, err := s.codec.ReadImportRows(r)
	if err != nil {
		return nil, err
	}

	return s.ImportBatch(ctx, rows, actorID)
}

// ExportHistory projects the whole checkpoint log, newest-first.
func (s *batchService) ExportHistory(ctx context.Context) (*usecase.HistoryExport, error) {
	checkpoints, err := s.checkpointRepo.ListCheckpoints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	if len(checkpoints) == 0 {
		return &usecase.HistoryExport{Rows: []entity.HistoryRow{}, Empty: true}, nil
	}

	locations, err := loadLocationIndex(ctx, s.locationRepo)
	if err != nil {
		return nil, err
	}

	names, err := usernames(ctx, s.userRepo)
	if err != nil {
		return nil, err
	}

	equipment, err := s.equipmentRepo.ListEquipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	serials := make(map[uint]string, len(equipment))
	for _, item := range equipment {
		serials[item.ID] = item.SerialNumber
	}

	rows := make([]entity.HistoryRow, 0, len(checkpoints))
	for _, checkpoint := range checkpoints {
		rows = append(rows, entity.HistoryRow{
			CheckpointID: checkpoint.ID,
			Timestamp:    checkpoint.Timestamp,
			SerialNumber: nameOrNA(serials, checkpoint.EquipmentID),
			StatusBefore: locations.statusLabel(checkpoint.StatusBefore),
			StatusAfter:  locations.statusLabel(checkpoint.StatusAfter),
			Location:     locations.label(checkpoint.TargetRoomID, checkpoint.TargetBuildingID),
			Responsible:  nameOrNA(names, checkpoint.ChangedBy),
		})
	}

	return &usecase.HistoryExport{Rows: rows}, nil
}

// ExportWorkbook writes the history workbook. It reports false without writing when
// there is nothing to export.
func (s *batchService) ExportWorkbook(ctx context.Context, w io.Writer) (bool, error) {
	export, err := s.ExportHistory(ctx)
	if err != nil {
		return false, err
	}

	if export.Empty {
		s.log(ctx).Info("History export skipped, log is empty")

		return false, nil
	}

	if err := s.codec.WriteHistory(w, export.Rows); err != nil {
		return false, domainerrors.ErrExportFailed.WrapMessage(err.Error())
	}

	return true, nil
}
