package impl

import (
	"context"
	"fmt"

	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/domain/service"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
)

type labelService struct {
	equipmentRepo repository.EquipmentRepository
	locationRepo  repository.LocationRepository
	qrcode        service.QRCodeService
}

// NewLabelService creates the equipment label renderer.
func NewLabelService(
	equipmentRepo repository.EquipmentRepository,
	locationRepo repository.LocationRepository,
	qrcode service.QRCodeService,
) usecase.LabelUsecase {
	return &labelService{
		equipmentRepo: equipmentRepo,
		locationRepo:  locationRepo,
		qrcode:        qrcode,
	}
}

// EquipmentLabel renders the serial, name and current location as a QR PNG.
func (s *labelService) EquipmentLabel(ctx context.Context, equipmentID uint) ([]byte, error) {
	equipment, err := s.equipmentRepo.FindEquipmentByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repository.ErrEquipmentNotFound) {
			return nil, domainerrors.ErrEquipmentNotFound
		}

		return nil, fmt.Errorf("failed to find equipment by ID: %w", err)
	}

	locations, err := loadLocationIndex(ctx, s.locationRepo)
	if err != nil {
		return nil, err
	}

	png, err := s.qrcode.GenerateEquipmentLabel(service.LabelData{
		EquipmentID:  equipment.ID,
		SerialNumber: equipment.SerialNumber,
		DisplayName:  equipment.DisplayName,
		Location:     locations.label(equipment.CurrentRoomID, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate equipment label: %w", err)
	}

	return png, nil
}
