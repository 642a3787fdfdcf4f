package qrcode

import (
	"encoding/json"
	"fmt"

	"equiptrack/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

// LabelType marks payloads produced by GenerateEquipmentLabel.
const LabelType = "equipment_label"

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateEquipmentLabel encodes the label as JSON and renders it as a PNG QR code
func (s *qrcodeService) GenerateEquipmentLabel(label service.LabelData) ([]byte, error) {
	label.Type = LabelType

	jsonData, err := json.Marshal(label)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseEquipmentLabel decodes a scanned label payload
func (s *qrcodeService) ParseEquipmentLabel(qrData string) (*service.LabelData, error) {
	var data service.LabelData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != LabelType {
		return nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.EquipmentID == 0 || data.SerialNumber == "" {
		return nil, fmt.Errorf("QR code is missing equipment identity")
	}

	return &data, nil
}
