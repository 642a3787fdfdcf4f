package service

// LabelData is the content encoded in an equipment label.
type LabelData struct {
	EquipmentID  uint   `json:"equipment_id"`
	SerialNumber string `json:"serial_number"`
	DisplayName  string `json:"display_name"`
	Location     string `json:"location"`
	Type         string `json:"type"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateEquipmentLabel renders the label as a PNG QR code
	GenerateEquipmentLabel(label LabelData) ([]byte, error)

	// ParseEquipmentLabel decodes the text payload of a scanned label
	ParseEquipmentLabel(qrData string) (*LabelData, error)
}
