package entity

import (
	"strings"
	"time"
)

// Column limits of the equipment table, counted in characters.
const (
	MaxSerialNumberLength = 100
	MaxDisplayNameLength  = 200
)

// Equipment is a tracked physical asset identified by its serial number.
type Equipment struct {
	ID            uint      `json:"id"`
	SerialNumber  string    `json:"serial_number"` // Always normalized, see NormalizeSerial.
	DisplayName   string    `json:"display_name"`
	Status        Status    `json:"status"`
	CurrentRoomID *uint     `json:"current_room_id"`
	RegisteredBy  uint      `json:"registered_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NormalizeSerial trims and upper-cases a serial number.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}
