package entity

import "time"

// Notification is an entry in a user's mailbox.
type Notification struct {
	ID           uint      `json:"id"`
	Message      string    `json:"message"`
	Read         bool      `json:"read"`
	TargetUserID uint      `json:"target_user_id"`
	EquipmentID  *uint     `json:"equipment_id,omitempty"` // Optional cross-reference.
	CreatedAt    time.Time `json:"created_at"`
}
