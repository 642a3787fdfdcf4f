package entity

import "time"

// Checkpoint is one immutable audit record of a status transition.
type Checkpoint struct {
	ID               uint      `json:"id"`
	EquipmentID      uint      `json:"equipment_id"`
	StatusBefore     Status    `json:"status_before"`
	StatusAfter      Status    `json:"status_after"`
	TargetBuildingID *uint     `json:"target_building_id"`
	TargetRoomID     *uint     `json:"target_room_id"`
	ChangedBy        uint      `json:"changed_by"`
	Timestamp        time.Time `json:"timestamp"`
}
