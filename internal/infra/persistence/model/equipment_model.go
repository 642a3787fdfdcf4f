package model

import (
	"time"
)

// EquipmentModel mirrors the 'equipment' table. The tagged status is stored as
// status_kind plus status_room_id.
type EquipmentModel struct {
	ID            uint       `gorm:"primaryKey;autoIncrement"`
	SerialNumber  string     `gorm:"type:varchar(100);uniqueIndex;not null"`
	DisplayName   string     `gorm:"type:varchar(200);not null"`
	StatusKind    string     `gorm:"type:varchar(20);not null;index"`
	StatusRoomID  *uint      `gorm:"index"`
	CurrentRoomID *uint      `gorm:"index"`
	CurrentRoom   *RoomModel `gorm:"foreignKey:CurrentRoomID;constraint:OnDelete:RESTRICT"`
	RegisteredBy  uint       `gorm:"not null"`
	Registrant    *UserModel `gorm:"foreignKey:RegisteredBy;constraint:OnDelete:RESTRICT"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EquipmentModel) TableName() string {
	return "equipment"
}

// CheckpointModel mirrors the append-only 'checkpoints' table.
type CheckpointModel struct {
	ID                 uint            `gorm:"primaryKey;autoIncrement"`
	EquipmentID        uint            `gorm:"not null;index:idx_checkpoints_equipment_time,priority:1"`
	Equipment          *EquipmentModel `gorm:"foreignKey:EquipmentID;constraint:OnDelete:RESTRICT"`
	StatusBeforeKind   string          `gorm:"type:varchar(20);not null"`
	StatusBeforeRoomID *uint
	StatusAfterKind    string `gorm:"type:varchar(20);not null"`
	StatusAfterRoomID  *uint
	TargetBuildingID   *uint          `gorm:"index"`
	TargetBuilding     *BuildingModel `gorm:"foreignKey:TargetBuildingID;constraint:OnDelete:SET NULL"`
	TargetRoomID       *uint          `gorm:"index"`
	TargetRoom         *RoomModel     `gorm:"foreignKey:TargetRoomID;constraint:OnDelete:SET NULL"`
	ChangedBy          uint           `gorm:"not null"`
	Changer            *UserModel     `gorm:"foreignKey:ChangedBy;constraint:OnDelete:RESTRICT"`
	Timestamp          time.Time      `gorm:"not null;index:idx_checkpoints_equipment_time,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (CheckpointModel) TableName() string {
	return "checkpoints"
}
