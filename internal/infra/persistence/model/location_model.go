package model

import (
	"time"
)

// BuildingModel mirrors the 'buildings' table.
type BuildingModel struct {
	ID        uint        `gorm:"primaryKey;autoIncrement"`
	Name      string      `gorm:"type:varchar(120);uniqueIndex;not null"`
	Rooms     []RoomModel `gorm:"foreignKey:BuildingID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BuildingModel) TableName() string {
	return "buildings"
}

// RoomModel mirrors the 'rooms' table. (building_id, name) is unique.
type RoomModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(120);not null;uniqueIndex:idx_rooms_building_name,priority:2"`
	BuildingID uint   `gorm:"not null;uniqueIndex:idx_rooms_building_name,priority:1"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (RoomModel) TableName() string {
	return "rooms"
}
