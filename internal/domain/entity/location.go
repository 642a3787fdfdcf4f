package entity

import (
	"fmt"
	"time"
)

// Building groups rooms. Its name is unique.
type Building struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Rooms     []*Room   `json:"rooms,omitempty"` // Populated by list queries only.
	CreatedAt time.Time `json:"created_at"`
}

// Room belongs to exactly one building. (BuildingID, Name) is unique.
type Room struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	BuildingID uint      `json:"building_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// LocationLabel renders "room (building)".
func LocationLabel(roomName, buildingName string) string {
	return fmt.Sprintf("%s (%s)", roomName, buildingName)
}
