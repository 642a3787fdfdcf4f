package model

import (
	"time"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one entry of a user's mailbox.
type NotificationModel struct {
	ID           uint            `gorm:"primaryKey;autoIncrement"`
	Message      string          `gorm:"type:text;not null"`
	Read         bool            `gorm:"column:read;not null;default:false"`
	TargetUserID uint            `gorm:"not null;index:idx_notifications_user_read,priority:1"`
	TargetUser   *UserModel      `gorm:"foreignKey:TargetUserID;constraint:OnDelete:CASCADE"`
	EquipmentID  *uint           `gorm:"index"`
	Equipment    *EquipmentModel `gorm:"foreignKey:EquipmentID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time       `gorm:"index:idx_notifications_user_read,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
