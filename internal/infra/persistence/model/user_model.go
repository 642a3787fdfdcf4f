package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                 uint   `gorm:"primaryKey;autoIncrement"`
	Username           string `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email              string `gorm:"type:varchar(255)"`
	RegistrationNumber string `gorm:"type:varchar(40)"`
	PasswordHash       string `gorm:"type:varchar(255);not null"`
	IsAdmin            bool   `gorm:"not null;default:false;index"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
