// Package model holds the GORM table mappings.
package model

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// All lists the models in dependency order.
func All() []any {
	return []any{
		&UserModel{},
		&BuildingModel{},
		&RoomModel{},
		&EquipmentModel{},
		&CheckpointModel{},
		&NotificationModel{},
	}
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(All()...), "failed to migrate schema")
}
