package usecase

import (
	"context"

	"equiptrack/internal/domain/entity"
)

// DashboardSummary is the landing page projection for a user.
type DashboardSummary struct {
	Total               int64                       `json:"total"`
	ByStatus            map[entity.StatusKind]int64 `json:"by_status"`
	UnreadCount         int64                       `json:"unread_count"`
	RecentNotifications []*entity.Notification      `json:"recent_notifications"`
}

// DashboardUsecase builds the dashboard summary.
type DashboardUsecase interface {
	Summary(ctx context.Context, userID uint) (*DashboardSummary, error)
}

// LabelUsecase renders printable equipment labels.
type LabelUsecase interface {
	// EquipmentLabel returns a PNG QR code describing the equipment.
	EquipmentLabel(ctx context.Context, equipmentID uint) ([]byte, error)
}
