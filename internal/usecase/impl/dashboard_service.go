package impl

import (
	"context"
	"fmt"

	"equiptrack/internal/domain/repository"
	"equiptrack/internal/usecase"
)

// recentNotificationLimit is how many unread notifications the dashboard shows.
const recentNotificationLimit = 5

type dashboardService struct {
	userRepo         repository.UserRepository
	equipmentRepo    repository.EquipmentRepository
	notificationRepo repository.NotificationRepository
}

// NewDashboardService creates the dashboard summary service.
func NewDashboardService(
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
	notificationRepo repository.NotificationRepository,
) usecase.DashboardUsecase {
	return &dashboardService{
		userRepo:         userRepo,
		equipmentRepo:    equipmentRepo,
		notificationRepo: notificationRepo,
	}
}

func (s *dashboardService) Summary(ctx context.Context, userID uint) (*usecase.DashboardSummary, error) {
	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	byStatus, err := s.equipmentRepo.CountEquipmentByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count equipment by status: %w", err)
	}

	var total int64
	for _, count := range byStatus {
		total += count
	}

	recent, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, true, recentNotificationLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications by user: %w", err)
	}

	unread, err := s.notificationRepo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return &usecase.DashboardSummary{
		Total:               total,
		ByStatus:            byStatus,
		UnreadCount:         unread,
		RecentNotifications: recent,
	}, nil
}
