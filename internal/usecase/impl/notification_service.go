package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "equiptrack/internal/delivery/context"
	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
)

type notificationService struct {
	logger           *slog.Logger
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	logger *slog.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
) usecase.NotificationUsecase {
	return &notificationService{
		logger:           logger,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
	}
}

func (s *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// broadcast appends one unread notification per recipient through repo, which may be
// bound to a caller's transaction.
func broadcast(
	ctx context.Context,
	repo repository.NotificationRepository,
	recipients []uint,
	message string,
	equipmentID *uint,
) ([]*entity.Notification, error) {
	notifications := make([]*entity.Notification, 0, len(recipients))
	for _, userID := range recipients {
		notifications = append(notifications, &entity.Notification{
			Message:      message,
			TargetUserID: userID,
			EquipmentID:  equipmentID,
		})
	}

	if err := repo.CreateNotifications(ctx, notifications); err != nil {
		return nil, fmt.Errorf("failed to create notifications: %w", err)
	}

	return notifications, nil
}

// Notify appends an unread notification for the user
func (s *notificationService) Notify(ctx context.Context, userID uint, message string, equipmentID *uint) (*entity.Notification, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("message is required")
	}

	if _, err := requireUser(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	notifications, err := broadcast(ctx, s.notificationRepo, []uint{userID}, message, equipmentID)
	if err != nil {
		return nil, err
	}

	return notifications[0], nil
}

// MarkRead marks a notification read on behalf of its owner
func (s *notificationService) MarkRead(ctx context.Context, notificationID, requestingUserID uint) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return fmt.Errorf("failed to find notification by ID: %w", err)
	}

	if notification.TargetUserID != requestingUserID {
		s.log(ctx).Warn("Rejected mark-read on foreign notification",
			slog.Uint64("notification_id", uint64(notificationID)),
			slog.Uint64("user_id", uint64(requestingUserID)),
		)

		return domainerrors.ErrForbidden.WrapMessage("notification belongs to another user")
	}

	if notification.Read {
		return nil
	}

	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	return nil
}

// MarkAllRead flips every unread notification of the user
func (s *notificationService) MarkAllRead(ctx context.Context, userID uint) (int64, error) {
	updated, err := s.notificationRepo.MarkAllNotificationsRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	s.log(ctx).Debug("Marked notifications read",
		slog.Uint64("user_id", uint64(userID)),
		slog.Int64("updated", updated),
	)

	return updated, nil
}

// UnreadCount counts the user's unread notifications
func (s *notificationService) UnreadCount(ctx context.Context, userID uint) (int64, error) {
	count, err := s.notificationRepo.CountUnreadNotifications(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	return count, nil
}

// List returns the user's notifications with the unread count
func (s *notificationService) List(ctx context.Context, userID uint) (*usecase.NotificationFeed, error) {
	notifications, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, false, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to find notifications by user: %w", err)
	}

	unread, err := s.UnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.NotificationFeed{
		Notifications: notifications,
		UnreadCount:   unread,
	}, nil
}
