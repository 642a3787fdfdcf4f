package repository

import (
	"context"
	"errors"

	"equiptrack/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotifications persists unread notifications in one statement.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uint) (*entity.Notification, error)

	// FindNotificationsByUser lists a user's notifications newest-first. A zero limit means no limit.
	FindNotificationsByUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]*entity.Notification, error)

	// MarkNotificationRead flips a single notification to read.
	MarkNotificationRead(ctx context.Context, id uint) error

	// MarkAllNotificationsRead flips every unread notification of the user and returns how many changed.
	MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error)

	// CountUnreadNotifications counts the user's unread notifications.
	CountUnreadNotifications(ctx context.Context, userID uint) (int64, error)
}
