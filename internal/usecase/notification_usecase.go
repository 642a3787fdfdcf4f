package usecase

import (
	"context"

	"equiptrack/internal/domain/entity"
)

// NotificationFeed is a user's notifications plus the unread count.
type NotificationFeed struct {
	Notifications []*entity.Notification `json:"notifications"`
	UnreadCount   int64                  `json:"unread_count"`
}

// NotificationUsecase defines the per-user notification mailbox.
type NotificationUsecase interface {
	Notify(ctx context.Context, userID uint, message string, equipmentID *uint) (*entity.Notification, error)

	// MarkRead fails with Forbidden when the notification belongs to another user.
	// Marking an already read notification is a no-op.
	MarkRead(ctx context.Context, notificationID, requestingUserID uint) error

	// MarkAllRead flips every unread notification of the user in one statement.
	MarkAllRead(ctx context.Context, userID uint) (int64, error)

	UnreadCount(ctx context.Context, userID uint) (int64, error)

	// List returns the user's notifications newest-first.
	List(ctx context.Context, userID uint) (*NotificationFeed, error)
}
