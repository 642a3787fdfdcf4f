package postgres

import (
	"context"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateNotifications persists unread notifications in a single batch insert.
func (repo *notificationRepository) CreateNotifications(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).Create(&notificationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	// Update the entities with generated values
	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindNotificationByID retrieves a notification by its unique ID.
func (repo *notificationRepository) FindNotificationByID(ctx context.Context, id uint) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM), nil
}

// FindNotificationsByUser lists a user's notifications, newest first.
func (repo *notificationRepository) FindNotificationsByUser(ctx context.Context, userID uint, unreadOnly bool, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	query := repo.db.WithContext(ctx).
		Where("target_user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	if unreadOnly {
		query = query.Where(map[string]any{"read": false})
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flips a single notification to read.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ?", id).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllNotificationsRead flips every unread notification of the user in one statement.
func (repo *notificationRepository) MarkAllNotificationsRead(ctx context.Context, userID uint) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where(map[string]any{"target_user_id": userID, "read": false}).
		Update("read", true)

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to mark all notifications read")
	}

	return result.RowsAffected, nil
}

// CountUnreadNotifications counts the user's unread notifications.
func (repo *notificationRepository) CountUnreadNotifications(ctx context.Context, userID uint) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where(map[string]any{"target_user_id": userID, "read": false}).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:           data.ID,
		Message:      data.Message,
		Read:         data.Read,
		TargetUserID: data.TargetUserID,
		EquipmentID:  data.EquipmentID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:           data.ID,
		Message:      data.Message,
		Read:         data.Read,
		TargetUserID: data.TargetUserID,
		EquipmentID:  data.EquipmentID,
		CreatedAt:    data.CreatedAt,
	}
}
