package impl

import (
	"context"
	"testing"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	mockRepo "equiptrack/internal/mocks/repository"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T) (
	usecase.NotificationUsecase,
	*mockRepo.MockNotificationRepository,
	*mockRepo.MockUserRepository,
) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	return NewNotificationService(newDiscardLogger(), notificationRepo, userRepo), notificationRepo, userRepo
}

func TestNotificationService_Notify_Success(t *testing.T) {
	service, notificationRepo, userRepo := createTestNotificationService(t)
	ctx := context.Background()
	equipmentID := uintPtr(42)

	userRepo.EXPECT().FindUserByID(ctx, uint(7)).Return(&entity.User{ID: 7}, nil)
	notificationRepo.EXPECT().
		CreateNotifications(ctx, mock.MatchedBy(func(n []*entity.Notification) bool {
			return len(n) == 1 && n[0].TargetUserID == 7 && !n[0].Read && n[0].Message == "hello" && n[0].EquipmentID == equipmentID
		})).
		Run(func(_ context.Context, n []*entity.Notification) { n[0].ID = 11 }).
		Return(nil)

	notification, err := service.Notify(ctx, 7, " hello ", equipmentID)
	require.NoError(t, err)
	assert.Equal(t, uint(11), notification.ID)
	assert.False(t, notification.Read)
}

func TestNotificationService_Notify_Errors(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		service, _, _ := createTestNotificationService(t)

		_, err := service.Notify(context.Background(), 7, "", nil)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("unknown user", func(t *testing.T) {
		service, _, userRepo := createTestNotificationService(t)
		ctx := context.Background()

		userRepo.EXPECT().FindUserByID(ctx, uint(7)).Return(nil, repository.ErrUserNotFound)

		_, err := service.Notify(ctx, 7, "hello", nil)
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})
}

func TestNotificationService_MarkRead(t *testing.T) {
	tests := []struct {
		name    string
		found   *entity.Notification
		findErr error
		expect  bool
		wantErr error
	}{
		{
			name:   "unread owned",
			found:  &entity.Notification{ID: 1, TargetUserID: 7},
			expect: true,
		},
		{
			name:  "already read is a no-op",
			found: &entity.Notification{ID: 1, TargetUserID: 7, Read: true},
		},
		{
			name:    "foreign notification",
			found:   &entity.Notification{ID: 1, TargetUserID: 8},
			wantErr: domainerrors.ErrForbidden,
		},
		{
			name:    "missing",
			findErr: repository.ErrNotificationNotFound,
			wantErr: domainerrors.ErrNotificationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, notificationRepo, _ := createTestNotificationService(t)
			ctx := context.Background()

			notificationRepo.EXPECT().FindNotificationByID(ctx, uint(1)).Return(tt.found, tt.findErr)
			if tt.expect {
				notificationRepo.EXPECT().MarkNotificationRead(ctx, uint(1)).Return(nil)
			}

			err := service.MarkRead(ctx, 1, 7)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().MarkAllNotificationsRead(ctx, uint(7)).Return(int64(5), nil).Once()
	notificationRepo.EXPECT().MarkAllNotificationsRead(ctx, uint(7)).Return(int64(0), nil).Once()

	updated, err := service.MarkAllRead(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), updated)

	updated, err = service.MarkAllRead(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), updated)
}

func TestNotificationService_List(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	expected := []*entity.Notification{{ID: 2, TargetUserID: 7}, {ID: 1, TargetUserID: 7, Read: true}}
	notificationRepo.EXPECT().FindNotificationsByUser(ctx, uint(7), false, 0).Return(expected, nil)
	notificationRepo.EXPECT().CountUnreadNotifications(ctx, uint(7)).Return(int64(1), nil)

	feed, err := service.List(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, expected, feed.Notifications)
	assert.Equal(t, int64(1), feed.UnreadCount)
}

func TestNotificationService_UnreadCount_Error(t *testing.T) {
	service, notificationRepo, _ := createTestNotificationService(t)
	ctx := context.Background()

	notificationRepo.EXPECT().CountUnreadNotifications(ctx, uint(7)).Return(int64(0), errors.New("db down"))

	_, err := service.UnreadCount(ctx, 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count unread notifications")
}
