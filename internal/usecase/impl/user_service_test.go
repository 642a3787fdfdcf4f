package impl

import (
	"context"
	"testing"

	"equiptrack/internal/domain/entity"
	domainerrors "equiptrack/internal/domain/errors"
	"equiptrack/internal/domain/repository"
	mockRepo "equiptrack/internal/mocks/repository"
	mockSvc "equiptrack/internal/mocks/service"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		UserRepo: userRepo,
		Hasher:   hasher,
		Logger:   newDiscardLogger(),
	})

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_CreateUser_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.CreateUserInput{
		Username:           " admin ",
		Password:           "s3cret-pass",
		Email:              "admin@example.com",
		RegistrationNumber: "M-001",
		IsAdmin:            true,
	}

	fx.hasher.EXPECT().Hash("s3cret-pass").Return("hashed", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Username == "admin" && u.PasswordHash == "hashed" && u.IsAdmin
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = 1 }).
		Return(nil)

	user, err := fx.service.CreateUser(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "admin", user.Username)
	assert.Equal(t, "M-001", user.RegistrationNumber)
}

func TestUserService_CreateUser_Errors(t *testing.T) {
	t.Run("missing username", func(t *testing.T) {
		fx := createTestUserService(t)

		_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{Password: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("hash failure", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.hasher.EXPECT().Hash("").Return("", domainerrors.ErrInvalidInput.WrapMessage("password is required"))

		_, err := fx.service.CreateUser(context.Background(), &usecase.CreateUserInput{Username: "bob"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidInput))
	})

	t.Run("duplicate username", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
		fx.userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrUserAlreadyExists)

		_, err := fx.service.CreateUser(ctx, &usecase.CreateUserInput{Username: "bob", Password: "pw"})
		assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
	})
}

func TestUserService_GetUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, uint(1)).Return(&entity.User{ID: 1, Username: "admin"}, nil)
	fx.userRepo.EXPECT().FindUserByID(ctx, uint(2)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = fx.service.GetUser(ctx, 2)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_AdminIDs(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindAdminIDs(ctx).Return([]uint{1, 4}, nil)

	ids, err := fx.service.AdminIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 4}, ids)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().ListUsers(ctx).Return(nil, errors.New("db down"))

	_, err := fx.service.ListUsers(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list users")
}
