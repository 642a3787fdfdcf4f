// Package impl contains the implementation of the application's business logic.
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
	"equiptrack/internal/domain/service"
	"equiptrack/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser hashes the password and stores a new user.
func (srv *userService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("username is required")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Username:           username,
		Email:              strings.TrimSpace(input.Email),
		RegistrationNumber: strings.TrimSpace(input.RegistrationNumber),
		PasswordHash:       hash,
		IsAdmin:            input.IsAdmin,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, domainerrors.ErrDuplicateUsername.WrapMessage(fmt.Sprintf("username %q is taken", username))
		}

		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	srv.log(ctx).Info("User created",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("username", user.Username),
		slog.Bool("is_admin", user.IsAdmin),
	)

	return user, nil
}

// GetUser retrieves a user by ID.
func (srv *userService) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	return requireUser(ctx, srv.userRepo, userID)
}

// ListUsers returns all users ordered by username.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// AdminIDs returns the ids of every administrator.
func (srv *userService) AdminIDs(ctx context.Context) ([]uint, error) {
	ids, err := srv.userRepo.FindAdminIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find admin IDs: %w", err)
	}

	return ids, nil
}
