// Package postgres contains the concrete implementation of the persistence layer using GORM.
// PostgreSQL is the production store; the same repositories run on the embedded SQLite store.
package postgres

import (
	"context"

	"equiptrack/internal/domain/entity"
	"equiptrack/internal/domain/repository"
	"equiptrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindUserByID retrieves a single user by their unique ID.
func (repo *userRepository) FindUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindUserByUsername retrieves a single user by username.
func (repo *userRepository) FindUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).Where("username = ?", username).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// CreateUser persists a new user entity to the database.
func (repo *userRepository) CreateUser(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrUserAlreadyExists
		}

		return errors.Wrap(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// ListUsers returns every user ordered by username.
func (repo *userRepository) ListUsers(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).Order("username ASC").Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindAdminIDs returns the ids of all administrators in ascending order.
func (repo *userRepository) FindAdminIDs(ctx context.Context) ([]uint, error) {
	var ids []uint

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_admin = ?", true).
		Order("id ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find admin ids")
	}

	return ids, nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		RegistrationNumber: data.RegistrationNumber,
		PasswordHash:       data.PasswordHash,
		IsAdmin:            data.IsAdmin,
		CreatedAt:          data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                 data.ID,
		Username:           data.Username,
		Email:              data.Email,
		RegistrationNumber: data.RegistrationNumber,
		PasswordHash:       data.PasswordHash,
		IsAdmin:            data.IsAdmin,
		CreatedAt:          data.CreatedAt,
	}
}
