package usecase

import (
	"context"

	"equiptrack/internal/domain/entity"
)

// CreateUserInput represents the input for creating a user.
type CreateUserInput struct {
	Username           string `json:"username"`
	Password           string `json:"password"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registration_number"`
	IsAdmin            bool   `json:"is_admin"`
}

// UserUsecase manages the user directory.
type UserUsecase interface {
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	GetUser(ctx context.Context, userID uint) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	// AdminIDs lists the recipients of administrator notifications.
	AdminIDs(ctx context.Context) ([]uint, error)
}
