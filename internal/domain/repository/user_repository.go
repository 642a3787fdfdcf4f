// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"equiptrack/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the username is already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindUserByID retrieves a single user by their unique ID.
	FindUserByID(ctx context.Context, id uint) (*entity.User, error)

	// FindUserByUsername retrieves a single user by username.
	FindUserByUsername(ctx context.Context, username string) (*entity.User, error)

	// CreateUser persists a new user entity to the storage.
	CreateUser(ctx context.Context, user *entity.User) error

	// ListUsers returns every user ordered by username.
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// FindAdminIDs returns the ids of all administrators.
	FindAdminIDs(ctx context.Context) ([]uint, error)
}
