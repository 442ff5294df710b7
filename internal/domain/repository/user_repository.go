// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fence/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUser is returned when trying to create a user whose number already exists.
	ErrDuplicateUser = errors.New("user already exists")
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateUser persists a new user.
	CreateUser(ctx context.Context, user *entity.User) error

	// FindUserByNumber retrieves a user by their phone number.
	FindUserByNumber(ctx context.Context, number string) (*entity.User, error)

	// FindUserByLinkCode retrieves a user by their share code.
	FindUserByLinkCode(ctx context.Context, linkCode string) (*entity.User, error)
}
