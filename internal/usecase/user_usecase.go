// Package usecase defines the application's use case interfaces.
package usecase

import (
	"context"

	"fence/internal/domain/entity"
)

// RegisterUserInput represents the input for registering a new user
type RegisterUserInput struct {
	Number string `json:"number" validate:"required"`
	Name   string `json:"name" validate:"required"`
}

// UserUsecase defines the interface for user management use cases
type UserUsecase interface {
	// RegisterUser creates a new user identified by their phone number and
	// issues them a fresh link code.
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)

	// GetUser retrieves a user by their phone number.
	GetUser(ctx context.Context, number string) (*entity.User, error)
}
