package repository

import (
	"context"

	"fence/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for device token persistence.
var (
	// ErrDeviceTokenNotFound is returned when a token is not found.
	ErrDeviceTokenNotFound = errors.New("device token not found")
	// ErrDuplicateDeviceToken is returned when a token value is inserted twice.
	ErrDuplicateDeviceToken = errors.New("device token already exists")
)

// DeviceTokenRepository defines the interface for device token operations.
type DeviceTokenRepository interface {
	// CreateDeviceToken persists a new device token.
	CreateDeviceToken(ctx context.Context, token *entity.DeviceToken) error

	// UpdateDeviceToken rewrites an existing token row (owner, device type,
	// updated_at), keyed by its ID.
	UpdateDeviceToken(ctx context.Context, token *entity.DeviceToken) error

	// FindDeviceTokenByToken retrieves a token row by its token value.
	FindDeviceTokenByToken(ctx context.Context, token string) (*entity.DeviceToken, error)

	// FindDeviceTokensByUser retrieves all tokens registered by a user.
	FindDeviceTokensByUser(ctx context.Context, userNumber string) ([]*entity.DeviceToken, error)

	// DeleteDeviceTokenByToken removes a token by its value. Deleting an
	// unknown token is not an error.
	DeleteDeviceTokenByToken(ctx context.Context, token string) error
}
