package usecase

import (
	"context"

	"fence/internal/domain/entity"
)

// RegisterTokenInput represents the input for registering a device token
type RegisterTokenInput struct {
	Token      string `json:"token" validate:"required"`
	DeviceType string `json:"device_type" validate:"required,oneof=android ios"`
}

// NotificationUsecase defines the interface for push notification use cases
type NotificationUsecase interface {
	// NotifySupporters fans a ward event out to every supporter linked to
	// the ward, one push per registered device token. Individual delivery
	// failures are absorbed; a ward without links or tokens is a no-op.
	NotifySupporters(ctx context.Context, wardNumber, title, body, eventType string) error

	// EmergencyAlert fans an emergency call from the ward out to every
	// linked supporter through the regular fan-out path.
	EmergencyAlert(ctx context.Context, wardNumber string) error

	// RegisterOrUpdateToken registers a device token for a user. A token
	// value already known to the system is rebound to its new owner rather
	// than duplicated.
	RegisterOrUpdateToken(ctx context.Context, userNumber string, input *RegisterTokenInput) (*entity.DeviceToken, error)

	// DeleteToken removes a device token. Deleting an unknown token succeeds.
	DeleteToken(ctx context.Context, token string) error

	// GetUserTokens retrieves all device tokens registered by a user.
	GetUserTokens(ctx context.Context, userNumber string) ([]*entity.DeviceToken, error)
}
