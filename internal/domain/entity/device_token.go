// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceToken is a push-notification token registered by a user's device.
// A user may hold any number of tokens (multi-device). The token value is
// globally unique: registering a known value again rebinds it to its new
// owner instead of creating a duplicate.
type DeviceToken struct {
	ID         uuid.UUID `json:"id"`
	UserNumber string    `json:"user_number"` // Phone number of the owning user.
	Token      string    `json:"token"`       // Opaque FCM registration token.
	DeviceType string    `json:"device_type"` // "android" or "ios".
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
