package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceTokenModel is the GORM-specific struct for the 'device_tokens'
// table. The token value is globally unique so a re-registered token is
// rebound to its new owner instead of duplicated.
type DeviceTokenModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserNumber string    `gorm:"type:varchar(20);not null;index"`
	Token      string    `gorm:"type:varchar(500);not null;uniqueIndex"`
	DeviceType string    `gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceTokenModel) TableName() string {
	return "device_tokens"
}
