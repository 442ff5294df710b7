package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLocationModel is the GORM-specific struct for the 'user_locations'
// table. One row per ward; every save replaces the previous position
// (most recent write wins, no history on this path).
type UserLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WardNumber string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	Latitude   float64   `gorm:"type:decimal(10,7);not null"`
	Longitude  float64   `gorm:"type:decimal(10,7);not null"`
	SavedAt    time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
