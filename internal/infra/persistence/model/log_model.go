package model

import (
	"time"

	"github.com/google/uuid"
)

// LogModel is the GORM-specific struct for the 'logs' table. Rows are
// append-only audit records of geofence entry and expiry events.
type LogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WardNumber string    `gorm:"type:varchar(20);not null;index"`
	Label      string    `gorm:"type:varchar(120);not null"`
	Address    string    `gorm:"type:varchar(255);not null"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LogModel) TableName() string {
	return "logs"
}
