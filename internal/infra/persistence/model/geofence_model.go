package model

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceModel is the GORM-specific struct for the 'geofences' table.
// Expired temporary fences are removed outright by the sweeper, so the
// table carries no soft-delete column: a deleted row must not satisfy the
// expiry query on a later tick.
type GeofenceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WardNumber   string    `gorm:"type:varchar(20);not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Address      string    `gorm:"type:varchar(255);not null"`
	Latitude     float64   `gorm:"type:decimal(10,7);not null"`
	Longitude    float64   `gorm:"type:decimal(10,7);not null"`
	RadiusMeters float64   `gorm:"type:decimal(10,2);not null"`
	Type         string    `gorm:"type:varchar(20);not null;index:idx_geofences_type_end_time"`
	EndTime      *time.Time `gorm:"index:idx_geofences_type_end_time"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (GeofenceModel) TableName() string {
	return "geofences"
}
