// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationRecord is the cache-shaped latest-known position of a ward.
// Records are immutable; a newer record for the same ward supersedes the
// older one wholesale, it is never merged.
type LocationRecord struct {
	WardNumber      string  `json:"ward_number"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	TimestampMillis int64   `json:"timestamp"` // Epoch milliseconds, UTC.
}

// UserLocation is the durable-store shape of a ward's last persisted
// position. Only the most recent write is retained on this path.
type UserLocation struct {
	ID         uuid.UUID
	WardNumber string
	Latitude   float64
	Longitude  float64
	SavedAt    time.Time
}

// ToRecord converts the persisted location into the cache record shape.
// SavedAt is interpreted as UTC when deriving the epoch-millisecond
// timestamp; UTC is the authoritative zone for stored times.
func (l *UserLocation) ToRecord() *LocationRecord {
	return &LocationRecord{
		WardNumber:      l.WardNumber,
		Latitude:        l.Latitude,
		Longitude:       l.Longitude,
		TimestampMillis: l.SavedAt.UTC().UnixMilli(),
	}
}
