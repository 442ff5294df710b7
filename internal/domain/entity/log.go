// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Log is an immutable audit record of a geofence event for a ward: either
// an entry event written by the dispatcher, or an expiry event written by
// the sweeper (label suffixed with " (미진입)"). Logs are never updated or
// deleted.
type Log struct {
	ID         uuid.UUID `json:"id"`
	WardNumber string    `json:"ward_number"`
	Label      string    `json:"label"`   // Geofence name, possibly with the expiry suffix.
	Address    string    `json:"address"` // Address of the geofence at event time.
	OccurredAt time.Time `json:"occurred_at"`
}
