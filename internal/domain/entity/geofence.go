// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GeofenceType enumerates the supported geofence kinds. The set is closed:
// the entry dispatcher resolves type-specific behavior from this value.
type GeofenceType string

const (
	// GeofenceTypeHome is a persistent geofence around a well-known place.
	GeofenceTypeHome GeofenceType = "home"
	// GeofenceTypeTemporary is a time-bounded geofence that expires when its
	// deadline passes without the ward entering it.
	GeofenceTypeTemporary GeofenceType = "temporary"
)

// Valid reports whether the type is one of the known geofence kinds.
func (t GeofenceType) Valid() bool {
	return t == GeofenceTypeHome || t == GeofenceTypeTemporary
}

// Geofence is a named area owned by exactly one ward. Entry into it is
// logged and fanned out to the ward's supporters.
type Geofence struct {
	ID           uuid.UUID    `json:"id"`
	WardNumber   string       `json:"ward_number"`   // Phone number of the owning ward.
	Name         string       `json:"name"`          // Label shown in logs and notifications.
	Address      string       `json:"address"`       // Human-readable address of the area.
	Latitude     float64      `json:"latitude"`      // Center latitude of the fence.
	Longitude    float64      `json:"longitude"`     // Center longitude of the fence.
	RadiusMeters float64      `json:"radius_meters"` // Entry radius around the center.
	Type         GeofenceType `json:"type"`
	EndTime      *time.Time   `json:"end_time,omitempty"` // Deadline; set only for temporary fences.
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Expired reports whether a temporary geofence's deadline has passed.
// Home geofences never expire.
func (g *Geofence) Expired(now time.Time) bool {
	return g.Type == GeofenceTypeTemporary && g.EndTime != nil && g.EndTime.Before(now)
}
