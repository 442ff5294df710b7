package usecase

import (
	"context"
	"time"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateGeofenceInput represents the input for creating a geofence
type CreateGeofenceInput struct {
	Name         string     `json:"name" validate:"required"`
	Address      string     `json:"address" validate:"required"`
	Latitude     float64    `json:"latitude" validate:"required,latitude"`
	Longitude    float64    `json:"longitude" validate:"required,longitude"`
	RadiusMeters float64    `json:"radius_meters" validate:"omitempty,gt=0"`
	Type         string     `json:"type" validate:"required,oneof=home temporary"`
	EndTime      *time.Time `json:"end_time,omitempty"`
}

// GeofenceUsecase defines the interface for geofence management use cases
type GeofenceUsecase interface {
	// CreateGeofence creates a geofence owned by the ward. Temporary
	// geofences must carry an end time.
	CreateGeofence(ctx context.Context, wardNumber string, input *CreateGeofenceInput) (*entity.Geofence, error)

	// GetWardGeofences retrieves the geofences of a ward. The caller must be
	// the ward or one of their linked supporters.
	GetWardGeofences(ctx context.Context, callerNumber, wardNumber string) ([]*entity.Geofence, error)

	// DeleteGeofence removes a geofence. Only the owning ward may delete it.
	DeleteGeofence(ctx context.Context, callerNumber string, id uuid.UUID) error

	// ReportLocation ingests a ward's position update: the location cache and
	// store are refreshed, then every geofence containing the position is
	// dispatched as an entry event.
	ReportLocation(ctx context.Context, wardNumber string, input *UpdateLocationInput) (*entity.LocationRecord, error)
}

// GeofenceEntryUsecase dispatches a confirmed geofence entry event. Every
// entry follows the same template: write an audit log, fan the event out to
// the ward's supporters, then run the behavior specific to the geofence type.
type GeofenceEntryUsecase interface {
	// HandleEntry processes the ward's entry into the given geofence.
	HandleEntry(ctx context.Context, wardNumber string, geofence *entity.Geofence) error
}

// GeofenceExpiryUsecase sweeps temporary geofences whose deadline passed
// without the ward entering them.
type GeofenceExpiryUsecase interface {
	// SweepExpired processes every temporary geofence expired before now:
	// logs the missed arrival, alerts supporters, and removes the fence.
	// One failing geofence does not stop the sweep; the number of fences
	// successfully processed is returned.
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

// LogUsecase exposes the ward's geofence event history
type LogUsecase interface {
	// GetWardLogs retrieves a ward's event logs, newest first. The caller
	// must be the ward or one of their linked supporters.
	GetWardLogs(ctx context.Context, callerNumber, wardNumber string) ([]*entity.Log, error)
}
