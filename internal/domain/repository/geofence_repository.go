package repository

import (
	"context"
	"time"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrGeofenceNotFound is returned when a geofence is not found.
var ErrGeofenceNotFound = errors.New("geofence not found")

// GeofenceRepository defines the interface for geofence-related database operations.
type GeofenceRepository interface {
	// CreateGeofence persists a new geofence for a ward.
	CreateGeofence(ctx context.Context, geofence *entity.Geofence) error

	// FindGeofenceByID retrieves a geofence by its unique ID.
	FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error)

	// FindGeofencesByWard retrieves all geofences owned by a ward.
	FindGeofencesByWard(ctx context.Context, wardNumber string) ([]*entity.Geofence, error)

	// FindExpiredTemporaryGeofences retrieves temporary geofences whose
	// deadline passed before the given instant.
	FindExpiredTemporaryGeofences(ctx context.Context, before time.Time) ([]*entity.Geofence, error)

	// DeleteGeofence removes a geofence by its ID.
	DeleteGeofence(ctx context.Context, id uuid.UUID) error
}
