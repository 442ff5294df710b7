package repository

import (
	"context"

	"fence/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLocationNotFound is returned when a ward has no persisted location.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository defines the interface for ward location persistence.
// Only the most recent position per ward is kept on this path; historical
// trails are out of scope.
type LocationRepository interface {
	// SaveLocation persists the ward's position, replacing any previous one.
	SaveLocation(ctx context.Context, location *entity.UserLocation) error

	// FindLatestLocation retrieves the ward's most recently saved position.
	FindLatestLocation(ctx context.Context, wardNumber string) (*entity.UserLocation, error)
}
