package usecase

import (
	"context"

	"fence/internal/domain/entity"
)

// UpdateLocationInput represents a ward's freshly observed position
type UpdateLocationInput struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// LocationUsecase defines the interface for ward location use cases.
// The implementation keeps a per-ward cache in front of the durable store:
// updates go to both, reads prefer the cache and fall back to the store.
type LocationUsecase interface {
	// UpdateLocation records a ward's current position in the cache and the
	// durable store, replacing the previous one wholesale.
	UpdateLocation(ctx context.Context, wardNumber string, input *UpdateLocationInput) (*entity.LocationRecord, error)

	// GetCachedLocation retrieves a ward's most recent position from the
	// cache alone. It never consults the store: a ward not cached in this
	// process's lifetime reads as absent even when a persisted position
	// exists. Readable by the ward themselves or a linked supporter.
	GetCachedLocation(ctx context.Context, callerNumber, wardNumber string) (*entity.LocationRecord, error)

	// GetLatestLocation retrieves a ward's most recent position. A cache hit
	// never touches the store; a miss reads the store once and warms the
	// cache on success. Readable by the ward themselves or a linked
	// supporter.
	GetLatestLocation(ctx context.Context, callerNumber, wardNumber string) (*entity.LocationRecord, error)
}
