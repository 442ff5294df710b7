package repository

import (
	"context"

	"fence/internal/domain/entity"
)

// LogRepository defines the interface for geofence event log persistence.
// Logs are append-only; there is no update or delete.
type LogRepository interface {
	// CreateLog persists a new event log entry.
	CreateLog(ctx context.Context, log *entity.Log) error

	// FindLogsByWard retrieves a ward's event logs, newest first.
	FindLogsByWard(ctx context.Context, wardNumber string) ([]*entity.Log, error)
}
