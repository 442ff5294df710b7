package impl

import (
	"io"
	"log/slog"
	"time"

	"fence/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Geofence: &config.GeofenceConfig{
			DefaultRadiusMeters: 100,
			SweepInterval:       time.Minute,
		},
	}
}
