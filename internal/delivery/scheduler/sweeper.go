// Package scheduler contains the periodic background jobs of the service.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"fence/config"
	"fence/internal/delivery"
	"fence/internal/usecase"

	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the expiry sweeper, injected by Fx.
type SweeperParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.GeofenceExpiryUsecase
}

// expirySweeper periodically removes temporary geofences whose deadline
// passed without the ward arriving, alerting supporters as it goes.
type expirySweeper struct {
	interval time.Duration
	logger   *slog.Logger
	expiryUC usecase.GeofenceExpiryUsecase
	stop     chan struct{}
}

// NewExpirySweeper is the constructor for the expiry sweeper delivery.
func NewExpirySweeper(params SweeperParams) delivery.Delivery {
	sweeper := &expirySweeper{
		interval: params.Config.Geofence.SweepInterval,
		logger:   params.Logger,
		expiryUC: params.ExpiryUC,
		stop:     make(chan struct{}),
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			close(sweeper.stop)

			return nil
		},
	})

	return sweeper
}

// Serve runs the sweep loop until the application stops. Each tick sweeps
// once; a failing sweep is logged and retried on the next tick.
func (s *expirySweeper) Serve(ctx context.Context) error {
	s.logger.Info("Starting geofence expiry sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			s.logger.Info("Stopping geofence expiry sweeper")

			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *expirySweeper) sweep(ctx context.Context) {
	processed, err := s.expiryUC.SweepExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Geofence expiry sweep failed", slog.Any("error", err))

		return
	}

	if processed > 0 {
		s.logger.Info("Geofence expiry sweep finished", slog.Int("processed", processed))
	}
}
