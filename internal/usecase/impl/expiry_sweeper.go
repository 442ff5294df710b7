package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Suffix appended to the geofence name in logs written for a missed arrival.
const missedArrivalSuffix = " (미진입)"

// geofenceExpiryService implements the GeofenceExpiryUsecase interface.
type geofenceExpiryService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewGeofenceExpiryService is the constructor for geofenceExpiryService.
func NewGeofenceExpiryService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.GeofenceExpiryUsecase {
	return &geofenceExpiryService{
		txManager:      txManager,
		userRepo:       userRepo,
		notificationUC: notificationUC,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *geofenceExpiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SweepExpired processes every temporary geofence whose deadline passed
// before now. Geofences are handled one at a time so a single failure never
// stalls the rest of the sweep; failed ones stay in place and are retried
// on the next tick.
func (srv *geofenceExpiryService) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	var expired []*entity.Geofence

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GeofenceRepo().FindExpiredTemporaryGeofences(ctx, now)
		if err != nil {
			return errors.Wrap(err, "failed to find expired temporary geofences")
		}

		expired = found

		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(expired) == 0 {
		return 0, nil
	}

	srv.log(ctx).Info("Sweeping expired temporary geofences", slog.Int("count", len(expired)))

	processed := 0
	for _, geofence := range expired {
		if err := srv.expireOne(ctx, geofence); err != nil {
			srv.log(ctx).Error("Failed to expire temporary geofence",
				slog.Any("error", err),
				slog.String("ward_number", geofence.WardNumber),
				slog.String("geofence", geofence.Name))

			continue
		}
		processed++
	}

	return processed, nil
}

// expireOne logs the missed arrival and removes the geofence in one
// transaction, then alerts supporters. Removal and log share a transaction
// so an already-expired fence can never be swept twice.
func (srv *geofenceExpiryService) expireOne(ctx context.Context, geofence *entity.Geofence) error {
	ward, err := srv.userRepo.FindUserByNumber(ctx, geofence.WardNumber)
	if err != nil {
		return errors.Wrap(err, "failed to find ward")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		log := &entity.Log{
			ID:         uuid.New(),
			WardNumber: geofence.WardNumber,
			Label:      geofence.Name + missedArrivalSuffix,
			Address:    geofence.Address,
			OccurredAt: time.Now(),
		}

		if err := repoFactory.LogRepo().CreateLog(ctx, log); err != nil {
			return errors.Wrap(err, "failed to create expiry log")
		}

		if err := repoFactory.GeofenceRepo().DeleteGeofence(ctx, geofence.ID); err != nil {
			return errors.Wrap(err, "failed to delete expired geofence")
		}

		return nil
	})
	if err != nil {
		return err
	}

	title := fmt.Sprintf("⏰ %s님 일정 알림", ward.Name)
	body := fmt.Sprintf("%s에 시간 내 도착하지 않았습니다.", geofence.Name)
	if err := srv.notificationUC.NotifySupporters(ctx, geofence.WardNumber, title, body, eventTypeExpiry); err != nil {
		srv.log(ctx).Warn("Failed to notify supporters of expiry",
			slog.Any("error", err),
			slog.String("ward_number", geofence.WardNumber))
	}

	return nil
}
