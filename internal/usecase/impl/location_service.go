// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	cache     *locationCache
	txManager repository.TransactionManager
	linkRepo  repository.LinkRepository
	logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(
	txManager repository.TransactionManager,
	linkRepo repository.LinkRepository,
	logger *slog.Logger,
) usecase.LocationUsecase {
	return &locationService{
		cache:     newLocationCache(),
		txManager: txManager,
		linkRepo:  linkRepo,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateLocation records a ward's current position in the store and the cache.
// The cache is refreshed only after the store write succeeds, so the two
// never disagree on a position the caller was told about.
func (srv *locationService) UpdateLocation(ctx context.Context, wardNumber string, input *usecase.UpdateLocationInput) (*entity.LocationRecord, error) {
	location := &entity.UserLocation{
		ID:         uuid.New(),
		WardNumber: wardNumber,
		Latitude:   input.Latitude,
		Longitude:  input.Longitude,
		SavedAt:    time.Now().UTC(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.LocationRepo().SaveLocation(ctx, location); err != nil {
			return errors.Wrap(err, "failed to save location")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update location", slog.Any("error", err), slog.String("ward_number", wardNumber))

		return nil, err
	}

	record := location.ToRecord()
	srv.cache.set(record)

	srv.log(ctx).Debug("Location updated", slog.String("ward_number", wardNumber))

	return record, nil
}

// GetCachedLocation retrieves a ward's most recent position from the cache
// alone, never the store. A ward not yet cached in this process reads as
// absent even when a persisted position exists.
func (srv *locationService) GetCachedLocation(ctx context.Context, callerNumber, wardNumber string) (*entity.LocationRecord, error) {
	if err := srv.authorize(ctx, callerNumber, wardNumber); err != nil {
		return nil, err
	}

	record, ok := srv.cache.get(wardNumber)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "no cached location for ward")
	}

	return record, nil
}

// GetLatestLocation retrieves a ward's most recent position. A cache hit
// never touches the store; a miss reads the store once and warms the cache.
// Absence is never cached, so a ward with no stored position stays a miss.
func (srv *locationService) GetLatestLocation(ctx context.Context, callerNumber, wardNumber string) (*entity.LocationRecord, error) {
	if err := srv.authorize(ctx, callerNumber, wardNumber); err != nil {
		return nil, err
	}

	if record, ok := srv.cache.get(wardNumber); ok {
		return record, nil
	}

	var location *entity.UserLocation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.LocationRepo().FindLatestLocation(ctx, wardNumber)
		if err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return errors.Wrap(domainerrors.ErrLocationNotFound, "no location stored for ward")
			}

			return errors.Wrap(err, "failed to find latest location")
		}

		location = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	record := location.ToRecord()
	srv.cache.set(record)

	return record, nil
}

// authorize rejects callers that are neither the ward nor a linked supporter.
func (srv *locationService) authorize(ctx context.Context, callerNumber, wardNumber string) error {
	allowed, err := canAccessWard(ctx, srv.linkRepo, callerNumber, wardNumber)
	if err != nil {
		return err
	}
	if !allowed {
		return errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller is not linked to ward")
	}

	return nil
}
