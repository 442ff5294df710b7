package impl

import (
	"context"
	"log/slog"
	"time"

	"fence/config"
	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// geofenceService implements the GeofenceUsecase interface.
type geofenceService struct {
	txManager     repository.TransactionManager
	linkRepo      repository.LinkRepository
	locationUC    usecase.LocationUsecase
	entryUC       usecase.GeofenceEntryUsecase
	defaultRadius float64
	logger        *slog.Logger
}

// NewGeofenceService is the constructor for geofenceService.
func NewGeofenceService(
	txManager repository.TransactionManager,
	linkRepo repository.LinkRepository,
	locationUC usecase.LocationUsecase,
	entryUC usecase.GeofenceEntryUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	return &geofenceService{
		txManager:     txManager,
		linkRepo:      linkRepo,
		locationUC:    locationUC,
		entryUC:       entryUC,
		defaultRadius: cfg.Geofence.DefaultRadiusMeters,
		logger:        logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *geofenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateGeofence creates a geofence owned by the ward.
func (srv *geofenceService) CreateGeofence(ctx context.Context, wardNumber string, input *usecase.CreateGeofenceInput) (*entity.Geofence, error) {
	fenceType := entity.GeofenceType(input.Type)
	if !fenceType.Valid() {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown geofence type %q", input.Type)
	}

	// A temporary fence without a deadline would never expire.
	if fenceType == entity.GeofenceTypeTemporary && input.EndTime == nil {
		return nil, errors.WithStack(domainerrors.ErrGeofenceEndTimeRequired)
	}

	radius := input.RadiusMeters
	if radius <= 0 {
		radius = srv.defaultRadius
	}

	geofence := &entity.Geofence{
		ID:           uuid.New(),
		WardNumber:   wardNumber,
		Name:         input.Name,
		Address:      input.Address,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		RadiusMeters: radius,
		Type:         fenceType,
		EndTime:      input.EndTime,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GeofenceRepo().CreateGeofence(ctx, geofence); err != nil {
			return errors.Wrap(err, "failed to create geofence")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Geofence created",
		slog.String("ward_number", wardNumber),
		slog.String("geofence", geofence.Name),
		slog.String("type", string(geofence.Type)))

	return geofence, nil
}

// GetWardGeofences retrieves the geofences of a ward.
func (srv *geofenceService) GetWardGeofences(ctx context.Context, callerNumber, wardNumber string) ([]*entity.Geofence, error) {
	allowed, err := canAccessWard(ctx, srv.linkRepo, callerNumber, wardNumber)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller is not linked to ward")
	}

	var geofences []*entity.Geofence

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GeofenceRepo().FindGeofencesByWard(ctx, wardNumber)
		if err != nil {
			return errors.Wrap(err, "failed to find geofences by ward")
		}

		geofences = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return geofences, nil
}

// DeleteGeofence removes a geofence. Only the owning ward may delete it.
func (srv *geofenceService) DeleteGeofence(ctx context.Context, callerNumber string, id uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		geofenceRepo := repoFactory.GeofenceRepo()

		geofence, err := geofenceRepo.FindGeofenceByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrGeofenceNotFound) {
				return errors.Wrap(domainerrors.ErrGeofenceNotFound, "geofence not found")
			}

			return errors.Wrap(err, "failed to find geofence")
		}

		if geofence.WardNumber != callerNumber {
			return errors.Wrap(domainerrors.ErrUnauthorizedAccess, "only the owning ward may delete a geofence")
		}

		if err := geofenceRepo.DeleteGeofence(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete geofence")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Geofence deleted", slog.String("caller", callerNumber), slog.Any("geofence_id", id))

	return nil
}

// ReportLocation ingests a ward's position update. The position is saved
// first; entry dispatch happens afterwards, so a failing handler never loses
// the location write. Expired temporary fences are skipped, the sweeper owns
// them.
func (srv *geofenceService) ReportLocation(ctx context.Context, wardNumber string, input *usecase.UpdateLocationInput) (*entity.LocationRecord, error) {
	record, err := srv.locationUC.UpdateLocation(ctx, wardNumber, input)
	if err != nil {
		return nil, err
	}

	var geofences []*entity.Geofence

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.GeofenceRepo().FindGeofencesByWard(ctx, wardNumber)
		if err != nil {
			return errors.Wrap(err, "failed to find geofences by ward")
		}

		geofences = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	position := orb.Point{input.Longitude, input.Latitude}

	for _, geofence := range geofences {
		if geofence.Expired(now) {
			continue
		}

		center := orb.Point{geofence.Longitude, geofence.Latitude}
		if geo.Distance(position, center) > geofence.RadiusMeters {
			continue
		}

		if err := srv.entryUC.HandleEntry(ctx, wardNumber, geofence); err != nil {
			srv.log(ctx).Error("Failed to dispatch geofence entry",
				slog.Any("error", err),
				slog.String("ward_number", wardNumber),
				slog.String("geofence", geofence.Name))
		}
	}

	return record, nil
}
