package impl

import (
	"context"
	"log/slog"

	deliverycontext "fence/internal/delivery/context"
	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	"fence/internal/usecase"

	"github.com/pkg/errors"
)

// logService implements the LogUsecase interface.
type logService struct {
	logRepo  repository.LogRepository
	linkRepo repository.LinkRepository
	logger   *slog.Logger
}

// NewLogService is the constructor for logService.
func NewLogService(
	logRepo repository.LogRepository,
	linkRepo repository.LinkRepository,
	logger *slog.Logger,
) usecase.LogUsecase {
	return &logService{
		logRepo:  logRepo,
		linkRepo: linkRepo,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *logService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWardLogs retrieves a ward's geofence event logs, newest first.
func (srv *logService) GetWardLogs(ctx context.Context, callerNumber, wardNumber string) ([]*entity.Log, error) {
	allowed, err := canAccessWard(ctx, srv.linkRepo, callerNumber, wardNumber)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller is not linked to ward")
	}

	logs, err := srv.logRepo.FindLogsByWard(ctx, wardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find logs by ward")
	}

	srv.log(ctx).Debug("Ward logs retrieved", slog.String("ward_number", wardNumber), slog.Int("count", len(logs)))

	return logs, nil
}
