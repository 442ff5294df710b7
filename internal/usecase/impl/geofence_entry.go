package impl

import (
	"context"
	"fmt"
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

// Push event type tags carried in the notification data payload.
const (
	eventTypeEntry  = "geofence_entry"
	eventTypeExpiry = "geofence_expiry"
)

// entryHandler runs the type-specific step of the entry template. Every
// geofence type registers exactly one handler.
type entryHandler interface {
	onEntry(ctx context.Context, geofence *entity.Geofence) error
}

// geofenceEntryService implements the GeofenceEntryUsecase interface.
// HandleEntry follows a fixed template: write the audit log, fan the event
// out to supporters, then run the handler registered for the geofence type.
type geofenceEntryService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	notificationUC usecase.NotificationUsecase
	handlers       map[entity.GeofenceType]entryHandler
	logger         *slog.Logger
}

// NewGeofenceEntryService is the constructor for geofenceEntryService.
func NewGeofenceEntryService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	notificationUC usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.GeofenceEntryUsecase {
	return &geofenceEntryService{
		txManager:      txManager,
		userRepo:       userRepo,
		notificationUC: notificationUC,
		handlers: map[entity.GeofenceType]entryHandler{
			entity.GeofenceTypeHome:      &homeEntryHandler{logger: logger},
			entity.GeofenceTypeTemporary: &temporaryEntryHandler{txManager: txManager, logger: logger},
		},
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *geofenceEntryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleEntry processes the ward's entry into the given geofence.
// The audit log is committed before any push leaves the building; per-device
// push failures are absorbed so an unreachable device never loses the log
// entry, but a fan-out that cannot even resolve the supporter links fails
// the entry.
func (srv *geofenceEntryService) HandleEntry(ctx context.Context, wardNumber string, geofence *entity.Geofence) error {
	handler, ok := srv.handlers[geofence.Type]
	if !ok {
		return errors.Errorf("no entry handler registered for geofence type %q", geofence.Type)
	}

	ward, err := srv.userRepo.FindUserByNumber(ctx, wardNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "ward not found")
		}

		return errors.Wrap(err, "failed to find ward")
	}

	// 1. Record the entry in the ward's event history.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		log := &entity.Log{
			ID:         uuid.New(),
			WardNumber: wardNumber,
			Label:      geofence.Name,
			Address:    geofence.Address,
			OccurredAt: time.Now(),
		}

		if err := repoFactory.LogRepo().CreateLog(ctx, log); err != nil {
			return errors.Wrap(err, "failed to create entry log")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to log geofence entry",
			slog.Any("error", err),
			slog.String("ward_number", wardNumber),
			slog.String("geofence", geofence.Name))

		return err
	}

	// 2. Alert the ward's supporters. Per-token delivery failures are
	// absorbed inside the fan-out; an error here means the supporter links
	// could not even be resolved, and that store failure surfaces.
	title := fmt.Sprintf("📍 %s님 위치 알림", ward.Name)
	body := fmt.Sprintf("%s에 도착했습니다.", geofence.Name)
	if err := srv.notificationUC.NotifySupporters(ctx, wardNumber, title, body, eventTypeEntry); err != nil {
		srv.log(ctx).Error("Failed to notify supporters of entry",
			slog.Any("error", err),
			slog.String("ward_number", wardNumber))

		return err
	}

	// 3. Run the type-specific behavior.
	if err := handler.onEntry(ctx, geofence); err != nil {
		return errors.Wrapf(err, "entry handler for type %q failed", geofence.Type)
	}

	srv.log(ctx).Info("Geofence entry dispatched",
		slog.String("ward_number", wardNumber),
		slog.String("geofence", geofence.Name),
		slog.String("type", string(geofence.Type)))

	return nil
}

// homeEntryHandler handles entries into persistent home geofences. Arrival
// home needs no follow-up beyond the shared log and fan-out.
type homeEntryHandler struct {
	logger *slog.Logger
}

func (h *homeEntryHandler) onEntry(ctx context.Context, geofence *entity.Geofence) error {
	h.logger.Debug("Home geofence entry", slog.String("geofence", geofence.Name))

	return nil
}

// temporaryEntryHandler handles entries into temporary geofences. A
// temporary fence is satisfied by arrival and is removed so the expiry
// sweeper can never alert on it afterwards.
type temporaryEntryHandler struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

func (h *temporaryEntryHandler) onEntry(ctx context.Context, geofence *entity.Geofence) error {
	err := h.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.GeofenceRepo().DeleteGeofence(ctx, geofence.ID); err != nil {
			// A concurrent sweep may have removed the fence already.
			if errors.Is(err, repository.ErrGeofenceNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to delete satisfied temporary geofence")
		}

		return nil
	})
	if err != nil {
		return err
	}

	h.logger.Debug("Temporary geofence satisfied and removed", slog.String("geofence", geofence.Name))

	return nil
}
