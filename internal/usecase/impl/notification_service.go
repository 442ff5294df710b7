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
	"fence/internal/domain/service"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Push event type tag for emergency calls, carried in the data payload.
const eventTypeEmergency = "emergency"

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	linkRepo        repository.LinkRepository
	deviceTokenRepo repository.DeviceTokenRepository
	userRepo        repository.UserRepository
	pushSender      service.PushSender
	logger          *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	linkRepo repository.LinkRepository,
	deviceTokenRepo repository.DeviceTokenRepository,
	userRepo repository.UserRepository,
	pushSender service.PushSender,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		linkRepo:        linkRepo,
		deviceTokenRepo: deviceTokenRepo,
		userRepo:        userRepo,
		pushSender:      pushSender,
		logger:          logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NotifySupporters fans a ward event out to every linked supporter, one push
// per registered device token. Delivery failures are absorbed per token so a
// dead device never blocks the other supporters.
func (srv *notificationService) NotifySupporters(ctx context.Context, wardNumber, title, body, eventType string) error {
	links, err := srv.linkRepo.FindLinksByWard(ctx, wardNumber)
	if err != nil {
		return errors.Wrap(err, "failed to find links by ward")
	}

	if len(links) == 0 {
		srv.log(ctx).Info("No linked supporters, skipping notification", slog.String("ward_number", wardNumber))

		return nil
	}

	data := map[string]string{
		"elderNumber": wardNumber,
		"type":        eventType,
	}

	sent := 0
	for _, link := range links {
		tokens, err := srv.deviceTokenRepo.FindDeviceTokensByUser(ctx, link.SupporterNumber)
		if err != nil {
			srv.log(ctx).Warn("Failed to load supporter device tokens",
				slog.Any("error", err),
				slog.String("supporter_number", link.SupporterNumber))

			continue
		}

		for _, token := range tokens {
			if err := srv.pushSender.Send(ctx, token.Token, title, body, data); err != nil {
				srv.log(ctx).Warn("Failed to send push notification",
					slog.Any("error", err),
					slog.String("supporter_number", link.SupporterNumber))

				continue
			}
			sent++
		}
	}

	if sent == 0 {
		srv.log(ctx).Warn("No device tokens reachable for ward's supporters", slog.String("ward_number", wardNumber))

		return nil
	}

	srv.log(ctx).Debug("Notified supporters",
		slog.String("ward_number", wardNumber),
		slog.Int("links", len(links)),
		slog.Int("sent", sent))

	return nil
}

// EmergencyAlert fans an emergency call from the ward out to every linked
// supporter. The alert rides the regular fan-out path, so delivery behavior
// (per-token absorption, no-link no-op) is identical to geofence events.
func (srv *notificationService) EmergencyAlert(ctx context.Context, wardNumber string) error {
	ward, err := srv.userRepo.FindUserByNumber(ctx, wardNumber)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "ward not found")
		}

		return errors.Wrap(err, "failed to find ward")
	}

	title := fmt.Sprintf("🚨 %s님 긴급 알림", ward.Name)
	body := "긴급 호출이 발생했습니다. 위치를 확인해주세요."

	if err := srv.NotifySupporters(ctx, wardNumber, title, body, eventTypeEmergency); err != nil {
		return err
	}

	srv.log(ctx).Info("Emergency alert dispatched", slog.String("ward_number", wardNumber))

	return nil
}

// RegisterOrUpdateToken registers a device token for a user. A token value
// the system already knows is rebound to its new owner, never duplicated.
func (srv *notificationService) RegisterOrUpdateToken(ctx context.Context, userNumber string, input *usecase.RegisterTokenInput) (*entity.DeviceToken, error) {
	existing, err := srv.deviceTokenRepo.FindDeviceTokenByToken(ctx, input.Token)
	if err != nil && !errors.Is(err, repository.ErrDeviceTokenNotFound) {
		return nil, errors.Wrap(err, "failed to find device token")
	}

	if existing != nil {
		existing.UserNumber = userNumber
		existing.DeviceType = input.DeviceType
		existing.UpdatedAt = time.Now()

		if err := srv.deviceTokenRepo.UpdateDeviceToken(ctx, existing); err != nil {
			return nil, errors.Wrap(err, "failed to rebind device token")
		}

		srv.log(ctx).Debug("Device token rebound", slog.String("user_number", userNumber))

		return existing, nil
	}

	token := &entity.DeviceToken{
		ID:         uuid.New(),
		UserNumber: userNumber,
		Token:      input.Token,
		DeviceType: input.DeviceType,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := srv.deviceTokenRepo.CreateDeviceToken(ctx, token); err != nil {
		return nil, errors.Wrap(err, "failed to create device token")
	}

	srv.log(ctx).Debug("Device token registered", slog.String("user_number", userNumber))

	return token, nil
}

// DeleteToken removes a device token. Deleting an unknown token succeeds.
func (srv *notificationService) DeleteToken(ctx context.Context, token string) error {
	if err := srv.deviceTokenRepo.DeleteDeviceTokenByToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}

// GetUserTokens retrieves all device tokens registered by a user.
func (srv *notificationService) GetUserTokens(ctx context.Context, userNumber string) ([]*entity.DeviceToken, error) {
	tokens, err := srv.deviceTokenRepo.FindDeviceTokensByUser(ctx, userNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	return tokens, nil
}
