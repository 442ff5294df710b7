package impl

import (
	"context"
	"testing"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	mockService "fence/internal/mocks/service"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// notificationServiceFixtures holds all test dependencies for notification service tests.
type notificationServiceFixtures struct {
	service         usecase.NotificationUsecase
	linkRepo        *mockRepo.MockLinkRepository
	deviceTokenRepo *mockRepo.MockDeviceTokenRepository
	userRepo        *mockRepo.MockUserRepository
	pushSender      *mockService.MockPushSender
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	linkRepo := mockRepo.NewMockLinkRepository(t)
	deviceTokenRepo := mockRepo.NewMockDeviceTokenRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	pushSender := mockService.NewMockPushSender(t)
	service := NewNotificationService(linkRepo, deviceTokenRepo, userRepo, pushSender, newDiscardLogger())

	return notificationServiceFixtures{
		service:         service,
		linkRepo:        linkRepo,
		deviceTokenRepo: deviceTokenRepo,
		userRepo:        userRepo,
		pushSender:      pushSender,
	}
}

func supporterLink(wardNumber, supporterNumber string) *entity.Link {
	return &entity.Link{
		ID:              uuid.New(),
		SupporterNumber: supporterNumber,
		WardNumber:      wardNumber,
	}
}

func deviceToken(userNumber, token string) *entity.DeviceToken {
	return &entity.DeviceToken{
		ID:         uuid.New(),
		UserNumber: userNumber,
		Token:      token,
		DeviceType: "android",
	}
}

func TestNotificationService_NotifySupporters_OnePushPerToken(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()
	wantData := map[string]string{
		"elderNumber": "0101234567",
		"type":        "geofence_entry",
	}

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			supporterLink("0101234567", "0101111111"),
			supporterLink("0101234567", "0102222222"),
		}, nil)

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0101111111").
		Return([]*entity.DeviceToken{deviceToken("0101111111", "token-a")}, nil)
	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0102222222").
		Return([]*entity.DeviceToken{
			deviceToken("0102222222", "token-b"),
			deviceToken("0102222222", "token-c"),
		}, nil)

	for _, token := range []string{"token-a", "token-b", "token-c"} {
		fixtures.pushSender.EXPECT().
			Send(ctx, token, "제목", "본문", wantData).
			Return(nil).
			Once()
	}

	err := fixtures.service.NotifySupporters(ctx, "0101234567", "제목", "본문", "geofence_entry")
	require.NoError(t, err)
}

func TestNotificationService_NotifySupporters_NoLinksIsNoOp(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	// Without links no token lookup and no push may happen.
	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{}, nil)

	err := fixtures.service.NotifySupporters(ctx, "0101234567", "제목", "본문", "geofence_entry")
	require.NoError(t, err)
}

func TestNotificationService_NotifySupporters_DeadDeviceDoesNotBlockOthers(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			supporterLink("0101234567", "0101111111"),
			supporterLink("0101234567", "0102222222"),
		}, nil)

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0101111111").
		Return([]*entity.DeviceToken{deviceToken("0101111111", "token-dead")}, nil)
	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0102222222").
		Return([]*entity.DeviceToken{deviceToken("0102222222", "token-live")}, nil)

	fixtures.pushSender.EXPECT().
		Send(ctx, "token-dead", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("registration token not registered")).
		Once()
	fixtures.pushSender.EXPECT().
		Send(ctx, "token-live", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	err := fixtures.service.NotifySupporters(ctx, "0101234567", "제목", "본문", "geofence_entry")
	require.NoError(t, err)
}

func TestNotificationService_NotifySupporters_TokenLookupFailureSkipsSupporter(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			supporterLink("0101234567", "0101111111"),
			supporterLink("0101234567", "0102222222"),
		}, nil)

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0101111111").
		Return(nil, errors.New("query timeout"))
	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0102222222").
		Return([]*entity.DeviceToken{deviceToken("0102222222", "token-live")}, nil)

	fixtures.pushSender.EXPECT().
		Send(ctx, "token-live", mock.Anything, mock.Anything, mock.Anything).
		Return(nil).
		Once()

	err := fixtures.service.NotifySupporters(ctx, "0101234567", "제목", "본문", "geofence_entry")
	require.NoError(t, err)
}

func TestNotificationService_RegisterOrUpdateToken_CreatesNewToken(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokenByToken(ctx, "fresh-token").
		Return(nil, repository.ErrDeviceTokenNotFound)
	fixtures.deviceTokenRepo.EXPECT().
		CreateDeviceToken(ctx, mock.AnythingOfType("*entity.DeviceToken")).
		Return(nil)

	token, err := fixtures.service.RegisterOrUpdateToken(ctx, "0101111111", &usecase.RegisterTokenInput{
		Token:      "fresh-token",
		DeviceType: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, "0101111111", token.UserNumber)
	assert.Equal(t, "fresh-token", token.Token)
	assert.Equal(t, "ios", token.DeviceType)
	assert.NotEqual(t, uuid.Nil, token.ID)
}

func TestNotificationService_RegisterOrUpdateToken_RebindsKnownToken(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()
	existing := deviceToken("0101111111", "shared-token")

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokenByToken(ctx, "shared-token").
		Return(existing, nil)
	fixtures.deviceTokenRepo.EXPECT().
		UpdateDeviceToken(ctx, existing).
		Return(nil)

	// The same physical device now signs in as another user. The token row
	// is rebound, not duplicated.
	token, err := fixtures.service.RegisterOrUpdateToken(ctx, "0102222222", &usecase.RegisterTokenInput{
		Token:      "shared-token",
		DeviceType: "ios",
	})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, token.ID)
	assert.Equal(t, "0102222222", token.UserNumber)
	assert.Equal(t, "ios", token.DeviceType)
}

func TestNotificationService_DeleteToken_UnknownTokenSucceeds(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.deviceTokenRepo.EXPECT().
		DeleteDeviceTokenByToken(ctx, "gone-token").
		Return(nil)

	err := fixtures.service.DeleteToken(ctx, "gone-token")
	require.NoError(t, err)
}

func TestNotificationService_EmergencyAlert_PushesToAllSupporters(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()
	wantData := map[string]string{
		"elderNumber": "0101234567",
		"type":        "emergency",
	}

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(&entity.User{Number: "0101234567", Name: "김순자"}, nil)

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return([]*entity.Link{
			supporterLink("0101234567", "0101111111"),
			supporterLink("0101234567", "0102222222"),
		}, nil)

	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0101111111").
		Return([]*entity.DeviceToken{deviceToken("0101111111", "token-a")}, nil)
	fixtures.deviceTokenRepo.EXPECT().
		FindDeviceTokensByUser(ctx, "0102222222").
		Return([]*entity.DeviceToken{deviceToken("0102222222", "token-b")}, nil)

	for _, token := range []string{"token-a", "token-b"} {
		fixtures.pushSender.EXPECT().
			Send(ctx, token, "🚨 김순자님 긴급 알림", "긴급 호출이 발생했습니다. 위치를 확인해주세요.", wantData).
			Return(nil).
			Once()
	}

	err := fixtures.service.EmergencyAlert(ctx, "0101234567")
	require.NoError(t, err)
}

func TestNotificationService_EmergencyAlert_UnknownWard(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0109999999").
		Return(nil, repository.ErrUserNotFound)

	err := fixtures.service.EmergencyAlert(ctx, "0109999999")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestNotificationService_EmergencyAlert_LinkLookupFailureSurfaces(t *testing.T) {
	fixtures := createTestNotificationService(t)

	ctx := context.Background()

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(&entity.User{Number: "0101234567", Name: "김순자"}, nil)

	fixtures.linkRepo.EXPECT().
		FindLinksByWard(ctx, "0101234567").
		Return(nil, errors.New("connection reset"))

	err := fixtures.service.EmergencyAlert(ctx, "0101234567")
	require.Error(t, err)
}
