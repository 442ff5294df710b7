package impl

import (
	"context"
	"testing"
	"time"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	mockUsecase "fence/internal/mocks/usecase"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// expiryServiceFixtures holds all test dependencies for expiry sweeper tests.
type expiryServiceFixtures struct {
	service        usecase.GeofenceExpiryUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	notificationUC *mockUsecase.MockNotificationUsecase
}

func createTestExpiryService(t *testing.T) expiryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	service := NewGeofenceExpiryService(txManager, userRepo, notificationUC, newDiscardLogger())

	return expiryServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		notificationUC: notificationUC,
	}
}

func expiredGeofence(wardNumber, name string, endTime time.Time) *entity.Geofence {
	return &entity.Geofence{
		ID:           uuid.New(),
		WardNumber:   wardNumber,
		Name:         name,
		Address:      "서울시 종로구",
		RadiusMeters: 100,
		Type:         entity.GeofenceTypeTemporary,
		EndTime:      &endTime,
	}
}

func TestGeofenceExpiryService_SweepExpired_LogsDeletesAndNotifies(t *testing.T) {
	fixtures := createTestExpiryService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	geofence := expiredGeofence("0101234567", "병원", now.Add(-time.Hour))
	var created *entity.Log
	var deleted uuid.UUID

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindExpiredTemporaryGeofences(ctx, now).
				Return([]*entity.Geofence{geofence}, nil)

			return fn(mockFactory)
		}).
		Once()

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(&entity.User{Number: "0101234567", Name: "김순자"}, nil)

	// Log write and fence removal share one transaction so a second tick
	// can never sweep the same fence again.
	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLogRepo := mockRepo.NewMockLogRepository(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().LogRepo().Return(mockLogRepo)
			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockLogRepo.EXPECT().
				CreateLog(ctx, mock.AnythingOfType("*entity.Log")).
				Run(func(ctx context.Context, log *entity.Log) {
					created = log
				}).
				Return(nil)
			mockGeofenceRepo.EXPECT().
				DeleteGeofence(ctx, geofence.ID).
				Run(func(ctx context.Context, id uuid.UUID) {
					deleted = id
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	fixtures.notificationUC.EXPECT().
		NotifySupporters(ctx, "0101234567", "⏰ 김순자님 일정 알림", "병원에 시간 내 도착하지 않았습니다.", "geofence_expiry").
		Return(nil).
		Once()

	processed, err := fixtures.service.SweepExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
	require.NotNil(t, created)
	assert.Equal(t, "병원 (미진입)", created.Label)
	assert.Equal(t, "서울시 종로구", created.Address)
	assert.Equal(t, geofence.ID, deleted)
}

func TestGeofenceExpiryService_SweepExpired_NothingExpired(t *testing.T) {
	fixtures := createTestExpiryService(t)

	ctx := context.Background()
	now := time.Now()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindExpiredTemporaryGeofences(ctx, now).
				Return([]*entity.Geofence{}, nil)

			return fn(mockFactory)
		}).
		Once()

	processed, err := fixtures.service.SweepExpired(ctx, now)

	require.NoError(t, err)
	assert.Zero(t, processed)
}

func TestGeofenceExpiryService_SweepExpired_OneFailureDoesNotStallTheSweep(t *testing.T) {
	fixtures := createTestExpiryService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	failing := expiredGeofence("0101234567", "약국", now.Add(-2*time.Hour))
	healthy := expiredGeofence("0109876543", "경로당", now.Add(-time.Hour))

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindExpiredTemporaryGeofences(ctx, now).
				Return([]*entity.Geofence{failing, healthy}, nil)

			return fn(mockFactory)
		}).
		Once()

	// The first fence's ward lookup fails; it stays in place for the next
	// tick while the second fence is still processed.
	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(nil, errors.New("query timeout"))
	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0109876543").
		Return(&entity.User{Number: "0109876543", Name: "박길동"}, nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	fixtures.notificationUC.EXPECT().
		NotifySupporters(ctx, "0109876543", "⏰ 박길동님 일정 알림", "경로당에 시간 내 도착하지 않았습니다.", "geofence_expiry").
		Return(nil).
		Once()

	processed, err := fixtures.service.SweepExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}

func TestGeofenceExpiryService_SweepExpired_NotificationFailureStillCountsAsProcessed(t *testing.T) {
	fixtures := createTestExpiryService(t)

	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	geofence := expiredGeofence("0101234567", "병원", now.Add(-time.Hour))

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindExpiredTemporaryGeofences(ctx, now).
				Return([]*entity.Geofence{geofence}, nil)

			return fn(mockFactory)
		}).
		Once()

	fixtures.userRepo.EXPECT().
		FindUserByNumber(ctx, "0101234567").
		Return(&entity.User{Number: "0101234567", Name: "김순자"}, nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	// The log is already committed, so a failed fan-out must not undo the
	// sweep of this fence.
	fixtures.notificationUC.EXPECT().
		NotifySupporters(ctx, "0101234567", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable")).
		Once()

	processed, err := fixtures.service.SweepExpired(ctx, now)

	require.NoError(t, err)
	assert.Equal(t, 1, processed)
}
