package impl

import (
	"context"
	"testing"
	"time"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	"fence/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service   usecase.LocationUsecase
	txManager *mockRepo.MockTransactionManager
	linkRepo  *mockRepo.MockLinkRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	service := NewLocationService(txManager, linkRepo, newDiscardLogger())

	return locationServiceFixtures{
		service:   service,
		txManager: txManager,
		linkRepo:  linkRepo,
	}
}

func TestLocationService_UpdateLocation_WritesThrough(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()
	var saved *entity.UserLocation

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().
				SaveLocation(ctx, mock.AnythingOfType("*entity.UserLocation")).
				Run(func(ctx context.Context, location *entity.UserLocation) {
					saved = location
				}).
				Return(nil)

			return fn(mockFactory)
		}).
		Once()

	record, err := fixtures.service.UpdateLocation(ctx, "0101234567", &usecase.UpdateLocationInput{
		Latitude:  37.5665,
		Longitude: 126.978,
	})

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "0101234567", record.WardNumber)
	assert.InDelta(t, 37.5665, record.Latitude, 1e-9)
	assert.InDelta(t, 126.978, record.Longitude, 1e-9)
	assert.Equal(t, saved.SavedAt.UTC().UnixMilli(), record.TimestampMillis)
}

func TestLocationService_UpdateLocation_StoreFailureSkipsCache(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(storeErr).
		Twice()

	_, err := fixtures.service.UpdateLocation(ctx, "0101234567", &usecase.UpdateLocationInput{
		Latitude:  37.5665,
		Longitude: 126.978,
	})
	require.Error(t, err)

	// The failed write must not leave a cached record behind, so the
	// follow-up read goes back to the store.
	_, err = fixtures.service.GetLatestLocation(ctx, "0101234567", "0101234567")
	require.Error(t, err)
}

func TestLocationService_GetLatestLocation_CacheHitSkipsStore(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	// One write populates the cache. Execute is expected exactly once, so
	// any read that reaches the store afterwards fails the test.
	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	updated, err := fixtures.service.UpdateLocation(ctx, "0101234567", &usecase.UpdateLocationInput{
		Latitude:  37.5665,
		Longitude: 126.978,
	})
	require.NoError(t, err)

	for range 3 {
		record, err := fixtures.service.GetLatestLocation(ctx, "0101234567", "0101234567")
		require.NoError(t, err)
		assert.Equal(t, updated, record)
	}
}

func TestLocationService_GetLatestLocation_MissReadsStoreOnceAndWarms(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()
	savedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	stored := &entity.UserLocation{
		ID:         uuid.New(),
		WardNumber: "0101234567",
		Latitude:   37.5665,
		Longitude:  126.978,
		SavedAt:    savedAt,
	}

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().
				FindLatestLocation(ctx, "0101234567").
				Return(stored, nil)

			return fn(mockFactory)
		}).
		Once()

	record, err := fixtures.service.GetLatestLocation(ctx, "0101234567", "0101234567")
	require.NoError(t, err)
	assert.Equal(t, savedAt.UnixMilli(), record.TimestampMillis)

	// Warmed: the second read is served without another store round trip.
	again, err := fixtures.service.GetLatestLocation(ctx, "0101234567", "0101234567")
	require.NoError(t, err)
	assert.Equal(t, record, again)
}

func TestLocationService_GetLatestLocation_AbsenceIsNotCached(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	// Both reads hit the store. A ward without a stored position stays a
	// cache miss until a position actually exists.
	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockLocationRepo := mockRepo.NewMockLocationRepository(t)

			mockFactory.EXPECT().LocationRepo().Return(mockLocationRepo)
			mockLocationRepo.EXPECT().
				FindLatestLocation(ctx, "0109999999").
				Return(nil, repository.ErrLocationNotFound)

			return fn(mockFactory)
		}).
		Times(2)

	for range 2 {
		_, err := fixtures.service.GetLatestLocation(ctx, "0109999999", "0109999999")
		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
	}

	// A genuine update after the misses must land and be served.
	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	updated, err := fixtures.service.UpdateLocation(ctx, "0109999999", &usecase.UpdateLocationInput{
		Latitude:  35.1796,
		Longitude: 129.0756,
	})
	require.NoError(t, err)

	record, err := fixtures.service.GetLatestLocation(ctx, "0109999999", "0109999999")
	require.NoError(t, err)
	assert.Equal(t, updated, record)
}

func TestLocationService_GetCachedLocation_MissNeverTouchesStore(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	// No Execute expectation is registered. A cache miss on the cache-only
	// read must report absence without a store round trip.
	_, err := fixtures.service.GetCachedLocation(ctx, "0101234567", "0101234567")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_GetCachedLocation_ServesCachedRecord(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	updated, err := fixtures.service.UpdateLocation(ctx, "0101234567", &usecase.UpdateLocationInput{
		Latitude:  37.5665,
		Longitude: 126.978,
	})
	require.NoError(t, err)

	record, err := fixtures.service.GetCachedLocation(ctx, "0101234567", "0101234567")
	require.NoError(t, err)
	assert.Equal(t, updated, record)
}

func TestLocationService_Reads_RejectUnlinkedCaller(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	// The caller has links, just none to this ward. Neither read may reach
	// the cache or the store, so no Execute expectation is registered.
	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0105550000").
		Return([]*entity.Link{
			{ID: uuid.New(), SupporterNumber: "0105550000", WardNumber: "0108887777"},
		}, nil).
		Twice()

	_, err := fixtures.service.GetLatestLocation(ctx, "0105550000", "0101234567")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)

	_, err = fixtures.service.GetCachedLocation(ctx, "0105550000", "0101234567")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestLocationService_GetLatestLocation_LinkedSupporterAllowed(t *testing.T) {
	fixtures := createTestLocationService(t)

	ctx := context.Background()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	updated, err := fixtures.service.UpdateLocation(ctx, "0101234567", &usecase.UpdateLocationInput{
		Latitude:  37.5665,
		Longitude: 126.978,
	})
	require.NoError(t, err)

	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0105550000").
		Return([]*entity.Link{
			{ID: uuid.New(), SupporterNumber: "0105550000", WardNumber: "0101234567"},
		}, nil).
		Once()

	record, err := fixtures.service.GetLatestLocation(ctx, "0105550000", "0101234567")
	require.NoError(t, err)
	assert.Equal(t, updated, record)
}
