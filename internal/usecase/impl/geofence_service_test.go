package impl

import (
	"context"
	"testing"
	"time"

	"fence/internal/domain/entity"
	domainerrors "fence/internal/domain/errors"
	"fence/internal/domain/repository"
	mockRepo "fence/internal/mocks/repository"
	mockUsecase "fence/internal/mocks/usecase"
	"fence/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// geofenceServiceFixtures holds all test dependencies for geofence service tests.
type geofenceServiceFixtures struct {
	service    usecase.GeofenceUsecase
	txManager  *mockRepo.MockTransactionManager
	linkRepo   *mockRepo.MockLinkRepository
	locationUC *mockUsecase.MockLocationUsecase
	entryUC    *mockUsecase.MockGeofenceEntryUsecase
}

func createTestGeofenceService(t *testing.T) geofenceServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	entryUC := mockUsecase.NewMockGeofenceEntryUsecase(t)
	service := NewGeofenceService(txManager, linkRepo, locationUC, entryUC, newTestConfig(), newDiscardLogger())

	return geofenceServiceFixtures{
		service:    service,
		txManager:  txManager,
		linkRepo:   linkRepo,
		locationUC: locationUC,
		entryUC:    entryUC,
	}
}

func TestGeofenceService_CreateGeofence_AppliesDefaultRadius(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(nil).
		Once()

	geofence, err := fixtures.service.CreateGeofence(ctx, "0101234567", &usecase.CreateGeofenceInput{
		Name:      "Home",
		Address:   "Seoul",
		Latitude:  37.5665,
		Longitude: 126.978,
		Type:      "home",
	})

	require.NoError(t, err)
	assert.Equal(t, "0101234567", geofence.WardNumber)
	assert.Equal(t, entity.GeofenceTypeHome, geofence.Type)
	assert.InDelta(t, 100, geofence.RadiusMeters, 1e-9)
	assert.Nil(t, geofence.EndTime)
}

func TestGeofenceService_CreateGeofence_UnknownTypeRejected(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	_, err := fixtures.service.CreateGeofence(context.Background(), "0101234567", &usecase.CreateGeofenceInput{
		Name: "Home",
		Type: "permanent",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestGeofenceService_CreateGeofence_TemporaryRequiresEndTime(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	_, err := fixtures.service.CreateGeofence(context.Background(), "0101234567", &usecase.CreateGeofenceInput{
		Name: "병원",
		Type: "temporary",
	})
	assert.ErrorIs(t, err, domainerrors.ErrGeofenceEndTimeRequired)
}

func TestGeofenceService_GetWardGeofences_SupporterAllowed(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()
	fences := []*entity.Geofence{homeGeofence("0101234567")}

	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0101111111").
		Return([]*entity.Link{supporterLink("0101234567", "0101111111")}, nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindGeofencesByWard(ctx, "0101234567").
				Return(fences, nil)

			return fn(mockFactory)
		}).
		Once()

	got, err := fixtures.service.GetWardGeofences(ctx, "0101111111", "0101234567")

	require.NoError(t, err)
	assert.Equal(t, fences, got)
}

func TestGeofenceService_GetWardGeofences_UnlinkedCallerRejected(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()

	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0109999999").
		Return([]*entity.Link{}, nil)

	_, err := fixtures.service.GetWardGeofences(ctx, "0109999999", "0101234567")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestGeofenceService_DeleteGeofence_OnlyOwnerMayDelete(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()
	geofence := homeGeofence("0101234567")

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindGeofenceByID(ctx, geofence.ID).
				Return(geofence, nil)

			return fn(mockFactory)
		}).
		Once()

	err := fixtures.service.DeleteGeofence(ctx, "0101111111", geofence.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestGeofenceService_ReportLocation_DispatchesEntryInsideFence(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()
	// The fence is centered on the reported position, the ward is inside.
	inside := homeGeofence("0101234567")
	// Roughly 1.1km north of the reported position, well outside 100m.
	outside := homeGeofence("0101234567")
	outside.Name = "공원"
	outside.Latitude = 37.5765

	input := &usecase.UpdateLocationInput{Latitude: 37.5665, Longitude: 126.978}
	record := &entity.LocationRecord{WardNumber: "0101234567", Latitude: input.Latitude, Longitude: input.Longitude}

	fixtures.locationUC.EXPECT().
		UpdateLocation(ctx, "0101234567", input).
		Return(record, nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindGeofencesByWard(ctx, "0101234567").
				Return([]*entity.Geofence{inside, outside}, nil)

			return fn(mockFactory)
		}).
		Once()

	fixtures.entryUC.EXPECT().
		HandleEntry(ctx, "0101234567", inside).
		Return(nil).
		Once()

	got, err := fixtures.service.ReportLocation(ctx, "0101234567", input)

	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestGeofenceService_ReportLocation_SkipsExpiredTemporaryFence(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()
	endTime := time.Now().Add(-time.Hour)
	expired := homeGeofence("0101234567")
	expired.Type = entity.GeofenceTypeTemporary
	expired.EndTime = &endTime

	input := &usecase.UpdateLocationInput{Latitude: expired.Latitude, Longitude: expired.Longitude}

	fixtures.locationUC.EXPECT().
		UpdateLocation(ctx, "0101234567", input).
		Return(&entity.LocationRecord{WardNumber: "0101234567"}, nil)

	// The ward stands inside the expired fence, but the sweeper owns it:
	// no entry may be dispatched.
	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindGeofencesByWard(ctx, "0101234567").
				Return([]*entity.Geofence{expired}, nil)

			return fn(mockFactory)
		}).
		Once()

	_, err := fixtures.service.ReportLocation(ctx, "0101234567", input)
	require.NoError(t, err)
}

func TestGeofenceService_ReportLocation_EntryFailureDoesNotLoseTheLocation(t *testing.T) {
	fixtures := createTestGeofenceService(t)

	ctx := context.Background()
	geofence := homeGeofence("0101234567")
	input := &usecase.UpdateLocationInput{Latitude: geofence.Latitude, Longitude: geofence.Longitude}
	record := &entity.LocationRecord{WardNumber: "0101234567"}

	fixtures.locationUC.EXPECT().
		UpdateLocation(ctx, "0101234567", input).
		Return(record, nil)

	fixtures.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockGeofenceRepo := mockRepo.NewMockGeofenceRepository(t)

			mockFactory.EXPECT().GeofenceRepo().Return(mockGeofenceRepo)
			mockGeofenceRepo.EXPECT().
				FindGeofencesByWard(ctx, "0101234567").
				Return([]*entity.Geofence{geofence}, nil)

			return fn(mockFactory)
		}).
		Once()

	fixtures.entryUC.EXPECT().
		HandleEntry(ctx, "0101234567", geofence).
		Return(errors.New("handler failed")).
		Once()

	got, err := fixtures.service.ReportLocation(ctx, "0101234567", input)

	require.NoError(t, err)
	assert.Equal(t, record, got)
}
