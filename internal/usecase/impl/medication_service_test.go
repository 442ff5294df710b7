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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// medicationServiceFixtures holds all test dependencies for medication service tests.
type medicationServiceFixtures struct {
	service        usecase.MedicationUsecase
	medicationRepo *mockRepo.MockMedicationRepository
	linkRepo       *mockRepo.MockLinkRepository
}

func createTestMedicationService(t *testing.T) medicationServiceFixtures {
	medicationRepo := mockRepo.NewMockMedicationRepository(t)
	linkRepo := mockRepo.NewMockLinkRepository(t)
	service := NewMedicationService(medicationRepo, linkRepo, newDiscardLogger())

	return medicationServiceFixtures{
		service:        service,
		medicationRepo: medicationRepo,
		linkRepo:       linkRepo,
	}
}

func wardMedication(wardNumber, name string) *entity.Medication {
	return &entity.Medication{
		ID:         uuid.New(),
		WardNumber: wardNumber,
		Name:       name,
		Dosage:     "1정",
		Frequency:  "아침",
	}
}

func TestMedicationService_CreateMedication(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()

	fixtures.medicationRepo.EXPECT().
		CreateMedication(ctx, mock.AnythingOfType("*entity.Medication")).
		Return(nil)

	medication, err := fixtures.service.CreateMedication(ctx, "0101234567", &usecase.CreateMedicationInput{
		Name:      "혈압약",
		Dosage:    "1정",
		Purpose:   "고혈압",
		Frequency: "아침",
	})

	require.NoError(t, err)
	assert.Equal(t, "0101234567", medication.WardNumber)
	assert.Equal(t, "혈압약", medication.Name)
	assert.NotEqual(t, uuid.Nil, medication.ID)
}

func TestMedicationService_GetWardMedications_ChecksComeFromDailyLogs(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	checked := wardMedication("0101234567", "혈압약")
	unchecked := wardMedication("0101234567", "당뇨약")

	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0101111111").
		Return([]*entity.Link{supporterLink("0101234567", "0101111111")}, nil)

	fixtures.medicationRepo.EXPECT().
		FindMedicationsByWard(ctx, "0101234567").
		Return([]*entity.Medication{checked, unchecked}, nil)

	fixtures.medicationRepo.EXPECT().
		FindMedicationLog(ctx, checked.ID, date).
		Return(&entity.MedicationLog{ID: uuid.New(), MedicationID: checked.ID, CheckedDate: date}, nil)
	fixtures.medicationRepo.EXPECT().
		FindMedicationLog(ctx, unchecked.ID, date).
		Return(nil, nil)

	statuses, err := fixtures.service.GetWardMedications(ctx, "0101111111", "0101234567", date)

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].Checked)
	assert.False(t, statuses[1].Checked)
}

func TestMedicationService_GetWardMedications_UnlinkedCallerRejected(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()

	fixtures.linkRepo.EXPECT().
		FindLinksBySupporter(ctx, "0109999999").
		Return([]*entity.Link{}, nil)

	_, err := fixtures.service.GetWardMedications(ctx, "0109999999", "0101234567", time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestMedicationService_UpdateMedication_PartialUpdate(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	medication := wardMedication("0101234567", "혈압약")
	newDosage := "2정"

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)
	fixtures.medicationRepo.EXPECT().
		UpdateMedication(ctx, medication).
		Return(nil)

	updated, err := fixtures.service.UpdateMedication(ctx, "0101234567", medication.ID, &usecase.UpdateMedicationInput{
		Dosage: &newDosage,
	})

	require.NoError(t, err)
	assert.Equal(t, "혈압약", updated.Name)
	assert.Equal(t, "2정", updated.Dosage)
}

func TestMedicationService_UpdateMedication_NonOwnerRejected(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	medication := wardMedication("0101234567", "혈압약")

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)

	_, err := fixtures.service.UpdateMedication(ctx, "0101111111", medication.ID, &usecase.UpdateMedicationInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorizedAccess)
}

func TestMedicationService_CheckMedication_OwnerOnly(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	medication := wardMedication("0101234567", "혈압약")

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)

	// A linked supporter may read the schedule but never confirm a dose.
	err := fixtures.service.CheckMedication(ctx, "0101111111", medication.ID, time.Now())
	assert.ErrorIs(t, err, domainerrors.ErrMedicationCheckOwnerOnly)
}

func TestMedicationService_CheckMedication_DuplicateCheckRejected(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	medication := wardMedication("0101234567", "혈압약")

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)
	fixtures.medicationRepo.EXPECT().
		CreateMedicationLog(ctx, mock.AnythingOfType("*entity.MedicationLog")).
		Return(repository.ErrDuplicateMedicationLog)

	err := fixtures.service.CheckMedication(ctx, "0101234567", medication.ID, date)
	assert.ErrorIs(t, err, domainerrors.ErrMedicationAlreadyChecked)
}

func TestMedicationService_UncheckMedication(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	medication := wardMedication("0101234567", "혈압약")

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, medication.ID).
		Return(medication, nil)
	fixtures.medicationRepo.EXPECT().
		DeleteMedicationLog(ctx, medication.ID, date).
		Return(nil)

	err := fixtures.service.UncheckMedication(ctx, "0101234567", medication.ID, date)
	require.NoError(t, err)
}

func TestMedicationService_DeleteMedication_UnknownMedication(t *testing.T) {
	fixtures := createTestMedicationService(t)

	ctx := context.Background()
	id := uuid.New()

	fixtures.medicationRepo.EXPECT().
		FindMedicationByID(ctx, id).
		Return(nil, repository.ErrMedicationNotFound)

	err := fixtures.service.DeleteMedication(ctx, "0101234567", id)
	assert.ErrorIs(t, err, domainerrors.ErrMedicationNotFound)
}
