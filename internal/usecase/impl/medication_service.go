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

// medicationService implements the MedicationUsecase interface.
type medicationService struct {
	medicationRepo repository.MedicationRepository
	linkRepo       repository.LinkRepository
	logger         *slog.Logger
}

// NewMedicationService is the constructor for medicationService.
func NewMedicationService(
	medicationRepo repository.MedicationRepository,
	linkRepo repository.LinkRepository,
	logger *slog.Logger,
) usecase.MedicationUsecase {
	return &medicationService{
		medicationRepo: medicationRepo,
		linkRepo:       linkRepo,
		logger:         logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *medicationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMedication registers a medication for the ward.
func (srv *medicationService) CreateMedication(ctx context.Context, wardNumber string, input *usecase.CreateMedicationInput) (*entity.Medication, error) {
	medication := &entity.Medication{
		ID:         uuid.New(),
		WardNumber: wardNumber,
		Name:       input.Name,
		Dosage:     input.Dosage,
		Purpose:    input.Purpose,
		Frequency:  input.Frequency,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := srv.medicationRepo.CreateMedication(ctx, medication); err != nil {
		return nil, errors.Wrap(err, "failed to create medication")
	}

	srv.log(ctx).Info("Medication created",
		slog.String("ward_number", wardNumber),
		slog.String("name", medication.Name))

	return medication, nil
}

// GetWardMedications retrieves a ward's medications with their check state
// for the given date.
func (srv *medicationService) GetWardMedications(ctx context.Context, callerNumber, wardNumber string, date time.Time) ([]*usecase.MedicationStatus, error) {
	allowed, err := canAccessWard(ctx, srv.linkRepo, callerNumber, wardNumber)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller is not linked to ward")
	}

	medications, err := srv.medicationRepo.FindMedicationsByWard(ctx, wardNumber)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find medications by ward")
	}

	statuses := make([]*usecase.MedicationStatus, 0, len(medications))
	for _, medication := range medications {
		log, err := srv.medicationRepo.FindMedicationLog(ctx, medication.ID, date)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find medication log")
		}

		statuses = append(statuses, &usecase.MedicationStatus{
			Medication: medication,
			Checked:    log != nil,
		})
	}

	return statuses, nil
}

// UpdateMedication rewrites a medication's mutable fields.
func (srv *medicationService) UpdateMedication(ctx context.Context, callerNumber string, id uuid.UUID, input *usecase.UpdateMedicationInput) (*entity.Medication, error) {
	medication, err := srv.findOwnedMedication(ctx, callerNumber, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		medication.Name = *input.Name
	}
	if input.Dosage != nil {
		medication.Dosage = *input.Dosage
	}
	if input.Purpose != nil {
		medication.Purpose = *input.Purpose
	}
	if input.Frequency != nil {
		medication.Frequency = *input.Frequency
	}
	medication.UpdatedAt = time.Now()

	if err := srv.medicationRepo.UpdateMedication(ctx, medication); err != nil {
		return nil, errors.Wrap(err, "failed to update medication")
	}

	return medication, nil
}

// DeleteMedication removes a medication and its check logs.
func (srv *medicationService) DeleteMedication(ctx context.Context, callerNumber string, id uuid.UUID) error {
	if _, err := srv.findOwnedMedication(ctx, callerNumber, id); err != nil {
		return err
	}

	if err := srv.medicationRepo.DeleteMedication(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete medication")
	}

	srv.log(ctx).Info("Medication deleted", slog.String("caller", callerNumber), slog.Any("medication_id", id))

	return nil
}

// CheckMedication marks the medication as taken on the given date.
func (srv *medicationService) CheckMedication(ctx context.Context, callerNumber string, id uuid.UUID, date time.Time) error {
	medication, err := srv.findMedication(ctx, id)
	if err != nil {
		return err
	}

	// Supporters see the schedule but only the ward confirms a dose.
	if medication.WardNumber != callerNumber {
		return errors.Wrap(domainerrors.ErrMedicationCheckOwnerOnly, "caller does not own medication")
	}

	log := &entity.MedicationLog{
		ID:           uuid.New(),
		MedicationID: id,
		CheckedDate:  date,
	}

	if err := srv.medicationRepo.CreateMedicationLog(ctx, log); err != nil {
		if errors.Is(err, repository.ErrDuplicateMedicationLog) {
			return errors.Wrap(domainerrors.ErrMedicationAlreadyChecked, "already checked for date")
		}

		return errors.Wrap(err, "failed to create medication log")
	}

	return nil
}

// UncheckMedication removes the check for the given date.
func (srv *medicationService) UncheckMedication(ctx context.Context, callerNumber string, id uuid.UUID, date time.Time) error {
	medication, err := srv.findMedication(ctx, id)
	if err != nil {
		return err
	}

	if medication.WardNumber != callerNumber {
		return errors.Wrap(domainerrors.ErrMedicationCheckOwnerOnly, "caller does not own medication")
	}

	if err := srv.medicationRepo.DeleteMedicationLog(ctx, id, date); err != nil {
		return errors.Wrap(err, "failed to delete medication log")
	}

	return nil
}

func (srv *medicationService) findMedication(ctx context.Context, id uuid.UUID) (*entity.Medication, error) {
	medication, err := srv.medicationRepo.FindMedicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMedicationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrMedicationNotFound, "medication not found")
		}

		return nil, errors.Wrap(err, "failed to find medication")
	}

	return medication, nil
}

func (srv *medicationService) findOwnedMedication(ctx context.Context, callerNumber string, id uuid.UUID) (*entity.Medication, error) {
	medication, err := srv.findMedication(ctx, id)
	if err != nil {
		return nil, err
	}

	if medication.WardNumber != callerNumber {
		return nil, errors.Wrap(domainerrors.ErrUnauthorizedAccess, "caller does not own medication")
	}

	return medication, nil
}
