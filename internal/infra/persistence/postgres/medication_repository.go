package postgres

import (
	"context"
	"time"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// medicationRepository implements the repository.MedicationRepository interface.
type medicationRepository struct {
	db *gorm.DB
}

// NewMedicationRepository is the constructor for medicationRepository.
func NewMedicationRepository(db *gorm.DB) repository.MedicationRepository {
	return &medicationRepository{
		db: db,
	}
}

// CreateMedication persists a new medication for a ward.
func (repo *medicationRepository) CreateMedication(ctx context.Context, medication *entity.Medication) error {
	medicationM := fromMedicationDomain(medication)

	if err := repo.db.WithContext(ctx).Create(medicationM).Error; err != nil {
		return errors.Wrap(err, "failed to create medication")
	}

	medication.ID = medicationM.ID
	medication.CreatedAt = medicationM.CreatedAt
	medication.UpdatedAt = medicationM.UpdatedAt

	return nil
}

// FindMedicationByID retrieves a medication by its unique ID.
func (repo *medicationRepository) FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error) {
	var medicationM model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&medicationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMedicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find medication by ID")
	}

	return toMedicationDomain(&medicationM), nil
}

// FindMedicationsByWard retrieves all medications of a ward.
func (repo *medicationRepository) FindMedicationsByWard(ctx context.Context, wardNumber string) ([]*entity.Medication, error) {
	var medicationModels []*model.MedicationModel

	if err := repo.db.WithContext(ctx).
		Where("ward_number = ?", wardNumber).
		Order("created_at ASC").
		Find(&medicationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find medications by ward")
	}

	medications := make([]*entity.Medication, 0, len(medicationModels))
	for _, medicationM := range medicationModels {
		medications = append(medications, toMedicationDomain(medicationM))
	}

	return medications, nil
}

// UpdateMedication rewrites a medication's mutable fields.
func (repo *medicationRepository) UpdateMedication(ctx context.Context, medication *entity.Medication) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MedicationModel{}).
		Where("id = ?", medication.ID).
		Updates(map[string]any{
			"name":      medication.Name,
			"dosage":    medication.Dosage,
			"purpose":   medication.Purpose,
			"frequency": medication.Frequency,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update medication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

// DeleteMedication removes a medication and its logs by ID.
func (repo *medicationRepository) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	// Logs first, then the medication row itself.
	if err := repo.db.WithContext(ctx).
		Where("medication_id = ?", id).
		Delete(&model.MedicationLogModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete medication logs")
	}

	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.MedicationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete medication")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMedicationNotFound
	}

	return nil
}

// CreateMedicationLog marks the medication as taken on the given date.
func (repo *medicationRepository) CreateMedicationLog(ctx context.Context, log *entity.MedicationLog) error {
	logM := fromMedicationLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMedicationLog
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMedicationNotFound
		}

		return errors.Wrap(err, "failed to create medication log")
	}

	log.ID = logM.ID

	return nil
}

// FindMedicationLog retrieves the check log for a medication and date.
func (repo *medicationRepository) FindMedicationLog(ctx context.Context, medicationID uuid.UUID, date time.Time) (*entity.MedicationLog, error) {
	var logM model.MedicationLogModel

	if err := repo.db.WithContext(ctx).
		Where("medication_id = ? AND checked_date = ?", medicationID, date.Format(time.DateOnly)).
		First(&logM).Error; err != nil {
		// An absent log is a valid state, the dose was not checked that day.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find medication log")
	}

	return toMedicationLogDomain(&logM), nil
}

// DeleteMedicationLog removes the check log for a medication and date.
func (repo *medicationRepository) DeleteMedicationLog(ctx context.Context, medicationID uuid.UUID, date time.Time) error {
	if err := repo.db.WithContext(ctx).
		Where("medication_id = ? AND checked_date = ?", medicationID, date.Format(time.DateOnly)).
		Delete(&model.MedicationLogModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete medication log")
	}

	return nil
}

// --- Mapper Functions ---

// toMedicationDomain converts a GORM MedicationModel to a domain Medication entity.
func toMedicationDomain(data *model.MedicationModel) *entity.Medication {
	if data == nil {
		return nil
	}

	return &entity.Medication{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Name:       data.Name,
		Dosage:     data.Dosage,
		Purpose:    data.Purpose,
		Frequency:  data.Frequency,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromMedicationDomain converts a domain Medication entity to a GORM MedicationModel.
func fromMedicationDomain(data *entity.Medication) *model.MedicationModel {
	if data == nil {
		return nil
	}

	return &model.MedicationModel{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Name:       data.Name,
		Dosage:     data.Dosage,
		Purpose:    data.Purpose,
		Frequency:  data.Frequency,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// toMedicationLogDomain converts a GORM MedicationLogModel to a domain MedicationLog entity.
func toMedicationLogDomain(data *model.MedicationLogModel) *entity.MedicationLog {
	if data == nil {
		return nil
	}

	return &entity.MedicationLog{
		ID:           data.ID,
		MedicationID: data.MedicationID,
		CheckedDate:  data.CheckedDate,
	}
}

// fromMedicationLogDomain converts a domain MedicationLog entity to a GORM MedicationLogModel.
func fromMedicationLogDomain(data *entity.MedicationLog) *model.MedicationLogModel {
	if data == nil {
		return nil
	}

	return &model.MedicationLogModel{
		ID:           data.ID,
		MedicationID: data.MedicationID,
		CheckedDate:  data.CheckedDate,
	}
}
