package repository

import (
	"context"
	"time"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for medication persistence.
var (
	// ErrMedicationNotFound is returned when a medication is not found.
	ErrMedicationNotFound = errors.New("medication not found")
	// ErrDuplicateMedicationLog is returned when a medication is checked
	// twice for the same date.
	ErrDuplicateMedicationLog = errors.New("medication already checked for this date")
)

// MedicationRepository defines the interface for medication-related operations.
type MedicationRepository interface {
	// CreateMedication persists a new medication for a ward.
	CreateMedication(ctx context.Context, medication *entity.Medication) error

	// FindMedicationByID retrieves a medication by its unique ID.
	FindMedicationByID(ctx context.Context, id uuid.UUID) (*entity.Medication, error)

	// FindMedicationsByWard retrieves all medications of a ward.
	FindMedicationsByWard(ctx context.Context, wardNumber string) ([]*entity.Medication, error)

	// UpdateMedication rewrites a medication's mutable fields.
	UpdateMedication(ctx context.Context, medication *entity.Medication) error

	// DeleteMedication removes a medication and its logs by ID.
	DeleteMedication(ctx context.Context, id uuid.UUID) error

	// CreateMedicationLog marks the medication as taken on the given date.
	CreateMedicationLog(ctx context.Context, log *entity.MedicationLog) error

	// FindMedicationLog retrieves the check log for a medication and date,
	// if one exists.
	FindMedicationLog(ctx context.Context, medicationID uuid.UUID, date time.Time) (*entity.MedicationLog, error)

	// DeleteMedicationLog removes the check log for a medication and date.
	DeleteMedicationLog(ctx context.Context, medicationID uuid.UUID, date time.Time) error
}
