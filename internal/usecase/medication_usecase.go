package usecase

import (
	"context"
	"time"

	"fence/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMedicationInput represents the input for registering a medication
type CreateMedicationInput struct {
	Name      string `json:"name" validate:"required"`
	Dosage    string `json:"dosage" validate:"required"`
	Purpose   string `json:"purpose"`
	Frequency string `json:"frequency" validate:"required"`
}

// UpdateMedicationInput represents the input for updating a medication
type UpdateMedicationInput struct {
	Name      *string `json:"name,omitempty"`
	Dosage    *string `json:"dosage,omitempty"`
	Purpose   *string `json:"purpose,omitempty"`
	Frequency *string `json:"frequency,omitempty"`
}

// MedicationStatus pairs a medication with its check state for one date
type MedicationStatus struct {
	Medication *entity.Medication `json:"medication"`
	Checked    bool               `json:"checked"`
}

// MedicationUsecase defines the interface for medication management use cases.
// Linked supporters may view a ward's medications; only the ward themselves
// checks doses off.
type MedicationUsecase interface {
	// CreateMedication registers a medication for the ward.
	CreateMedication(ctx context.Context, wardNumber string, input *CreateMedicationInput) (*entity.Medication, error)

	// GetWardMedications retrieves a ward's medications with their check
	// state for the given date. The caller must be the ward or a linked
	// supporter.
	GetWardMedications(ctx context.Context, callerNumber, wardNumber string, date time.Time) ([]*MedicationStatus, error)

	// UpdateMedication rewrites a medication's mutable fields. Only the
	// owning ward may update it.
	UpdateMedication(ctx context.Context, callerNumber string, id uuid.UUID, input *UpdateMedicationInput) (*entity.Medication, error)

	// DeleteMedication removes a medication and its check logs. Only the
	// owning ward may delete it.
	DeleteMedication(ctx context.Context, callerNumber string, id uuid.UUID) error

	// CheckMedication marks the medication as taken on the given date. At
	// most one check exists per date.
	CheckMedication(ctx context.Context, callerNumber string, id uuid.UUID, date time.Time) error

	// UncheckMedication removes the check for the given date.
	UncheckMedication(ctx context.Context, callerNumber string, id uuid.UUID, date time.Time) error
}
