// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a medicine a ward takes on a schedule. Supporters linked
// to the ward may view it; only the ward themselves checks doses off.
type Medication struct {
	ID         uuid.UUID `json:"id"`
	WardNumber string    `json:"ward_number"`
	Name       string    `json:"name"`      // e.g. "혈압약"
	Dosage     string    `json:"dosage"`    // e.g. "1정", "10ml"
	Purpose    string    `json:"purpose"`   // e.g. "혈압 조절"
	Frequency  string    `json:"frequency"` // e.g. "하루 3회"
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MedicationLog marks a medication as taken on a calendar date. At most
// one log exists per (medication, date).
type MedicationLog struct {
	ID           uuid.UUID `json:"id"`
	MedicationID uuid.UUID `json:"medication_id"`
	CheckedDate  time.Time `json:"checked_date"` // Date only; time-of-day is not meaningful.
}
