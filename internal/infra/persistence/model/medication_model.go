package model

import (
	"time"

	"github.com/google/uuid"
)

// MedicationModel is the GORM-specific struct for the 'medications' table.
type MedicationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WardNumber string    `gorm:"type:varchar(20);not null;index"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Dosage     string    `gorm:"type:varchar(50);not null"`
	Purpose    string    `gorm:"type:varchar(100);not null"`
	Frequency  string    `gorm:"type:varchar(50);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MedicationModel) TableName() string {
	return "medications"
}

// MedicationLogModel is the GORM-specific struct for the 'medication_logs'
// table. The unique (medication_id, checked_date) index caps each day at
// one check per medication.
type MedicationLogModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MedicationID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_medication_logs_med_date"`
	CheckedDate  time.Time `gorm:"type:date;not null;uniqueIndex:idx_medication_logs_med_date"`
}

// TableName explicitly sets the table name for GORM.
func (MedicationLogModel) TableName() string {
	return "medication_logs"
}
