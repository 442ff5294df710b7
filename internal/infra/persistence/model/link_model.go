package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel is the GORM-specific struct for the 'links' table.
// The (supporter_number, ward_number) pair is unique; the at-most-one-primary
// invariant per ward is enforced by the clear-then-set transaction in the
// link service, not by a constraint.
type LinkModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupporterNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_links_supporter_ward"`
	WardNumber      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_links_supporter_ward;index"`
	Relation        string    `gorm:"type:varchar(50);not null"`
	IsPrimary       bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}
