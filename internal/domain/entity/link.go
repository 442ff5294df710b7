// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Link is the directed subscription edge supporter -> ward. A supporter
// holding a link receives push notifications about the ward. At most one
// link among a ward's links may be primary at any time.
type Link struct {
	ID              uuid.UUID `json:"id"`
	SupporterNumber string    `json:"supporter_number"` // Phone number of the subscribing supporter.
	WardNumber      string    `json:"ward_number"`      // Phone number of the monitored ward.
	Relation        string    `json:"relation"`         // Free-form relation label, e.g. "딸", "요양보호사".
	IsPrimary       bool      `json:"is_primary"`       // Marks the ward's primary supporter.
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
