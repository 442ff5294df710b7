// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system. A user is identified by their
// phone number, which is also the key every other entity references.
// The same entity covers both roles: a ward (the monitored person) and
// a supporter (someone linked to a ward to receive alerts about them).
type User struct {
	Number    string    // Phone number, the primary identity of the user.
	Name      string    // Display name, used in notification templates.
	LinkCode  string    // Share code supporters use to link themselves to this user.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
