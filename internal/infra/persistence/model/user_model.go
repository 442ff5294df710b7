// Package model contains the GORM-specific structs that map domain entities
// to database tables.
package model

import (
	"time"

	"gorm.io/gorm"
)

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	Number    string `gorm:"type:varchar(20);primary_key"`
	Name      string `gorm:"type:varchar(100);not null"`
	LinkCode  string `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
