package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// GORM translates PostgreSQL constraint failures into its own sentinel
// errors. Repositories use these checks to map constraint failures onto
// domain repository errors instead of leaking driver errors upward.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
