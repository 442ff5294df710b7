package postgres

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	t.Run("MatchesDuplicatedKey", func(t *testing.T) {
		assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	})

	t.Run("MatchesWrappedDuplicatedKey", func(t *testing.T) {
		err := errors.Wrap(gorm.ErrDuplicatedKey, "failed to create link")
		assert.True(t, isUniqueConstraintViolation(err))
	})

	t.Run("RejectsOtherErrors", func(t *testing.T) {
		assert.False(t, isUniqueConstraintViolation(gorm.ErrForeignKeyViolated))
		assert.False(t, isUniqueConstraintViolation(errors.New("connection refused")))
	})
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	t.Run("MatchesForeignKeyViolated", func(t *testing.T) {
		assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	})

	t.Run("MatchesWrappedForeignKeyViolated", func(t *testing.T) {
		err := errors.Wrap(gorm.ErrForeignKeyViolated, "failed to create geofence")
		assert.True(t, isForeignKeyConstraintViolation(err))
	})

	t.Run("RejectsOtherErrors", func(t *testing.T) {
		assert.False(t, isForeignKeyConstraintViolation(gorm.ErrDuplicatedKey))
		assert.False(t, isForeignKeyConstraintViolation(errors.New("connection refused")))
	})
}
