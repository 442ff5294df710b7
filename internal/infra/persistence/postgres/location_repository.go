package postgres

import (
	"context"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// SaveLocation persists the ward's position. The ward_number unique index
// turns the write into an upsert: the previous position is replaced, no
// history accumulates.
func (repo *locationRepository) SaveLocation(ctx context.Context, location *entity.UserLocation) error {
	locationM := fromLocationDomain(location)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "ward_number"}},
			DoUpdates: clause.AssignmentColumns([]string{"latitude", "longitude", "saved_at"}),
		}).
		Create(locationM).Error; err != nil {
		return errors.Wrap(err, "failed to save location")
	}

	return nil
}

// FindLatestLocation retrieves the ward's most recently saved position.
func (repo *locationRepository) FindLatestLocation(ctx context.Context, wardNumber string) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	if err := repo.db.WithContext(ctx).
		Where("ward_number = ?", wardNumber).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest location")
	}

	return toLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

// toLocationDomain converts a GORM UserLocationModel to a domain UserLocation entity.
func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		SavedAt:    data.SavedAt,
	}
}

// fromLocationDomain converts a domain UserLocation entity to a GORM UserLocationModel.
func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		SavedAt:    data.SavedAt,
	}
}
