package postgres

import (
	"context"
	"time"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// geofenceRepository implements the repository.GeofenceRepository interface.
type geofenceRepository struct {
	db *gorm.DB
}

// NewGeofenceRepository is the constructor for geofenceRepository.
func NewGeofenceRepository(db *gorm.DB) repository.GeofenceRepository {
	return &geofenceRepository{
		db: db,
	}
}

// CreateGeofence persists a new geofence for a ward.
func (repo *geofenceRepository) CreateGeofence(ctx context.Context, geofence *entity.Geofence) error {
	geofenceM := fromGeofenceDomain(geofence)

	if err := repo.db.WithContext(ctx).Create(geofenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create geofence")
	}

	geofence.ID = geofenceM.ID
	geofence.CreatedAt = geofenceM.CreatedAt
	geofence.UpdatedAt = geofenceM.UpdatedAt

	return nil
}

// FindGeofenceByID retrieves a geofence by its unique ID.
func (repo *geofenceRepository) FindGeofenceByID(ctx context.Context, id uuid.UUID) (*entity.Geofence, error) {
	var geofenceM model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&geofenceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGeofenceNotFound
		}

		return nil, errors.Wrap(err, "failed to find geofence by ID")
	}

	return toGeofenceDomain(&geofenceM), nil
}

// FindGeofencesByWard retrieves all geofences owned by a ward.
func (repo *geofenceRepository) FindGeofencesByWard(ctx context.Context, wardNumber string) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("ward_number = ?", wardNumber).
		Order("created_at DESC").
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find geofences by ward")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// FindExpiredTemporaryGeofences retrieves temporary geofences whose deadline
// passed before the given instant. Deleted rows no longer match, which is
// what makes re-running the expiry sweep idempotent.
func (repo *geofenceRepository) FindExpiredTemporaryGeofences(ctx context.Context, before time.Time) ([]*entity.Geofence, error) {
	var geofenceModels []*model.GeofenceModel

	if err := repo.db.WithContext(ctx).
		Where("type = ? AND end_time < ?", string(entity.GeofenceTypeTemporary), before).
		Find(&geofenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired temporary geofences")
	}

	geofences := make([]*entity.Geofence, 0, len(geofenceModels))
	for _, geofenceM := range geofenceModels {
		geofences = append(geofences, toGeofenceDomain(geofenceM))
	}

	return geofences, nil
}

// DeleteGeofence removes a geofence by its ID.
func (repo *geofenceRepository) DeleteGeofence(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GeofenceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete geofence")
	}

	if result.RowsAffected == 0 {
		return repository.ErrGeofenceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toGeofenceDomain converts a GORM GeofenceModel to a domain Geofence entity.
func toGeofenceDomain(data *model.GeofenceModel) *entity.Geofence {
	if data == nil {
		return nil
	}

	return &entity.Geofence{
		ID:           data.ID,
		WardNumber:   data.WardNumber,
		Name:         data.Name,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		Type:         entity.GeofenceType(data.Type),
		EndTime:      data.EndTime,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromGeofenceDomain converts a domain Geofence entity to a GORM GeofenceModel.
func fromGeofenceDomain(data *entity.Geofence) *model.GeofenceModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceModel{
		ID:           data.ID,
		WardNumber:   data.WardNumber,
		Name:         data.Name,
		Address:      data.Address,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		Type:         string(data.Type),
		EndTime:      data.EndTime,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
