package postgres

import (
	"context"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// deviceTokenRepository implements the repository.DeviceTokenRepository interface.
type deviceTokenRepository struct {
	db *gorm.DB
}

// NewDeviceTokenRepository is the constructor for deviceTokenRepository.
func NewDeviceTokenRepository(db *gorm.DB) repository.DeviceTokenRepository {
	return &deviceTokenRepository{
		db: db,
	}
}

// CreateDeviceToken persists a new device token.
func (repo *deviceTokenRepository) CreateDeviceToken(ctx context.Context, token *entity.DeviceToken) error {
	tokenM := fromDeviceTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDeviceToken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create device token")
	}

	token.ID = tokenM.ID
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt

	return nil
}

// UpdateDeviceToken rewrites an existing token row, keyed by its ID.
func (repo *deviceTokenRepository) UpdateDeviceToken(ctx context.Context, token *entity.DeviceToken) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceTokenModel{}).
		Where("id = ?", token.ID).
		Updates(map[string]any{
			"user_number": token.UserNumber,
			"device_type": token.DeviceType,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeviceTokenNotFound
	}

	return nil
}

// FindDeviceTokenByToken retrieves a token row by its token value.
func (repo *deviceTokenRepository) FindDeviceTokenByToken(ctx context.Context, token string) (*entity.DeviceToken, error) {
	var tokenM model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		First(&tokenM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDeviceTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find device token")
	}

	return toDeviceTokenDomain(&tokenM), nil
}

// FindDeviceTokensByUser retrieves all tokens registered by a user.
func (repo *deviceTokenRepository) FindDeviceTokensByUser(ctx context.Context, userNumber string) ([]*entity.DeviceToken, error) {
	var tokenModels []*model.DeviceTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_number = ?", userNumber).
		Order("created_at ASC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device tokens by user")
	}

	tokens := make([]*entity.DeviceToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toDeviceTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteDeviceTokenByToken removes a token by its value. Idempotent:
// deleting an unknown token affects zero rows and is not an error.
func (repo *deviceTokenRepository) DeleteDeviceTokenByToken(ctx context.Context, token string) error {
	if err := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeviceTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete device token")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceTokenDomain converts a GORM DeviceTokenModel to a domain DeviceToken entity.
func toDeviceTokenDomain(data *model.DeviceTokenModel) *entity.DeviceToken {
	if data == nil {
		return nil
	}

	return &entity.DeviceToken{
		ID:         data.ID,
		UserNumber: data.UserNumber,
		Token:      data.Token,
		DeviceType: data.DeviceType,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromDeviceTokenDomain converts a domain DeviceToken entity to a GORM DeviceTokenModel.
func fromDeviceTokenDomain(data *entity.DeviceToken) *model.DeviceTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeviceTokenModel{
		ID:         data.ID,
		UserNumber: data.UserNumber,
		Token:      data.Token,
		DeviceType: data.DeviceType,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
