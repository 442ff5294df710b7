package postgres

import (
	"context"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// linkRepository implements the repository.LinkRepository interface.
type linkRepository struct {
	db *gorm.DB
}

// NewLinkRepository is the constructor for linkRepository.
func NewLinkRepository(db *gorm.DB) repository.LinkRepository {
	return &linkRepository{
		db: db,
	}
}

// CreateLink persists a new supporter->ward link.
func (repo *linkRepository) CreateLink(ctx context.Context, link *entity.Link) error {
	linkM := fromLinkDomain(link)

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLink
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to create link")
	}

	link.ID = linkM.ID
	link.CreatedAt = linkM.CreatedAt
	link.UpdatedAt = linkM.UpdatedAt

	return nil
}

// FindLinkByID retrieves a link by its unique ID.
func (repo *linkRepository) FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.Link, error) {
	var linkM model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&linkM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLinkNotFound
		}

		return nil, errors.Wrap(err, "failed to find link by ID")
	}

	return toLinkDomain(&linkM), nil
}

// FindLinksByWard retrieves all links pointing at a ward.
func (repo *linkRepository) FindLinksByWard(ctx context.Context, wardNumber string) ([]*entity.Link, error) {
	var linkModels []*model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("ward_number = ?", wardNumber).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find links by ward")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

// FindLinksBySupporter retrieves all links owned by a supporter.
func (repo *linkRepository) FindLinksBySupporter(ctx context.Context, supporterNumber string) ([]*entity.Link, error) {
	var linkModels []*model.LinkModel

	if err := repo.db.WithContext(ctx).
		Where("supporter_number = ?", supporterNumber).
		Order("created_at ASC").
		Find(&linkModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find links by supporter")
	}

	links := make([]*entity.Link, 0, len(linkModels))
	for _, linkM := range linkModels {
		links = append(links, toLinkDomain(linkM))
	}

	return links, nil
}

// ClearPrimary sets is_primary to false on every link of the ward.
func (repo *linkRepository) ClearPrimary(ctx context.Context, wardNumber string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("ward_number = ?", wardNumber).
		Update("is_primary", false).Error; err != nil {
		return errors.Wrap(err, "failed to clear primary links")
	}

	return nil
}

// MarkPrimary sets is_primary to true on the given link.
func (repo *linkRepository) MarkPrimary(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.LinkModel{}).
		Where("id = ?", id).
		Update("is_primary", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark primary link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// DeleteLink removes a link by its ID.
func (repo *linkRepository) DeleteLink(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LinkModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrLinkNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toLinkDomain converts a GORM LinkModel to a domain Link entity.
func toLinkDomain(data *model.LinkModel) *entity.Link {
	if data == nil {
		return nil
	}

	return &entity.Link{
		ID:              data.ID,
		SupporterNumber: data.SupporterNumber,
		WardNumber:      data.WardNumber,
		Relation:        data.Relation,
		IsPrimary:       data.IsPrimary,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromLinkDomain converts a domain Link entity to a GORM LinkModel.
func fromLinkDomain(data *entity.Link) *model.LinkModel {
	if data == nil {
		return nil
	}

	return &model.LinkModel{
		ID:              data.ID,
		SupporterNumber: data.SupporterNumber,
		WardNumber:      data.WardNumber,
		Relation:        data.Relation,
		IsPrimary:       data.IsPrimary,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
