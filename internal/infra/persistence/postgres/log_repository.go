package postgres

import (
	"context"

	"fence/internal/domain/entity"
	"fence/internal/domain/repository"
	"fence/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// logRepository implements the repository.LogRepository interface.
type logRepository struct {
	db *gorm.DB
}

// NewLogRepository is the constructor for logRepository.
func NewLogRepository(db *gorm.DB) repository.LogRepository {
	return &logRepository{
		db: db,
	}
}

// CreateLog persists a new event log entry.
func (repo *logRepository) CreateLog(ctx context.Context, log *entity.Log) error {
	logM := fromLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create log")
	}

	log.ID = logM.ID

	return nil
}

// FindLogsByWard retrieves a ward's event logs, newest first.
func (repo *logRepository) FindLogsByWard(ctx context.Context, wardNumber string) ([]*entity.Log, error) {
	var logModels []*model.LogModel

	if err := repo.db.WithContext(ctx).
		Where("ward_number = ?", wardNumber).
		Order("occurred_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find logs by ward")
	}

	logs := make([]*entity.Log, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toLogDomain converts a GORM LogModel to a domain Log entity.
func toLogDomain(data *model.LogModel) *entity.Log {
	if data == nil {
		return nil
	}

	return &entity.Log{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Label:      data.Label,
		Address:    data.Address,
		OccurredAt: data.OccurredAt,
	}
}

// fromLogDomain converts a domain Log entity to a GORM LogModel.
func fromLogDomain(data *entity.Log) *model.LogModel {
	if data == nil {
		return nil
	}

	return &model.LogModel{
		ID:         data.ID,
		WardNumber: data.WardNumber,
		Label:      data.Label,
		Address:    data.Address,
		OccurredAt: data.OccurredAt,
	}
}
