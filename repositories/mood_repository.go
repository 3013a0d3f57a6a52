package repositories

import (
	"context"

	"serenemind.app/configs"
	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IMoodRepository is the database contract for mood logs.
type IMoodRepository interface {
	Create(ctx context.Context, log *models.MoodLog) error
	FindRecent(ctx context.Context, limit int) ([]models.MoodLog, error)
	FindByID(ctx context.Context, id uint) (*models.MoodLog, error)
	Update(ctx context.Context, log *models.MoodLog) error
	Delete(ctx context.Context, log *models.MoodLog) error
	Count(ctx context.Context) (int64, error)
}

// MoodRepository implements IMoodRepository on GORM.
type MoodRepository struct {
	*BaseRepository[models.MoodLog]
	db *gorm.DB
}

// NewMoodRepository creates a MoodRepository on the shared connection.
func NewMoodRepository() IMoodRepository {
	return NewMoodRepositoryDB(configs.GetDB())
}

// NewMoodRepositoryDB creates a MoodRepository bound to an explicit handle.
func NewMoodRepositoryDB(db *gorm.DB) IMoodRepository {
	return &MoodRepository{
		BaseRepository: NewBaseRepository[models.MoodLog](db),
		db:             db,
	}
}

// FindRecent returns the newest mood logs first, at most limit rows.
func (r *MoodRepository) FindRecent(ctx context.Context, limit int) ([]models.MoodLog, error) {
	var logs []models.MoodLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		configslog.Log.Error("MoodRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return logs, nil
}

var _ IMoodRepository = (*MoodRepository)(nil)
