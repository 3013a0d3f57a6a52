package repositories

import (
	"context"

	"serenemind.app/configs"
	"serenemind.app/configs/configslog"
	"serenemind.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IJournalRepository is the database contract for journal entries.
type IJournalRepository interface {
	Create(ctx context.Context, entry *models.JournalEntry) error
	FindRecent(ctx context.Context, limit int) ([]models.JournalEntry, error)
	FindByID(ctx context.Context, id uint) (*models.JournalEntry, error)
	Update(ctx context.Context, entry *models.JournalEntry) error
	Delete(ctx context.Context, entry *models.JournalEntry) error
	Count(ctx context.Context) (int64, error)
}

// JournalRepository implements IJournalRepository on GORM.
type JournalRepository struct {
	*BaseRepository[models.JournalEntry]
	db *gorm.DB
}

// NewJournalRepository creates a JournalRepository on the shared connection.
func NewJournalRepository() IJournalRepository {
	return NewJournalRepositoryDB(configs.GetDB())
}

// NewJournalRepositoryDB creates a JournalRepository bound to an explicit handle.
func NewJournalRepositoryDB(db *gorm.DB) IJournalRepository {
	return &JournalRepository{
		BaseRepository: NewBaseRepository[models.JournalEntry](db),
		db:             db,
	}
}

// FindRecent returns the newest entries first, at most limit rows.
func (r *JournalRepository) FindRecent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		configslog.Log.Error("JournalRepository.FindRecent: DB error", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

var _ IJournalRepository = (*JournalRepository)(nil)
