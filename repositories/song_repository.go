package repositories

import (
	"context"

	"serenemind.app/configs"
	"serenemind.app/models"

	"gorm.io/gorm"
)

// ISongRepository is the database contract for the curated music list.
type ISongRepository interface {
	Create(ctx context.Context, song *models.Song) error
	FindAll(ctx context.Context) ([]models.Song, error)
	FindByID(ctx context.Context, id uint) (*models.Song, error)
	Update(ctx context.Context, song *models.Song) error
	Delete(ctx context.Context, song *models.Song) error
}

// SongRepository implements ISongRepository on GORM.
type SongRepository struct {
	*BaseRepository[models.Song]
}

// NewSongRepository creates a SongRepository on the shared connection.
func NewSongRepository() ISongRepository {
	return NewSongRepositoryDB(configs.GetDB())
}

// NewSongRepositoryDB creates a SongRepository bound to an explicit handle.
func NewSongRepositoryDB(db *gorm.DB) ISongRepository {
	return &SongRepository{BaseRepository: NewBaseRepository[models.Song](db)}
}

var _ ISongRepository = (*SongRepository)(nil)
