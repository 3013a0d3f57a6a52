package services

import (
	"context"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/repositories"

	"go.uber.org/zap"
)

// ISongService exposes the curated music list.
type ISongService interface {
	GetAllSongs(ctx context.Context) ([]models.Song, error)
}

// SongService implements ISongService.
type SongService struct {
	repo repositories.ISongRepository
}

// NewSongService creates a SongService on the shared repositories.
func NewSongService() ISongService {
	return &SongService{repo: repositories.NewSongRepository()}
}

// GetAllSongs returns the full playlist.
func (s *SongService) GetAllSongs(ctx context.Context) ([]models.Song, error) {
	songs, err := s.repo.FindAll(ctx)
	if err != nil {
		configslog.Log.Error("SongService.GetAllSongs failed", zap.Error(err))
		return nil, err
	}
	return songs, nil
}

var _ ISongService = (*SongService)(nil)
