package services

import (
	"context"
	"errors"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/repositories"

	"go.uber.org/zap"
)

// MoodServiceError is the typed error for mood log operations.
type MoodServiceError string

func (e MoodServiceError) Error() string { return string(e) }

const (
	ErrMoodLogNotFound    MoodServiceError = "mood log not found"
	ErrMoodInvalid        MoodServiceError = "mood must be one of: ecstatic, happy, neutral, sad, awful"
	ErrMoodCreationFailed MoodServiceError = "mood log could not be created"
	ErrMoodUpdateFailed   MoodServiceError = "mood log could not be updated"
	ErrMoodDeletionFailed MoodServiceError = "mood log could not be deleted"
)

// IMoodService handles mood log operations.
type IMoodService interface {
	CreateLog(ctx context.Context, mood models.Mood) (*models.MoodLog, error)
	GetRecentLogs(ctx context.Context) ([]models.MoodLog, error)
	GetLogByID(ctx context.Context, id uint) (*models.MoodLog, error)
	UpdateLog(ctx context.Context, id uint, mood models.Mood) error
	DeleteLog(ctx context.Context, id uint) error
}

// MoodService implements IMoodService.
type MoodService struct {
	repo repositories.IMoodRepository
}

// NewMoodService creates a MoodService on the shared repositories.
func NewMoodService() IMoodService {
	return &MoodService{repo: repositories.NewMoodRepository()}
}

// ValidateMood rejects values outside the fixed mood enumeration.
func ValidateMood(mood models.Mood) error {
	if !mood.IsValid() {
		return ErrMoodInvalid
	}
	return nil
}

// CreateLog validates and stores a new mood log.
func (s *MoodService) CreateLog(ctx context.Context, mood models.Mood) (*models.MoodLog, error) {
	if err := ValidateMood(mood); err != nil {
		return nil, err
	}
	log := models.MoodLog{Mood: mood}
	if err := s.repo.Create(ctx, &log); err != nil {
		configslog.Log.Error("MoodService.CreateLog failed", zap.Error(err))
		return nil, ErrMoodCreationFailed
	}
	return &log, nil
}

// GetRecentLogs returns the five most recent mood logs, newest first.
func (s *MoodService) GetRecentLogs(ctx context.Context) ([]models.MoodLog, error) {
	return s.repo.FindRecent(ctx, RecentEntryLimit)
}

// GetLogByID fetches one mood log or ErrMoodLogNotFound.
func (s *MoodService) GetLogByID(ctx context.Context, id uint) (*models.MoodLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMoodLogNotFound
		}
		return nil, err
	}
	return log, nil
}

// UpdateLog overwrites the mood value.
func (s *MoodService) UpdateLog(ctx context.Context, id uint, mood models.Mood) error {
	if err := ValidateMood(mood); err != nil {
		return err
	}
	log, err := s.GetLogByID(ctx, id)
	if err != nil {
		return err
	}
	log.Mood = mood
	if err := s.repo.Update(ctx, log); err != nil {
		configslog.Log.Error("MoodService.UpdateLog failed", zap.Uint("id", id), zap.Error(err))
		return ErrMoodUpdateFailed
	}
	return nil
}

// DeleteLog removes the mood log permanently.
func (s *MoodService) DeleteLog(ctx context.Context, id uint) error {
	log, err := s.GetLogByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, log); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMoodLogNotFound
		}
		configslog.Log.Error("MoodService.DeleteLog failed", zap.Uint("id", id), zap.Error(err))
		return ErrMoodDeletionFailed
	}
	return nil
}

var _ IMoodService = (*MoodService)(nil)
