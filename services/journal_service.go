package services

import (
	"context"
	"errors"
	"strings"

	"serenemind.app/configs/configslog"
	"serenemind.app/models"
	"serenemind.app/repositories"

	"go.uber.org/zap"
)

// JournalServiceError is the typed error for journal operations.
type JournalServiceError string

func (e JournalServiceError) Error() string { return string(e) }

const (
	ErrJournalEntryNotFound  JournalServiceError = "journal entry not found"
	ErrJournalTextRequired   JournalServiceError = "journal text is required"
	ErrJournalCreationFailed JournalServiceError = "journal entry could not be created"
	ErrJournalUpdateFailed   JournalServiceError = "journal entry could not be updated"
	ErrJournalDeletionFailed JournalServiceError = "journal entry could not be deleted"
)

// RecentEntryLimit caps how many entries the journal page shows.
const RecentEntryLimit = 5

// IJournalService handles journal entry operations.
type IJournalService interface {
	CreateEntry(ctx context.Context, text string) (*models.JournalEntry, error)
	GetRecentEntries(ctx context.Context) ([]models.JournalEntry, error)
	GetEntryByID(ctx context.Context, id uint) (*models.JournalEntry, error)
	UpdateEntry(ctx context.Context, id uint, text string) error
	DeleteEntry(ctx context.Context, id uint) error
}

// JournalService implements IJournalService.
type JournalService struct {
	repo repositories.IJournalRepository
}

// NewJournalService creates a JournalService on the shared repositories.
func NewJournalService() IJournalService {
	return &JournalService{repo: repositories.NewJournalRepository()}
}

// ValidateJournalText rejects empty journal text.
func ValidateJournalText(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrJournalTextRequired
	}
	return nil
}

// CreateEntry validates and stores a new journal entry.
func (s *JournalService) CreateEntry(ctx context.Context, text string) (*models.JournalEntry, error) {
	if err := ValidateJournalText(text); err != nil {
		return nil, err
	}
	entry := models.JournalEntry{Text: text}
	if err := s.repo.Create(ctx, &entry); err != nil {
		configslog.Log.Error("JournalService.CreateEntry failed", zap.Error(err))
		return nil, ErrJournalCreationFailed
	}
	return &entry, nil
}

// GetRecentEntries returns the five most recent entries, newest first.
func (s *JournalService) GetRecentEntries(ctx context.Context) ([]models.JournalEntry, error) {
	return s.repo.FindRecent(ctx, RecentEntryLimit)
}

// GetEntryByID fetches one entry or ErrJournalEntryNotFound.
func (s *JournalService) GetEntryByID(ctx context.Context, id uint) (*models.JournalEntry, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrJournalEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// UpdateEntry overwrites the entry text.
func (s *JournalService) UpdateEntry(ctx context.Context, id uint, text string) error {
	if err := ValidateJournalText(text); err != nil {
		return err
	}
	entry, err := s.GetEntryByID(ctx, id)
	if err != nil {
		return err
	}
	entry.Text = text
	if err := s.repo.Update(ctx, entry); err != nil {
		configslog.Log.Error("JournalService.UpdateEntry failed", zap.Uint("id", id), zap.Error(err))
		return ErrJournalUpdateFailed
	}
	return nil
}

// DeleteEntry removes the entry permanently. Deleting an id that no longer
// exists reports ErrJournalEntryNotFound.
func (s *JournalService) DeleteEntry(ctx context.Context, id uint) error {
	entry, err := s.GetEntryByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, entry); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrJournalEntryNotFound
		}
		configslog.Log.Error("JournalService.DeleteEntry failed", zap.Uint("id", id), zap.Error(err))
		return ErrJournalDeletionFailed
	}
	return nil
}

var _ IJournalService = (*JournalService)(nil)
