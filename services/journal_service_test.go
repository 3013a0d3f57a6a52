package services

import (
	"context"
	"sort"
	"testing"
	"time"

	"serenemind.app/models"
	"serenemind.app/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJournalRepo struct {
	entries map[uint]models.JournalEntry
	nextID  uint
}

func newFakeJournalRepo() *fakeJournalRepo {
	return &fakeJournalRepo{entries: map[uint]models.JournalEntry{}}
}

func (r *fakeJournalRepo) Create(ctx context.Context, entry *models.JournalEntry) error {
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now().Add(time.Duration(r.nextID) * time.Second)
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeJournalRepo) FindRecent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	all := make([]models.JournalEntry, 0, len(r.entries))
	for _, e := range r.entries {
		all = append(all, e)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeJournalRepo) FindByID(ctx context.Context, id uint) (*models.JournalEntry, error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &e, nil
}

func (r *fakeJournalRepo) Update(ctx context.Context, entry *models.JournalEntry) error {
	r.entries[entry.ID] = *entry
	return nil
}

func (r *fakeJournalRepo) Delete(ctx context.Context, entry *models.JournalEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.entries, entry.ID)
	return nil
}

func (r *fakeJournalRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.entries)), nil
}

func TestCreateEntryIncreasesCountAndKeepsText(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := &JournalService{repo: repo}

	entry, err := svc.CreateEntry(context.Background(), "Feeling better today")

	require.NoError(t, err)
	assert.Equal(t, "Feeling better today", entry.Text)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(1), count)
}

func TestCreateEntryRejectsEmptyText(t *testing.T) {
	svc := &JournalService{repo: newFakeJournalRepo()}

	_, err := svc.CreateEntry(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrJournalTextRequired)
}

func TestGetRecentEntriesNewestFirstCappedAtFive(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := &JournalService{repo: repo}
	texts := []string{"one", "two", "three", "four", "five", "Feeling better today"}
	for _, text := range texts {
		_, err := svc.CreateEntry(context.Background(), text)
		require.NoError(t, err)
	}

	entries, err := svc.GetRecentEntries(context.Background())

	require.NoError(t, err)
	require.Len(t, entries, RecentEntryLimit)
	assert.Equal(t, "Feeling better today", entries[0].Text)
	assert.Equal(t, "two", entries[4].Text)
}

func TestUpdateEntryOverwritesText(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := &JournalService{repo: repo}
	entry, _ := svc.CreateEntry(context.Background(), "draft")

	require.NoError(t, svc.UpdateEntry(context.Background(), entry.ID, "final"))

	stored, err := svc.GetEntryByID(context.Background(), entry.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", stored.Text)
}

func TestUpdateEntryUnknownIDIsNotFound(t *testing.T) {
	svc := &JournalService{repo: newFakeJournalRepo()}

	err := svc.UpdateEntry(context.Background(), 42, "anything")

	assert.ErrorIs(t, err, ErrJournalEntryNotFound)
}

func TestDeleteEntryTwiceIsNotFound(t *testing.T) {
	repo := newFakeJournalRepo()
	svc := &JournalService{repo: repo}
	entry, _ := svc.CreateEntry(context.Background(), "to delete")

	require.NoError(t, svc.DeleteEntry(context.Background(), entry.ID))
	err := svc.DeleteEntry(context.Background(), entry.ID)

	assert.ErrorIs(t, err, ErrJournalEntryNotFound)
	count, _ := repo.Count(context.Background())
	assert.Equal(t, int64(0), count)
}
