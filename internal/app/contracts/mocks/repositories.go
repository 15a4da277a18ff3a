package mocks

import (
	"context"
	"moodjournal-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*models.User)
	return created, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindByGoogleSub(ctx context.Context, googleSub string) (*models.User, error) {
	args := m.Called(ctx, googleSub)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) LinkGoogleSub(ctx context.Context, userID int64, googleSub string) error {
	return m.Called(ctx, userID, googleSub).Error(0)
}

func (m *UserRepository) DeleteByID(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type JournalRepository struct{ mock.Mock }

func (m *JournalRepository) CreateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	args := m.Called(ctx, journal)
	created, _ := args.Get(0).(*models.Journal)
	return created, args.Error(1)
}

func (m *JournalRepository) FindByID(ctx context.Context, journalID int64) (*models.Journal, error) {
	args := m.Called(ctx, journalID)
	journal, _ := args.Get(0).(*models.Journal)
	return journal, args.Error(1)
}

func (m *JournalRepository) FindByUserID(ctx context.Context, userID int64) ([]models.Journal, error) {
	args := m.Called(ctx, userID)
	journals, _ := args.Get(0).([]models.Journal)
	return journals, args.Error(1)
}

func (m *JournalRepository) FindByUserIDAndTitle(ctx context.Context, userID int64, title string) (*models.Journal, error) {
	args := m.Called(ctx, userID, title)
	journal, _ := args.Get(0).(*models.Journal)
	return journal, args.Error(1)
}

func (m *JournalRepository) UpdateJournal(ctx context.Context, journal *models.Journal) (*models.Journal, error) {
	args := m.Called(ctx, journal)
	updated, _ := args.Get(0).(*models.Journal)
	return updated, args.Error(1)
}

func (m *JournalRepository) DeleteByID(ctx context.Context, journalID int64) error {
	return m.Called(ctx, journalID).Error(0)
}

func (m *JournalRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type EntryRepository struct{ mock.Mock }

func (m *EntryRepository) CreateEntry(ctx context.Context, entry *models.Entry, moodIDs []int64) (*models.Entry, error) {
	args := m.Called(ctx, entry, moodIDs)
	created, _ := args.Get(0).(*models.Entry)
	return created, args.Error(1)
}

func (m *EntryRepository) FindByID(ctx context.Context, entryID int64) (*models.Entry, error) {
	args := m.Called(ctx, entryID)
	entry, _ := args.Get(0).(*models.Entry)
	return entry, args.Error(1)
}

func (m *EntryRepository) FindByFilter(ctx context.Context, filter *models.EntryFilter) ([]models.Entry, error) {
	args := m.Called(ctx, filter)
	entries, _ := args.Get(0).([]models.Entry)
	return entries, args.Error(1)
}

func (m *EntryRepository) UpdateEntry(ctx context.Context, entryID int64, update *models.EntryUpdate) (*models.Entry, error) {
	args := m.Called(ctx, entryID, update)
	entry, _ := args.Get(0).(*models.Entry)
	return entry, args.Error(1)
}

func (m *EntryRepository) DeleteByID(ctx context.Context, entryID int64) error {
	return m.Called(ctx, entryID).Error(0)
}

func (m *EntryRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *EntryRepository) FindEntryTimesByUserID(ctx context.Context, userID int64, from, to *time.Time) ([]time.Time, error) {
	args := m.Called(ctx, userID, from, to)
	times, _ := args.Get(0).([]time.Time)
	return times, args.Error(1)
}

type MoodRepository struct{ mock.Mock }

func (m *MoodRepository) FindAll(ctx context.Context) ([]models.Mood, error) {
	args := m.Called(ctx)
	moods, _ := args.Get(0).([]models.Mood)
	return moods, args.Error(1)
}

func (m *MoodRepository) FindByIDs(ctx context.Context, moodIDs []int64) ([]models.Mood, error) {
	args := m.Called(ctx, moodIDs)
	moods, _ := args.Get(0).([]models.Mood)
	return moods, args.Error(1)
}

func (m *MoodRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MoodRepository) SeedMoods(ctx context.Context, moods []models.Mood) (int, error) {
	args := m.Called(ctx, moods)
	return args.Int(0), args.Error(1)
}

type OAuthStateRepository struct{ mock.Mock }

func (m *OAuthStateRepository) CreateState(ctx context.Context, state string, expiresAt time.Time) error {
	return m.Called(ctx, state, expiresAt).Error(0)
}

func (m *OAuthStateRepository) ConsumeState(ctx context.Context, state string, now time.Time) (bool, error) {
	args := m.Called(ctx, state, now)
	return args.Bool(0), args.Error(1)
}

func (m *OAuthStateRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}
