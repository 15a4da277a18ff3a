package users

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type userFixture struct {
	users    *mocks.UserRepository
	journals *mocks.JournalRepository
	entries  *mocks.EntryRepository
	sessions *mocks.SessionService
	mailer   *mocks.MailerService
	storage  *mocks.Storage
	usecase  *userUsecase
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:    new(mocks.UserRepository),
		journals: new(mocks.JournalRepository),
		entries:  new(mocks.EntryRepository),
		sessions: new(mocks.SessionService),
		mailer:   new(mocks.MailerService),
		storage:  new(mocks.Storage),
	}
	f.usecase = &userUsecase{
		UserRepository:    f.users,
		JournalRepository: f.journals,
		EntryRepository:   f.entries,
		SessionService:    f.sessions,
		MailerService:     f.mailer,
		Storage:           f.storage,
		InternalConfig: &config.InternalConfig{
			App:    config.App{Timezone: "UTC"},
			Export: config.AppExport{BucketName: "exports", URLExpiryInMinutes: 15},
		},
		Log: zap.NewNop(),
	}
	return f
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("FindByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Username: "alice", Email: "a@example.com"}, nil).Once()

		profile, err := f.usecase.GetProfile(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "alice", profile.Username)
	})

	t.Run("missing", func(t *testing.T) {
		f := newUserFixture()
		f.users.On("FindByID", mock.Anything, int64(1)).Return(nil, nil).Once()

		_, err := f.usecase.GetProfile(context.Background(), 1)
		assert.Equal(t, 404, exceptions.StatusCodeOf(err))
	})
}

func TestGetStats(t *testing.T) {
	t.Run("aggregates counts and streaks", func(t *testing.T) {
		f := newUserFixture()
		now := time.Now().UTC()
		times := []time.Time{
			now.AddDate(0, 0, -5),
			now.AddDate(0, 0, -4),
			now.AddDate(0, 0, -3),
			now.AddDate(0, 0, -1),
			now,
		}
		f.journals.On("CountByUserID", mock.Anything, int64(1)).Return(int64(2), nil).Once()
		f.entries.On("CountByUserID", mock.Anything, int64(1)).Return(int64(5), nil).Once()
		f.entries.On("FindEntryTimesByUserID", mock.Anything, int64(1), (*time.Time)(nil), (*time.Time)(nil)).Return(times, nil).Once()

		stats, err := f.usecase.GetStats(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, &responses.UserStats{JournalCount: 2, EntryCount: 5, LongestStreak: 3, CurrentStreak: 2}, stats)
	})

	t.Run("query failure", func(t *testing.T) {
		f := newUserFixture()
		f.journals.On("CountByUserID", mock.Anything, int64(1)).Return(int64(0), errors.New("db down")).Once()
		f.entries.On("CountByUserID", mock.Anything, int64(1)).Return(int64(0), nil).Maybe()
		f.entries.On("FindEntryTimesByUserID", mock.Anything, int64(1), mock.Anything, mock.Anything).Return([]time.Time{}, nil).Maybe()

		_, err := f.usecase.GetStats(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestDeleteUser(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Username: "alice", Email: "a@example.com"}, nil).Once()
	f.users.On("DeleteByID", mock.Anything, int64(1)).Return(nil).Once()
	f.sessions.On("DeleteUserSessions", mock.Anything, int64(1)).Return(3, nil).Once()
	f.mailer.On("SendEmail", mock.Anything, mock.MatchedBy(func(p *models.EmailPayload) bool {
		return p.To == "a@example.com"
	})).Return(errors.New("queue unavailable")).Once()

	err := f.usecase.DeleteUser(context.Background(), &requests.DeleteUser{UserID: 1})
	require.NoError(t, err)
	f.users.AssertExpectations(t)
	f.sessions.AssertExpectations(t)
	f.sessions.AssertNotCalled(t, "DeleteSession", mock.Anything, mock.Anything)
	f.mailer.AssertExpectations(t)
}

func TestExportUser(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindByID", mock.Anything, int64(1)).Return(&models.User{ID: 1, Username: "alice"}, nil).Once()
	f.journals.On("FindByUserID", mock.Anything, int64(1)).Return([]models.Journal{{ID: 3, UserID: 1, Title: "2024"}}, nil).Once()
	f.entries.On("FindByFilter", mock.Anything, &models.EntryFilter{UserID: 1}).
		Return([]models.Entry{{ID: 8, JournalID: 3, Title: "first", Moods: []models.Mood{{ID: 1, Score: 5}}}}, nil).Once()

	var uploaded []byte
	f.storage.On("UploadObject", mock.Anything, "exports", mock.MatchedBy(func(name string) bool {
		return strings.HasPrefix(name, "exports/1/")
	}), mock.Anything, "application/json").
		Run(func(args mock.Arguments) { uploaded = args.Get(3).([]byte) }).
		Return("exports/1/x.json", nil).Once()
	f.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "exports", mock.Anything, 15*time.Minute).
		Return("https://minio.local/exports/1/x.json?sig=1", nil).Once()

	result, err := f.usecase.ExportUser(context.Background(), &requests.ExportUser{UserID: 1})
	require.NoError(t, err)
	assert.Contains(t, result.URL, "sig=1")

	var document responses.UserExportDocument
	require.NoError(t, json.Unmarshal(uploaded, &document))
	assert.Equal(t, "alice", document.Profile.Username)
	require.Len(t, document.Entries, 1)
	assert.Equal(t, "first", document.Entries[0].Title)
	f.storage.AssertExpectations(t)
}
