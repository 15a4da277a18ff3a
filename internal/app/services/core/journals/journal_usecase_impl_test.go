package journals

import (
	"context"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestJournalUsecase() (*journalUsecase, *mocks.JournalRepository, *mocks.EntryRepository) {
	journalRepo := new(mocks.JournalRepository)
	entryRepo := new(mocks.EntryRepository)
	return &journalUsecase{
		JournalRepository: journalRepo,
		EntryRepository:   entryRepo,
		Log:               zap.NewNop(),
	}, journalRepo, entryRepo
}

func TestCreateJournal(t *testing.T) {
	request := &requests.CreateJournal{UserID: 1, Title: "2024", Year: 2024, Color: "#ffffff"}

	t.Run("created", func(t *testing.T) {
		uc, journalRepo, _ := newTestJournalUsecase()
		journalRepo.On("FindByUserIDAndTitle", mock.Anything, int64(1), "2024").Return(nil, nil).Once()
		journalRepo.On("CreateJournal", mock.Anything, &models.Journal{UserID: 1, Title: "2024", Year: 2024, Color: "#ffffff"}).
			Return(&models.Journal{ID: 10, UserID: 1, Title: "2024", Year: 2024, Color: "#ffffff"}, nil).Once()

		journal, err := uc.CreateJournal(context.Background(), request)
		require.NoError(t, err)
		assert.Equal(t, int64(10), journal.ID)
	})

	t.Run("duplicate title", func(t *testing.T) {
		uc, journalRepo, _ := newTestJournalUsecase()
		journalRepo.On("FindByUserIDAndTitle", mock.Anything, int64(1), "2024").Return(&models.Journal{ID: 3, UserID: 1}, nil).Once()

		_, err := uc.CreateJournal(context.Background(), request)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
		assert.Equal(t, "A journal with this title already exists", customErr.ClientMessage)
		journalRepo.AssertNotCalled(t, "CreateJournal", mock.Anything, mock.Anything)
	})
}

func TestUpdateJournal(t *testing.T) {
	t.Run("same title skips conflict check", func(t *testing.T) {
		uc, journalRepo, _ := newTestJournalUsecase()
		journalRepo.On("FindByID", mock.Anything, int64(10)).Return(&models.Journal{ID: 10, UserID: 1, Title: "Travel", Year: 2023}, nil).Once()
		journalRepo.On("UpdateJournal", mock.Anything, mock.MatchedBy(func(j *models.Journal) bool {
			return j.ID == 10 && j.Year == 2024 && j.Color == "#a1b2c3"
		})).Return(&models.Journal{ID: 10, UserID: 1, Title: "travel", Year: 2024, Color: "#a1b2c3"}, nil).Once()

		journal, err := uc.UpdateJournal(context.Background(), &requests.UpdateJournal{UserID: 1, JournalID: 10, Title: "travel", Year: 2024, Color: "#a1b2c3"})
		require.NoError(t, err)
		assert.Equal(t, 2024, journal.Year)
		journalRepo.AssertNotCalled(t, "FindByUserIDAndTitle", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rename onto another journal", func(t *testing.T) {
		uc, journalRepo, _ := newTestJournalUsecase()
		journalRepo.On("FindByID", mock.Anything, int64(10)).Return(&models.Journal{ID: 10, UserID: 1, Title: "Travel"}, nil).Once()
		journalRepo.On("FindByUserIDAndTitle", mock.Anything, int64(1), "Work").Return(&models.Journal{ID: 11, UserID: 1, Title: "Work"}, nil).Once()

		_, err := uc.UpdateJournal(context.Background(), &requests.UpdateJournal{UserID: 1, JournalID: 10, Title: "Work", Year: 2024})
		assert.Equal(t, 400, exceptions.StatusCodeOf(err))
	})
}

func TestJournalOwnership(t *testing.T) {
	uc, journalRepo, _ := newTestJournalUsecase()
	journalRepo.On("FindByID", mock.Anything, int64(10)).Return(&models.Journal{ID: 10, UserID: 2}, nil)
	journalRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil)

	_, err := uc.FindJournalByID(context.Background(), &requests.FindJournalByID{UserID: 1, JournalID: 10})
	assert.Equal(t, 404, exceptions.StatusCodeOf(err), "foreign journal looks missing")

	_, err = uc.FindJournalByID(context.Background(), &requests.FindJournalByID{UserID: 1, JournalID: 99})
	assert.Equal(t, 404, exceptions.StatusCodeOf(err))

	err = uc.DeleteJournalByID(context.Background(), &requests.DeleteJournalByID{UserID: 1, JournalID: 10})
	assert.Equal(t, 404, exceptions.StatusCodeOf(err))
	journalRepo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestFindJournals(t *testing.T) {
	uc, journalRepo, _ := newTestJournalUsecase()
	journalRepo.On("FindByUserID", mock.Anything, int64(1)).Return([]models.Journal{}, nil).Once()

	journals, err := uc.FindJournals(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, journals)
	assert.Empty(t, journals)
}

func TestFindJournalEntries(t *testing.T) {
	uc, journalRepo, entryRepo := newTestJournalUsecase()
	journalRepo.On("FindByID", mock.Anything, int64(10)).Return(&models.Journal{ID: 10, UserID: 1}, nil).Once()
	entryRepo.On("FindByFilter", mock.Anything, mock.MatchedBy(func(f *models.EntryFilter) bool {
		return f.UserID == 1 && f.JournalID != nil && *f.JournalID == 10
	})).Return([]models.Entry{{ID: 1, JournalID: 10}, {ID: 2, JournalID: 10}}, nil).Once()

	entries, err := uc.FindJournalEntries(context.Background(), &requests.FindJournalEntries{UserID: 1, JournalID: 10})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
