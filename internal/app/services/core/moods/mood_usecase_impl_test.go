package moods

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const seedLockKey = "lock:mood-seed"

func newTestMoodUsecase() (*moodUsecase, *mocks.MoodRepository, *mocks.LockerService) {
	repo := new(mocks.MoodRepository)
	locker := new(mocks.LockerService)
	return &moodUsecase{MoodRepository: repo, LockerService: locker, Log: zap.NewNop()}, repo, locker
}

func TestSeedMoodsIfEmpty(t *testing.T) {
	t.Run("seeds empty table", func(t *testing.T) {
		uc, repo, locker := newTestMoodUsecase()
		locker.On("TryLock", mock.Anything, seedLockKey, seedLockTTL).Return(true, "owner", nil).Once()
		locker.On("Unlock", mock.Anything, seedLockKey, "owner").Return(nil).Once()
		repo.On("Count", mock.Anything).Return(int64(0), nil).Once()
		repo.On("SeedMoods", mock.Anything, models.DefaultMoods).Return(15, nil).Once()

		inserted, err := uc.SeedMoodsIfEmpty(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 15, inserted)
		locker.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("table already seeded", func(t *testing.T) {
		uc, repo, locker := newTestMoodUsecase()
		locker.On("TryLock", mock.Anything, seedLockKey, seedLockTTL).Return(true, "owner", nil).Once()
		locker.On("Unlock", mock.Anything, seedLockKey, "owner").Return(nil).Once()
		repo.On("Count", mock.Anything).Return(int64(15), nil).Once()

		inserted, err := uc.SeedMoodsIfEmpty(context.Background())
		require.NoError(t, err)
		assert.Zero(t, inserted)
		repo.AssertNotCalled(t, "SeedMoods", mock.Anything, mock.Anything)
	})

	t.Run("lock held by another replica", func(t *testing.T) {
		uc, repo, locker := newTestMoodUsecase()
		locker.On("TryLock", mock.Anything, seedLockKey, seedLockTTL).Return(false, "", nil).Once()

		inserted, err := uc.SeedMoodsIfEmpty(context.Background())
		require.NoError(t, err)
		assert.Zero(t, inserted)
		repo.AssertNotCalled(t, "Count", mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lock released on failure", func(t *testing.T) {
		uc, repo, locker := newTestMoodUsecase()
		locker.On("TryLock", mock.Anything, seedLockKey, seedLockTTL).Return(true, "owner", nil).Once()
		locker.On("Unlock", mock.Anything, seedLockKey, "owner").Return(nil).Once()
		repo.On("Count", mock.Anything).Return(int64(0), errors.New("db down")).Once()

		_, err := uc.SeedMoodsIfEmpty(context.Background())
		assert.Error(t, err)
		locker.AssertExpectations(t)
	})
}

func TestFindAllMoods(t *testing.T) {
	uc, repo, _ := newTestMoodUsecase()
	repo.On("FindAll", mock.Anything).Return([]models.Mood{{ID: 1, Label: "Happy", Emoji: "😊", Score: 5}}, nil).Once()

	moods, err := uc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, moods, 1)
	assert.Equal(t, "Happy", moods[0].Label)
}
