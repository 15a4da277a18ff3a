package oauth

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestCleanupWorker(spec string) (*StateCleanupWorker, *mocks.LockerService, *mocks.OAuthStateRepository) {
	locker := new(mocks.LockerService)
	repo := new(mocks.OAuthStateRepository)
	cfg := &config.InternalConfig{OAuth: config.AppOAuth{CleanupCronSpec: spec}}
	return NewStateCleanupWorker(zap.NewNop(), cfg, locker, repo), locker, repo
}

func TestStateCleanupWorkerRunOnce(t *testing.T) {
	fixedNow := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("deletes expired states under lock", func(t *testing.T) {
		worker, locker, repo := newTestCleanupWorker("@hourly")
		worker.now = func() time.Time { return fixedNow }
		locker.On("TryLock", mock.Anything, constvars.RedisOAuthCleanupLockKey, cleanupLockTTL).Return(true, "owner", nil).Once()
		locker.On("Unlock", mock.Anything, constvars.RedisOAuthCleanupLockKey, "owner").Return(nil).Once()
		repo.On("DeleteExpired", mock.Anything, fixedNow).Return(int64(3), nil).Once()

		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
		repo.AssertExpectations(t)
	})

	t.Run("skips when another replica holds the lock", func(t *testing.T) {
		worker, locker, repo := newTestCleanupWorker("@hourly")
		locker.On("TryLock", mock.Anything, constvars.RedisOAuthCleanupLockKey, cleanupLockTTL).Return(false, "", nil).Once()

		worker.runOnce(context.Background())

		repo.AssertNotCalled(t, "DeleteExpired", mock.Anything, mock.Anything)
		locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("releases the lock when deletion fails", func(t *testing.T) {
		worker, locker, repo := newTestCleanupWorker("@hourly")
		locker.On("TryLock", mock.Anything, constvars.RedisOAuthCleanupLockKey, cleanupLockTTL).Return(true, "owner", nil).Once()
		locker.On("Unlock", mock.Anything, constvars.RedisOAuthCleanupLockKey, "owner").Return(nil).Once()
		repo.On("DeleteExpired", mock.Anything, mock.Anything).Return(int64(0), errors.New("db down")).Once()

		worker.runOnce(context.Background())

		locker.AssertExpectations(t)
	})
}

func TestStateCleanupWorkerStartStop(t *testing.T) {
	worker, _, _ := newTestCleanupWorker("not a cron spec")

	worker.Start(context.Background())
	worker.Stop()
}
