package locker

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/contracts/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testLockKey = "lock:test"

func TestTryLock(t *testing.T) {
	t.Run("acquired", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("TrySetNX", mock.Anything, testLockKey, mock.AnythingOfType("string"), time.Minute).Return(true, nil).Once()

		acquired, value, err := NewLockService(redis, zap.NewNop()).TryLock(context.Background(), testLockKey, time.Minute)

		require.NoError(t, err)
		assert.True(t, acquired)
		assert.NotEmpty(t, value)
		redis.AssertExpectations(t)
	})

	t.Run("held by someone else", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("TrySetNX", mock.Anything, testLockKey, mock.Anything, time.Minute).Return(false, nil).Once()

		acquired, value, err := NewLockService(redis, zap.NewNop()).TryLock(context.Background(), testLockKey, time.Minute)

		require.NoError(t, err)
		assert.False(t, acquired)
		assert.Empty(t, value)
	})

	t.Run("redis error", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("TrySetNX", mock.Anything, testLockKey, mock.Anything, time.Minute).Return(false, errors.New("down")).Once()

		acquired, _, err := NewLockService(redis, zap.NewNop()).TryLock(context.Background(), testLockKey, time.Minute)

		assert.Error(t, err)
		assert.False(t, acquired)
	})
}

func TestUnlock(t *testing.T) {
	t.Run("owner releases", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("DeleteIfEquals", mock.Anything, testLockKey, "abc").Return(true, nil).Once()

		err := NewLockService(redis, zap.NewNop()).Unlock(context.Background(), testLockKey, "abc")

		require.NoError(t, err)
		redis.AssertExpectations(t)
	})

	t.Run("lock taken over by another owner is kept", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("DeleteIfEquals", mock.Anything, testLockKey, "abc").Return(false, nil).Once()

		err := NewLockService(redis, zap.NewNop()).Unlock(context.Background(), testLockKey, "abc")

		assert.Error(t, err)
		redis.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		redis.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("redis error", func(t *testing.T) {
		redis := new(mocks.RedisRepository)
		redis.On("DeleteIfEquals", mock.Anything, testLockKey, "abc").Return(false, errors.New("down")).Once()

		err := NewLockService(redis, zap.NewNop()).Unlock(context.Background(), testLockKey, "abc")

		assert.Error(t, err)
	})
}
