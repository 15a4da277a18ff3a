package prompts

import (
	"context"
	"errors"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/contracts/mocks"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const stubFallback = "fallback prompt"

func newTestPromptUsecase(generator *mocks.PromptGenerator, limiter *mocks.ResourceLimiter) *promptUsecase {
	uc := newPromptUsecase(generator, limiter, &config.InternalConfig{AI: config.AppAI{DailyQuota: 10}}, zap.NewNop())
	uc.fallback = func() string { return stubFallback }
	return uc
}

func TestGetPrompt(t *testing.T) {
	quotaFor := func(userID string) interface{} {
		return mock.MatchedBy(func(in *contracts.ApplyResourceLimiterInput) bool {
			return in.ResourceName == userID &&
				in.LimiterGroupName == constvars.AIPromptLimiterGroupName &&
				in.WindowDurationSec == 86400 &&
				in.MaxQuota == 10
		})
	}

	t.Run("generated by model", func(t *testing.T) {
		generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
		generator.On("Enabled").Return(true)
		limiter.On("ApplyResourceLimiter", mock.Anything, quotaFor("7")).
			Return(&contracts.ApplyResourceLimiterOutput{Allowed: true, Count: 1}, nil).Once()
		generator.On("Generate", mock.Anything, dailyInstruction).Return("What made you smile?", nil).Once()

		prompt, err := newTestPromptUsecase(generator, limiter).GetPrompt(context.Background(), &requests.GetPrompt{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, &responses.Prompt{Prompt: "What made you smile?", Source: responses.PromptSourceAI}, prompt)
	})

	t.Run("quota exceeded", func(t *testing.T) {
		generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
		generator.On("Enabled").Return(true)
		limiter.On("ApplyResourceLimiter", mock.Anything, quotaFor("7")).
			Return(&contracts.ApplyResourceLimiterOutput{Allowed: false, Count: 11, RetryAfterSecs: 300}, nil).Once()

		prompt, err := newTestPromptUsecase(generator, limiter).GetPrompt(context.Background(), &requests.GetPrompt{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, responses.PromptSourceFallback, prompt.Source)
		assert.True(t, prompt.QuotaExceeded)
		assert.Equal(t, stubFallback, prompt.Prompt)
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("generator disabled skips quota", func(t *testing.T) {
		generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
		generator.On("Enabled").Return(false)

		prompt, err := newTestPromptUsecase(generator, limiter).GetPrompt(context.Background(), &requests.GetPrompt{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, responses.PromptSourceFallback, prompt.Source)
		assert.False(t, prompt.QuotaExceeded)
		limiter.AssertNotCalled(t, "ApplyResourceLimiter", mock.Anything, mock.Anything)
	})

	t.Run("generator error", func(t *testing.T) {
		generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
		generator.On("Enabled").Return(true)
		limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).
			Return(&contracts.ApplyResourceLimiterOutput{Allowed: true}, nil).Once()
		generator.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("deadline exceeded")).Once()

		prompt, err := newTestPromptUsecase(generator, limiter).GetPrompt(context.Background(), &requests.GetPrompt{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, stubFallback, prompt.Prompt)
		assert.False(t, prompt.QuotaExceeded)
	})

	t.Run("limiter backend error", func(t *testing.T) {
		generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
		generator.On("Enabled").Return(true)
		limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

		_, err := newTestPromptUsecase(generator, limiter).GetPrompt(context.Background(), &requests.GetPrompt{UserID: 7})
		assert.Error(t, err)
	})
}

func TestGetCustomPrompt(t *testing.T) {
	generator, limiter := new(mocks.PromptGenerator), new(mocks.ResourceLimiter)
	generator.On("Enabled").Return(true)
	limiter.On("ApplyResourceLimiter", mock.Anything, mock.Anything).
		Return(&contracts.ApplyResourceLimiterOutput{Allowed: true}, nil).Once()
	generator.On("Generate", mock.Anything, "Create a journal prompt about the following topic: gratitude").
		Return("Who helped you this week?", nil).Once()

	prompt, err := newTestPromptUsecase(generator, limiter).GetCustomPrompt(context.Background(), &requests.CustomPrompt{UserID: 3, Topic: "  gratitude "})
	require.NoError(t, err)
	assert.Equal(t, "Who helped you this week?", prompt.Prompt)
	generator.AssertExpectations(t)
}

func TestRandomFallbackPrompt(t *testing.T) {
	for i := 0; i < 20; i++ {
		assert.Contains(t, fallbackPrompts, randomFallbackPrompt())
	}
}
