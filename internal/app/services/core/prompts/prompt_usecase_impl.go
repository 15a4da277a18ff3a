package prompts

import (
	"context"
	"fmt"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/utils"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

const (
	systemInstruction = "You are a thoughtful journaling assistant. Generate a single, insightful journaling prompt that encourages self-reflection. Keep it to one sentence and make it thought-provoking."
	dailyInstruction  = "Create a journal prompt for today."
	topicInstruction  = "Create a journal prompt about the following topic: %s"
)

type promptUsecase struct {
	Generator       contracts.PromptGenerator
	ResourceLimiter contracts.ResourceLimiter
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	fallback        func() string
}

var (
	promptUsecaseInstance contracts.PromptUsecase
	oncePromptUsecase     sync.Once
)

func NewPromptUsecase(
	generator contracts.PromptGenerator,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PromptUsecase {
	oncePromptUsecase.Do(func() {
		promptUsecaseInstance = newPromptUsecase(generator, resourceLimiter, internalConfig, logger)
	})
	return promptUsecaseInstance
}

func newPromptUsecase(
	generator contracts.PromptGenerator,
	resourceLimiter contracts.ResourceLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) *promptUsecase {
	return &promptUsecase{
		Generator:       generator,
		ResourceLimiter: resourceLimiter,
		InternalConfig:  internalConfig,
		Log:             logger,
		fallback:        randomFallbackPrompt,
	}
}

func (uc *promptUsecase) GetPrompt(ctx context.Context, request *requests.GetPrompt) (*responses.Prompt, error) {
	return uc.generate(ctx, request.UserID, dailyInstruction)
}

func (uc *promptUsecase) GetCustomPrompt(ctx context.Context, request *requests.CustomPrompt) (*responses.Prompt, error) {
	topic := strings.TrimSpace(request.Topic)
	return uc.generate(ctx, request.UserID, fmt.Sprintf(topicInstruction, topic))
}

// generate never fails on model problems. Quota exhaustion, a disabled
// generator and model errors all degrade to a fallback prompt; only a broken
// limiter backend is returned as an error.
func (uc *promptUsecase) generate(ctx context.Context, userID int64, instruction string) (*responses.Prompt, error) {
	requestID := utils.GetRequestID(ctx)

	if !uc.Generator.Enabled() {
		return uc.fallbackPrompt(false), nil
	}

	limit, err := uc.ResourceLimiter.ApplyResourceLimiter(ctx, &contracts.ApplyResourceLimiterInput{
		ResourceName:      strconv.FormatInt(userID, 10),
		LimiterGroupName:  constvars.AIPromptLimiterGroupName,
		WindowDurationSec: constvars.AIPromptLimiterWindowInSec,
		MaxQuota:          uc.InternalConfig.AI.DailyQuota,
	})
	if err != nil {
		uc.Log.Error("promptUsecase.generate error applying quota",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
			zap.Error(err),
		)
		return nil, err
	}
	if !limit.Allowed {
		uc.Log.Info("promptUsecase.generate quota exceeded",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingUserIDKey, userID),
			zap.Int("retry_after_secs", limit.RetryAfterSecs),
		)
		return uc.fallbackPrompt(true), nil
	}

	prompt, err := uc.Generator.Generate(ctx, instruction)
	if err != nil {
		uc.Log.Warn("promptUsecase.generate falling back after generator error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return uc.fallbackPrompt(false), nil
	}

	uc.Log.Info("promptUsecase.generate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPromptSourceKey, responses.PromptSourceAI),
	)
	return &responses.Prompt{Prompt: prompt, Source: responses.PromptSourceAI}, nil
}

func (uc *promptUsecase) fallbackPrompt(quotaExceeded bool) *responses.Prompt {
	return &responses.Prompt{
		Prompt:        uc.fallback(),
		Source:        responses.PromptSourceFallback,
		QuotaExceeded: quotaExceeded,
	}
}
