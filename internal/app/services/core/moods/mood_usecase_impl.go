package moods

import (
	"context"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

const seedLockTTL = 30 * time.Second

type moodUsecase struct {
	MoodRepository contracts.MoodRepository
	LockerService  contracts.LockerService
	Log            *zap.Logger
}

var (
	moodUsecaseInstance contracts.MoodUsecase
	onceMoodUsecase     sync.Once
)

func NewMoodUsecase(moodRepository contracts.MoodRepository, lockerService contracts.LockerService, logger *zap.Logger) contracts.MoodUsecase {
	onceMoodUsecase.Do(func() {
		moodUsecaseInstance = &moodUsecase{
			MoodRepository: moodRepository,
			LockerService:  lockerService,
			Log:            logger,
		}
	})
	return moodUsecaseInstance
}

func (uc *moodUsecase) FindAll(ctx context.Context) ([]responses.Mood, error) {
	moods, err := uc.MoodRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return utils.MapMoodsToResponse(moods), nil
}

// SeedMoodsIfEmpty inserts the default catalogue into an empty table. Another
// replica holding the lock means seeding is already underway, so it returns 0.
func (uc *moodUsecase) SeedMoodsIfEmpty(ctx context.Context) (int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("moodUsecase.SeedMoodsIfEmpty called", zap.String(constvars.LoggingRequestIDKey, requestID))

	acquired, lockValue, err := uc.LockerService.TryLock(ctx, constvars.RedisMoodSeedLockKey, seedLockTTL)
	if err != nil {
		return 0, err
	}
	if !acquired {
		uc.Log.Info("moodUsecase.SeedMoodsIfEmpty lock held elsewhere, skipping",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return 0, nil
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, constvars.RedisMoodSeedLockKey, lockValue); err != nil {
			uc.Log.Warn("moodUsecase.SeedMoodsIfEmpty error releasing lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}()

	count, err := uc.MoodRepository.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	inserted, err := uc.MoodRepository.SeedMoods(ctx, models.DefaultMoods)
	if err != nil {
		return 0, err
	}

	uc.Log.Info("moodUsecase.SeedMoodsIfEmpty succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, inserted),
	)
	return inserted, nil
}
