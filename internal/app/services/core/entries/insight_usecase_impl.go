package entries

import (
	"context"
	"moodjournal-service/internal/app/config"
	"moodjournal-service/internal/app/contracts"
	"moodjournal-service/internal/app/models"
	"moodjournal-service/internal/pkg/constvars"
	"moodjournal-service/internal/pkg/dto/requests"
	"moodjournal-service/internal/pkg/dto/responses"
	"moodjournal-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

type insightUsecase struct {
	EntryRepository contracts.EntryRepository
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	now             func() time.Time
}

var (
	insightUsecaseInstance contracts.InsightUsecase
	onceInsightUsecase     sync.Once
)

func NewInsightUsecase(entryRepository contracts.EntryRepository, internalConfig *config.InternalConfig, logger *zap.Logger) contracts.InsightUsecase {
	onceInsightUsecase.Do(func() {
		insightUsecaseInstance = &insightUsecase{
			EntryRepository: entryRepository,
			InternalConfig:  internalConfig,
			Log:             logger,
			now:             time.Now,
		}
	})
	return insightUsecaseInstance
}

// GetHeatmap counts entries per day of the requested month, or of the whole
// year when Month is zero. Year defaults to the current year.
func (uc *insightUsecase) GetHeatmap(ctx context.Context, request *requests.Heatmap) ([]responses.HeatmapDay, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("insightUsecase.GetHeatmap called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	loc := uc.InternalConfig.Location()
	year := request.Year
	if year == 0 {
		year = uc.now().In(loc).Year()
	}
	from, to := utils.HeatmapRange(year, request.Month, loc)

	entryTimes, err := uc.EntryRepository.FindEntryTimesByUserID(ctx, request.UserID, &from, &to)
	if err != nil {
		return nil, err
	}

	heatmap := utils.BuildHeatmap(entryTimes, loc)
	uc.Log.Info("insightUsecase.GetHeatmap succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(heatmap)),
	)
	return heatmap, nil
}

func (uc *insightUsecase) GetMoodTrend(ctx context.Context, request *requests.MoodTrend) ([]responses.MoodTrendPoint, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("insightUsecase.GetMoodTrend called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, request.UserID),
	)

	limit := request.Limit
	if limit <= 0 {
		limit = constvars.MoodTrendDefault
	}
	if limit > constvars.MoodTrendMaxLimit {
		limit = constvars.MoodTrendMaxLimit
	}

	entries, err := uc.EntryRepository.FindByFilter(ctx, &models.EntryFilter{
		UserID: request.UserID,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	trend := utils.BuildMoodTrend(entries, uc.InternalConfig.Location())
	uc.Log.Info("insightUsecase.GetMoodTrend succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(trend)),
	)
	return trend, nil
}
